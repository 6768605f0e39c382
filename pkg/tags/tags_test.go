package tags

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/tagtree/pkg/attrs"
	"github.com/vango-dev/tagtree/pkg/markup"
)

func TestVoidElements(t *testing.T) {
	for _, tag := range []string{"br", "hr", "img", "input", "meta", "link", "source", "wbr"} {
		assert.True(t, IsVoidElement(tag), tag)
	}
	for _, tag := range []string{"div", "span", "p", "a", "script"} {
		assert.False(t, IsVoidElement(tag), tag)
	}
}

func TestLookup(t *testing.T) {
	k, ok := Lookup("img")
	require.True(t, ok)
	assert.True(t, k.Void)
	assert.Equal(t, []string{"src"}, k.Required)

	k, ok = Lookup("div")
	require.True(t, ok)
	assert.False(t, k.Void)
	assert.Empty(t, k.Required)

	_, ok = Lookup("blink")
	assert.False(t, ok)
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, markup.Kind{Tag: "custom-el"}, KindFor("custom-el"))
	assert.True(t, KindFor("img").Void)
}

func TestKindsSorted(t *testing.T) {
	kinds := Kinds()
	require.NotEmpty(t, kinds)
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, kinds[i-1].Tag, kinds[i].Tag)
	}
}

func TestRegister(t *testing.T) {
	Register(markup.Kind{Tag: "x-card", Required: []string{"title"}})
	defer delete(registry, "x-card")

	_, err := New("x-card")
	assert.True(t, errors.Is(err, markup.ErrMissingAttribute))

	e, err := New("x-card", TitleAttr("t"))
	require.NoError(t, err)
	assert.Equal(t, `<x-card title="t"></x-card>`, e.Render(false))
}

func TestDivWithClassAndChildren(t *testing.T) {
	e := Div(Class("a", "b"), ID("main"), "hello", Span("x"))
	assert.Equal(t, `<div class="a b" id="main">hello<span>x</span></div>`, e.Render(false))
	assert.Equal(t, 2, e.Len())
}

func TestNilAndEmptyArgsIgnored(t *testing.T) {
	e := Div(nil, ClassIf(false, "hidden"), AttrIf(false, ID("x")), "t")
	assert.Equal(t, `<div>t</div>`, e.Render(false))

	e = Div(ClassIf(true, "on"), AttrIf(true, ID("x")))
	assert.Equal(t, `<div class="on" id="x"></div>`, e.Render(false))
}

func TestAttrSlicesAndLists(t *testing.T) {
	e := P([]attrs.Attr{ID("a"), {}}, attrs.List{Role("note")})
	assert.Equal(t, `<p id="a" role="note"></p>`, e.Render(false))
}

func TestRequiredAttributes(t *testing.T) {
	_, err := A("link text")
	assert.True(t, errors.Is(err, markup.ErrMissingAttribute))

	a, err := A(Href("/home"), "home")
	require.NoError(t, err)
	assert.Equal(t, `<a href="/home">home</a>`, a.Render(false))

	_, err = Img(Alt("x"))
	assert.True(t, errors.Is(err, markup.ErrMissingAttribute))

	img, err := Img(Src("a.png"), Alt("x"))
	require.NoError(t, err)
	assert.Equal(t, `<img src="a.png" alt="x"/>`, img.Render(false))
}

func TestMustPanicsOnMissingAttribute(t *testing.T) {
	Register(markup.Kind{Tag: "x-req", Required: []string{"k"}})
	defer delete(registry, "x-req")
	assert.Panics(t, func() { must("x-req", nil) })
}

func TestFormControls(t *testing.T) {
	e := Form(
		Label(For("q"), "Search"),
		Input(Type("text"), Name("q"), Disabled()),
	)
	assert.Equal(t,
		`<form><label for="q">Search</label><input type="text" name="q" disabled/></form>`,
		e.Render(false))
}

func TestStyleAttr(t *testing.T) {
	e := Div(StyleAttr("color: red; margin: 0"))
	assert.Equal(t, `<div style="color: red; margin: 0"></div>`, e.Render(false))
}
