package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasEmptyStyle(t *testing.T) {
	m := New()

	require.Equal(t, 1, m.Len())
	v, ok := m.Get(StyleKey)
	require.True(t, ok)
	assert.IsType(t, &Style{}, v)
	assert.Equal(t, 0, m.Style().Len())
	assert.Equal(t, "", m.Markup())
}

func TestSetMultiValuedAccumulates(t *testing.T) {
	m := New()
	m.Set("class", "a")
	m.Set("class", "b")
	m.Set("type", "text")

	assert.Equal(t, []any{"a", "b"}, m.Values("class"))
	assert.Equal(t, []any{"text"}, m.Values("type"))

	v, _ := m.Get("class")
	assert.IsType(t, []any{}, v, "multi-valued entries always hold a sequence")
}

func TestSetMultiValuedSlices(t *testing.T) {
	m := New()
	m.Set("class", []string{"a", "b"})
	m.Set("class", []any{"c"})
	m.Set("class", [2]string{"d", "e"})

	assert.Equal(t, []any{"a", "b", "c", "d", "e"}, m.Values("class"))
}

func TestSetScalarOverwrites(t *testing.T) {
	m := New()
	m.Set("id", "first")
	m.Set("title", "t")
	m.Set("id", "second")

	v, ok := m.Get("id")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, []string{"style", "id", "title"}, m.Names(), "overwrite keeps the original position")
}

func TestSetStyle(t *testing.T) {
	m := New()
	m.Set(StyleKey, "color: red; margin: 0")
	assert.Equal(t, "color: red; margin: 0", m.Style().String())

	m.Set(StyleKey, Dict{"padding": "1px"})
	assert.Equal(t, "color: red; margin: 0; padding: 1px", m.Style().String())

	other := NewStyle()
	other.Set("display", "none")
	m.Set(StyleKey, other)
	other.Set("color", "blue")
	assert.Equal(t, "display: none", m.Style().String(), "a set *Style is copied")

	m.Set(StyleKey, nil)
	assert.Equal(t, 0, m.Style().Len())
}

func TestStyleIsNeverMultiValued(t *testing.T) {
	m := NewWithConfig(Config{MultiValued: []string{"style", "rel"}})
	assert.False(t, m.IsMultiValued("style"))
	assert.True(t, m.IsMultiValued("rel"))
	assert.False(t, m.IsMultiValued("class"))
}

func TestMergeOrder(t *testing.T) {
	m := New()
	m.Merge(List{A("id", "x"), A("class", "a")}, A("class", "b"), A("id", "y"))

	v, _ := m.Get("id")
	assert.Equal(t, "y", v, "keyword bindings are applied after the source")
	assert.Equal(t, []any{"a", "b"}, m.Values("class"))
}

func TestMergeDictSorted(t *testing.T) {
	m := New()
	m.Merge(Dict{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"style", "a", "b", "c"}, m.Names())
}

func TestMergeMap(t *testing.T) {
	src := New()
	src.Set("class", "a")
	src.Set("href", "/x")
	src.Style().Set("color", "red")

	dst := New()
	dst.Set("class", "z")
	dst.Merge(src)

	assert.Equal(t, []any{"z", "a"}, dst.Values("class"))
	assert.Equal(t, "color: red", dst.Style().String())

	src.Style().Set("margin", "0")
	assert.Equal(t, "color: red", dst.Style().String(), "merged style is independent")
}

func TestMergeNilSource(t *testing.T) {
	m := New()
	m.Merge(nil, A("id", "x"))
	assert.True(t, m.Has("id"))
}

func TestRemove(t *testing.T) {
	m := New()
	m.Set("id", "x")
	m.Remove("id")
	m.Remove("missing")
	assert.False(t, m.Has("id"))

	m.Style().Set("color", "red")
	m.Remove(StyleKey)
	assert.True(t, m.Has(StyleKey), "style is reset, never removed")
	assert.Equal(t, 0, m.Style().Len())
}

func TestRemoveValue(t *testing.T) {
	m := New()
	m.Set("class", []string{"a", "b", "a"})

	assert.True(t, m.RemoveValue("class", "a"))
	assert.Equal(t, []any{"b", "a"}, m.Values("class"))
	assert.False(t, m.RemoveValue("class", "zzz"))
	assert.False(t, m.RemoveValue("id", "a"))
	assert.True(t, m.Contains("class", "b"))
}

func TestValuesIsACopy(t *testing.T) {
	m := New()
	m.Set("class", "a")
	vals := m.Values("class")
	vals[0] = "mutated"
	assert.Equal(t, []any{"a"}, m.Values("class"))
}

func TestClone(t *testing.T) {
	m := New()
	m.Set("class", "a")
	m.Set("id", "x")
	m.Style().Set("color", "red")

	c := m.Clone()
	c.Set("class", "b")
	c.Set("id", "y")
	c.Style().Set("color", "blue")

	assert.Equal(t, []any{"a"}, m.Values("class"))
	v, _ := m.Get("id")
	assert.Equal(t, "x", v)
	assert.Equal(t, "color: red", m.Style().String())
	assert.Equal(t, m.Names(), c.Names())
}

func TestAll(t *testing.T) {
	m := New()
	m.Set("a", 1)
	m.Set("b", 2)

	var names []string
	for name := range m.All() {
		names = append(names, name)
		if name == "a" {
			break
		}
	}
	assert.Equal(t, []string{"style", "a"}, names)
}

func TestMarkup(t *testing.T) {
	tests := []struct {
		name  string
		build func(m *Map)
		want  string
	}{
		{
			name:  "scalar",
			build: func(m *Map) { m.Set("src", "a.png") },
			want:  ` src="a.png"`,
		},
		{
			name:  "insertion order",
			build: func(m *Map) { m.Set("id", "x"); m.Set("alt", "y") },
			want:  ` id="x" alt="y"`,
		},
		{
			name:  "class joined",
			build: func(m *Map) { m.Set("class", "a"); m.Set("class", "b") },
			want:  ` class="a b"`,
		},
		{
			name:  "renamed",
			build: func(m *Map) { m.Set("className", "c"); m.Set("htmlFor", "f") },
			want:  ` class="c" for="f"`,
		},
		{
			name:  "booleans",
			build: func(m *Map) { m.Set("disabled", true); m.Set("checked", false) },
			want:  ` disabled`,
		},
		{
			name:  "nil omitted",
			build: func(m *Map) { m.Set("title", nil) },
			want:  ``,
		},
		{
			name:  "empty string kept",
			build: func(m *Map) { m.Set("alt", "") },
			want:  ` alt=""`,
		},
		{
			name:  "numbers",
			build: func(m *Map) { m.Set("width", 10); m.Set("ratio", 1.5) },
			want:  ` width="10" ratio="1.5"`,
		},
		{
			name:  "style",
			build: func(m *Map) { m.Style().Set("display", "none") },
			want:  ` style="display: none"`,
		},
		{
			name:  "escaped",
			build: func(m *Map) { m.Set("title", `a "b" <c>`) },
			want:  ` title="a &quot;b&quot; &lt;c&gt;"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			tt.build(m)
			assert.Equal(t, tt.want, m.Markup())
		})
	}
}

func TestParseStyle(t *testing.T) {
	s := ParseStyle(" color : red ;; bogus ; :x; margin:0 ")
	assert.Equal(t, "color: red; margin: 0", s.String())
	assert.True(t, s.Has("margin"))
	s.Delete("margin")
	assert.False(t, s.Has("margin"))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", ValueString(nil))
	assert.Equal(t, "true", ValueString(true))
	assert.Equal(t, "42", ValueString(int64(42)))
	assert.Equal(t, "0.25", ValueString(0.25))
	assert.Equal(t, "[1 2]", ValueString([]int{1, 2}))
}

func TestEachRendered(t *testing.T) {
	m := New()
	m.Set("className", "a")
	m.Set("hidden", true)
	m.Set("open", false)
	m.Set("data-x", nil)
	m.Set("title", `<t>`)

	type entry struct {
		name, value string
		bare        bool
	}
	var got []entry
	m.EachRendered(func(name, value string, bare bool) {
		got = append(got, entry{name, value, bare})
	})

	assert.Equal(t, []entry{
		{"class", "a", false},
		{"hidden", "", true},
		{"title", "<t>", false},
	}, got)
}

func TestClassNameAliasesClass(t *testing.T) {
	m := New()
	m.Set("className", "a")
	m.Set("class", "b")
	m.Set("className", []string{"c"})
	m.Set("htmlFor", "f")

	assert.True(t, m.IsMultiValued("className"))
	assert.Equal(t, []any{"a", "b", "c"}, m.Values("className"))
	assert.Equal(t, []any{"a", "b", "c"}, m.Values("class"))
	assert.True(t, m.Contains("className", "a"))
	assert.Equal(t, ` class="a b c" for="f"`, m.Markup())

	assert.True(t, m.Has("htmlFor"))
	assert.False(t, m.Has("for"), "non-accumulating renames keep the internal name")

	assert.True(t, m.RemoveValue("className", "b"))
	assert.Equal(t, []any{"a", "c"}, m.Values("class"))
	m.Remove("className")
	assert.False(t, m.Has("class"))
}

func TestCloneCopiesValuesDeeply(t *testing.T) {
	m := New()
	m.Set("data-list", []string{"x"})
	m.Set("data-cfg", map[string]any{"k": 1})
	m.Set("class", []any{[]int{1}})

	c := m.Clone()
	list, _ := c.Get("data-list")
	list.([]string)[0] = "y"
	cfg, _ := c.Get("data-cfg")
	cfg.(map[string]any)["k"] = 2
	c.Values("class")[0].([]int)[0] = 9

	orig, _ := m.Get("data-list")
	assert.Equal(t, []string{"x"}, orig)
	origCfg, _ := m.Get("data-cfg")
	assert.Equal(t, map[string]any{"k": 1}, origCfg)
	assert.Equal(t, []any{[]int{1}}, m.Values("class"))
}
