package markup

import (
	"iter"

	"github.com/google/uuid"

	"github.com/vango-dev/tagtree/internal/errors"
	"github.com/vango-dev/tagtree/pkg/attrs"
	"github.com/vango-dev/tagtree/pkg/tree"
)

// ClassKey is the multi-valued attribute holding CSS classes.
const ClassKey = "class"

// Raw is a scalar child written to markup without escaping.
// Use with caution - can lead to XSS if content is user-provided.
type Raw string

// Cloner is implemented by foreign tree nodes that can appear among an
// element's children and survive Clone.
type Cloner interface {
	CloneNode() tree.Treer
}

// Element is a markup tree node.
type Element struct {
	tree.Node

	kind  Kind
	id    uuid.UUID
	attrs *attrs.Map
	data  map[string]any
}

// New creates an element of the given kind with initial attributes.
// It returns ErrMissingAttribute when a name in kind.Required is absent.
func New(kind Kind, bindings ...attrs.Attr) (*Element, error) {
	return NewWithConfig(kind, attrs.DefaultConfig, bindings...)
}

// NewWithConfig is New with a custom attribute configuration.
func NewWithConfig(kind Kind, cfg attrs.Config, bindings ...attrs.Attr) (*Element, error) {
	if err := kind.validate(bindings); err != nil {
		return nil, err
	}
	e := newElement(kind, attrs.NewWithConfig(cfg))
	e.attrs.Merge(nil, bindings...)
	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(kind Kind, bindings ...attrs.Attr) *Element {
	e, err := New(kind, bindings...)
	if err != nil {
		panic(err)
	}
	return e
}

func newElement(kind Kind, m *attrs.Map) *Element {
	e := &Element{
		kind:  kind,
		id:    uuid.New(),
		attrs: m,
		data:  make(map[string]any),
	}
	e.Init(e)
	return e
}

// ID returns the element's identity. Clones get a new one.
func (e *Element) ID() uuid.UUID { return e.id }

// Kind returns the element's kind.
func (e *Element) Kind() Kind { return e.kind }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.kind.Tag }

// IsVoid reports whether the element never renders children.
func (e *Element) IsVoid() bool { return e.kind.Void }

// Attrs returns the live attribute map.
func (e *Element) Attrs() *attrs.Map { return e.attrs }

// Style returns the live style map.
func (e *Element) Style() *attrs.Style { return e.attrs.Style() }

// ParentElement returns the parent when it is an *Element.
func (e *Element) ParentElement() *Element {
	p, _ := e.Parent().(*Element)
	return p
}

// Children iterates the child elements, skipping scalars and foreign nodes.
func (e *Element) Children() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for t := range e.Node.Children() {
			if c, ok := t.(*Element); ok {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Append adds children at the end. See tree.Node.Append.
func (e *Element) Append(children ...any) *Element {
	e.Node.Append(children...)
	return e
}

// Prepend adds children at the beginning. See tree.Node.Prepend.
func (e *Element) Prepend(children ...any) *Element {
	e.Node.Prepend(children...)
	return e
}

// AppendTo appends e to parent.
func (e *Element) AppendTo(parent tree.Treer) *Element {
	e.Node.AppendTo(parent)
	return e
}

// PrependTo prepends e to parent.
func (e *Element) PrependTo(parent tree.Treer) *Element {
	e.Node.PrependTo(parent)
	return e
}

// Empty removes every child.
func (e *Element) Empty() *Element {
	e.Node.Empty()
	return e
}

// Attr merges bindings into the attributes.
func (e *Element) Attr(bindings ...attrs.Attr) *Element {
	e.attrs.Merge(nil, bindings...)
	return e
}

// MergeAttrs merges src and then bindings into the attributes.
func (e *Element) MergeAttrs(src attrs.Source, bindings ...attrs.Attr) *Element {
	e.attrs.Merge(src, bindings...)
	return e
}

// SetAttr writes a single attribute.
func (e *Element) SetAttr(name string, value any) *Element {
	e.attrs.Set(name, value)
	return e
}

// GetAttr reads a single attribute.
func (e *Element) GetAttr(name string) (any, bool) {
	return e.attrs.Get(name)
}

// RemoveAttr deletes an attribute. Missing names are ignored.
func (e *Element) RemoveAttr(name string) *Element {
	e.attrs.Remove(name)
	return e
}

// AddClass appends classes in order.
func (e *Element) AddClass(names ...string) *Element {
	for _, name := range names {
		e.attrs.Set(ClassKey, name)
	}
	return e
}

// RemoveClass deletes the first occurrence of name.
// It returns ErrNoClass when name is not present.
func (e *Element) RemoveClass(name string) error {
	if !e.attrs.RemoveValue(ClassKey, name) {
		return errors.New("E303").WithDetailf("<%s> has no class %q", e.kind.Tag, name)
	}
	return nil
}

// HasClass reports whether name is among the classes.
func (e *Element) HasClass(name string) bool {
	return e.attrs.Contains(ClassKey, name)
}

// ToggleClass removes name when present and adds it otherwise.
func (e *Element) ToggleClass(name string) *Element {
	if !e.attrs.RemoveValue(ClassKey, name) {
		e.attrs.Set(ClassKey, name)
	}
	return e
}

// Classes returns the classes in order.
func (e *Element) Classes() []string {
	values := e.attrs.Values(ClassKey)
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, attrs.ValueString(v))
	}
	return out
}

// SetStyle sets a style property.
func (e *Element) SetStyle(name string, value any) *Element {
	e.attrs.Style().Set(name, value)
	return e
}

// Hide sets display: none.
func (e *Element) Hide() *Element {
	return e.SetStyle("display", "none")
}

// Show removes the display property.
func (e *Element) Show() *Element {
	e.attrs.Style().Delete("display")
	return e
}

// Toggle shows a hidden element and hides a shown one. An element counts as
// hidden while its display property is set to a non-empty value.
func (e *Element) Toggle() *Element {
	if v, ok := e.attrs.Style().Get("display"); ok && attrs.ValueString(v) != "" {
		return e.Show()
	}
	return e.Hide()
}

// Data returns the value stored under key. It returns ErrNoData when the
// key is absent.
func (e *Element) Data(key string) (any, error) {
	v, ok := e.data[key]
	if !ok {
		return nil, errors.New("E302").WithDetailf("<%s> has no data %q", e.kind.Tag, key)
	}
	return v, nil
}

// SetData stores value under key. Data is never rendered.
func (e *Element) SetData(key string, value any) *Element {
	e.data[key] = value
	return e
}

// RemoveData deletes key from the data store.
func (e *Element) RemoveData(key string) *Element {
	delete(e.data, key)
	return e
}

// Clone returns a deep copy of e and its subtree with a new identity and no
// parent. Attribute and data values are deep-copied; an *Element stored as
// data is cloned. Foreign child nodes are cloned through Cloner and dropped
// when they do not implement it.
func (e *Element) Clone() *Element {
	c := newElement(e.kind, e.attrs.Clone())
	for k, v := range e.data {
		if el, ok := v.(*Element); ok {
			c.data[k] = el.Clone()
			continue
		}
		c.data[k] = attrs.CopyValue(v)
	}

	for _, child := range e.Contents() {
		switch v := child.(type) {
		case *Element:
			c.Node.Append(v.Clone())
		case Cloner:
			c.Node.Append(v.CloneNode())
		case tree.Treer:
		default:
			c.Node.Append(v)
		}
	}
	return c
}

// Wrap moves e inside other and puts other where e was. When e is a root,
// it is simply appended to other.
func (e *Element) Wrap(other *Element) error {
	if other == e {
		return errors.New("E203").WithDetail("wrap: element cannot wrap itself")
	}
	if e.Parent() == nil {
		if e.isAncestorOf(other) {
			if err := other.Remove(); err != nil {
				return err
			}
		}
		other.Append(e)
		return nil
	}
	if err := e.InsertBefore(other); err != nil {
		return err
	}
	other.Append(e)
	return nil
}

// ReplaceWith puts other in e's slot and detaches e. Replacing a root
// returns ErrNoParent; replacing e with one of its ancestors returns
// ErrCycle.
func (e *Element) ReplaceWith(other *Element) error {
	if other == e {
		return nil
	}
	if err := e.InsertBefore(other); err != nil {
		return err
	}
	return e.Remove()
}

func (e *Element) isAncestorOf(other *Element) bool {
	for p := other.Parent(); p != nil; p = p.TreeNode().Parent() {
		if p.TreeNode() == &e.Node {
			return true
		}
	}
	return false
}
