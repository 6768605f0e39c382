package tree

import (
	"iter"
	"reflect"
	"slices"

	"github.com/vango-dev/tagtree/internal/errors"
)

// Treer is implemented by every value that can sit in a tree as a node
// rather than as an opaque scalar. *Node implements it, and so does any
// pointer to a struct embedding Node.
type Treer interface {
	TreeNode() *Node
}

// Node is the ordered tree primitive. The zero value is an empty root.
type Node struct {
	owner    Treer
	parent   *Node
	children []any
	index    int
	depth    int
}

// New returns an empty root node.
func New() *Node {
	return &Node{}
}

// Init records the value embedding n. Children, parents and siblings are
// reported as that value. Call it once, right after allocating the outer
// value.
func (n *Node) Init(owner Treer) {
	n.owner = owner
}

// TreeNode implements Treer.
func (n *Node) TreeNode() *Node {
	return n
}

// Owner returns the value embedding n, or n itself when Init was never
// called.
func (n *Node) Owner() Treer {
	if n.owner == nil {
		return n
	}
	return n.owner
}

// Parent returns the parent's owner, or nil for a root.
func (n *Node) Parent() Treer {
	if n.parent == nil {
		return nil
	}
	return n.parent.Owner()
}

// Root returns the owner of the topmost ancestor (n's owner for a root).
func (n *Node) Root() Treer {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r.Owner()
}

// Index returns n's position among its parent's children (0 for a root).
func (n *Node) Index() int {
	return n.index
}

// Depth returns the distance from the root (0 for a root).
func (n *Node) Depth() int {
	return n.depth
}

// Len returns the number of immediate children, nodes and scalars alike.
func (n *Node) Len() int {
	return len(n.children)
}

// Append adds children at the end. Each argument may be a child, a slice or
// array of children, or a range-over-func iterator of children; these are
// unpacked recursively and consumed immediately. Nil arguments are skipped.
// Nodes that already have a parent are moved.
//
// Append panics with ErrCycle if a child is n or one of n's ancestors.
func (n *Node) Append(children ...any) *Node {
	if err := n.insert(len(n.children), flatten(children)); err != nil {
		panic(err)
	}
	return n
}

// Prepend adds children at the beginning, keeping the order in which they
// are given. Arguments are unpacked as in Append.
//
// Prepend panics with ErrCycle if a child is n or one of n's ancestors.
func (n *Node) Prepend(children ...any) *Node {
	if err := n.insert(0, flatten(children)); err != nil {
		panic(err)
	}
	return n
}

// AppendTo appends n to parent.
func (n *Node) AppendTo(parent Treer) *Node {
	parent.TreeNode().Append(n.Owner())
	return n
}

// PrependTo prepends n to parent.
func (n *Node) PrependTo(parent Treer) *Node {
	parent.TreeNode().Prepend(n.Owner())
	return n
}

// InsertAfter splices siblings into the parent's children immediately after
// n. Arguments are unpacked as in Append.
func (n *Node) InsertAfter(siblings ...any) error {
	return n.insertSiblings("insert after", 1, siblings)
}

// InsertBefore splices siblings into the parent's children immediately
// before n. Arguments are unpacked as in Append.
func (n *Node) InsertBefore(siblings ...any) error {
	return n.insertSiblings("insert before", 0, siblings)
}

func (n *Node) insertSiblings(op string, offset int, siblings []any) error {
	p := n.parent
	if p == nil {
		return errors.New("E201").WithDetail(op + ": node is a root")
	}
	items := flatten(siblings)
	for _, it := range items {
		if t, ok := it.(Treer); ok && t.TreeNode() == n {
			return errors.New("E203").WithDetail(op + ": node cannot be its own sibling")
		}
	}
	return p.insert(n.index+offset, items)
}

// Remove detaches n from its parent.
func (n *Node) Remove() error {
	if n.parent == nil {
		return errors.New("E201").WithDetail("remove: node is a root")
	}
	n.detach()
	return nil
}

// Pop removes and returns the child at i. Negative indices count from the
// end. A removed node becomes a root.
func (n *Node) Pop(i int) (any, error) {
	i, err := n.resolve("pop", i)
	if err != nil {
		return nil, err
	}
	child := n.children[i]
	if t, ok := child.(Treer); ok {
		t.TreeNode().detach()
		return child, nil
	}
	n.children = slices.Delete(n.children, i, i+1)
	n.reindex(i)
	return child, nil
}

// Empty removes every child.
func (n *Node) Empty() *Node {
	removed := n.children
	n.children = nil
	for _, child := range removed {
		if t, ok := child.(Treer); ok {
			c := t.TreeNode()
			c.parent = nil
			c.index = 0
			c.setDepth(0)
		}
	}
	return n
}

// Child returns the child at i. Negative indices count from the end.
func (n *Node) Child(i int) (any, error) {
	i, err := n.resolve("child", i)
	if err != nil {
		return nil, err
	}
	return n.children[i], nil
}

// First returns the first child.
func (n *Node) First() (any, error) {
	return n.Child(0)
}

// Last returns the last child.
func (n *Node) Last() (any, error) {
	return n.Child(-1)
}

// Contents returns a copy of the children, nodes and scalars alike.
func (n *Node) Contents() []any {
	return slices.Clone(n.children)
}

// Slice returns a copy of children[start:end]. Indices are clamped to the
// sequence and negative values count from the end.
func (n *Node) Slice(start, end int) []any {
	size := len(n.children)
	clamp := func(i int) int {
		if i < 0 {
			i += size
		}
		return max(0, min(i, size))
	}
	start, end = clamp(start), clamp(end)
	if start >= end {
		return []any{}
	}
	return slices.Clone(n.children[start:end])
}

// Children iterates the children that are tree nodes, skipping scalars.
// Each call starts a fresh pass over the current children.
func (n *Node) Children() iter.Seq[Treer] {
	return func(yield func(Treer) bool) {
		for i := 0; i < len(n.children); i++ {
			if t, ok := n.children[i].(Treer); ok {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Siblings returns the parent's node children other than n.
func (n *Node) Siblings() ([]Treer, error) {
	if n.parent == nil {
		return nil, errors.New("E201").WithDetail("siblings: node is a root")
	}
	var out []Treer
	for t := range n.parent.Children() {
		if t.TreeNode() != n {
			out = append(out, t)
		}
	}
	return out, nil
}

// Next returns the child following n in its parent.
func (n *Node) Next() (any, error) {
	return n.sibling("next", n.index+1)
}

// Prev returns the child preceding n in its parent.
func (n *Node) Prev() (any, error) {
	return n.sibling("prev", n.index-1)
}

// NextAll returns every child following n, in order.
func (n *Node) NextAll() ([]any, error) {
	if n.parent == nil {
		return nil, errors.New("E201").WithDetail("next all: node is a root")
	}
	return slices.Clone(n.parent.children[n.index+1:]), nil
}

// PrevAll returns every child preceding n, in order. It is empty for the
// first child.
func (n *Node) PrevAll() ([]any, error) {
	if n.parent == nil {
		return nil, errors.New("E201").WithDetail("prev all: node is a root")
	}
	return slices.Clone(n.parent.children[:n.index]), nil
}

func (n *Node) sibling(op string, i int) (any, error) {
	if n.parent == nil {
		return nil, errors.New("E201").WithDetail(op + ": node is a root")
	}
	if i < 0 || i >= len(n.parent.children) {
		return nil, errors.New("E202").WithDetailf("%s: index %d of %d", op, i, len(n.parent.children))
	}
	return n.parent.children[i], nil
}

func (n *Node) resolve(op string, i int) (int, error) {
	size := len(n.children)
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return 0, errors.New("E301").WithDetailf("%s: index %d of %d", op, i, size)
	}
	return i, nil
}

// insert places items at pos, moving nodes out of their current parents.
// Nothing changes when an item would create a cycle.
func (n *Node) insert(pos int, items []any) error {
	for _, it := range items {
		if t, ok := it.(Treer); ok {
			if c := t.TreeNode(); c == n || c.isAncestorOf(n) {
				return errors.New("E203").WithDetail("a node cannot be attached beneath itself")
			}
		}
	}

	for _, it := range items {
		if t, ok := it.(Treer); ok {
			c := t.TreeNode()
			if c.parent == n && c.index < pos {
				pos--
			}
			c.detach()
			it = c.Owner()
		}
		n.children = slices.Insert(n.children, pos, it)
		n.reindex(pos)
		pos++
	}
	return nil
}

// detach removes n from its parent's children and makes it a root.
func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	i := n.index
	p.children = slices.Delete(p.children, i, i+1)
	n.parent = nil
	n.index = 0
	n.setDepth(0)
	p.reindex(i)
}

// reindex refreshes parent, position and depth of node children from i on.
func (n *Node) reindex(from int) {
	for i := from; i < len(n.children); i++ {
		if t, ok := n.children[i].(Treer); ok {
			c := t.TreeNode()
			c.parent = n
			c.index = i
			c.setDepth(n.depth + 1)
		}
	}
}

func (n *Node) setDepth(d int) {
	if n.depth == d {
		return
	}
	n.depth = d
	for _, child := range n.children {
		if t, ok := child.(Treer); ok {
			t.TreeNode().setDepth(d + 1)
		}
	}
}

func (n *Node) isAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// flatten unpacks slices, arrays and iterators into a flat list of
// children, dropping nils.
func flatten(args []any) []any {
	out := make([]any, 0, len(args))
	var walk func(v any)
	walk = func(v any) {
		switch x := v.(type) {
		case nil:
			return
		case Treer:
			if !isNilPointer(x) {
				out = append(out, x)
			}
			return
		case string:
			out = append(out, x)
			return
		case []any:
			for _, c := range x {
				walk(c)
			}
			return
		}

		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if rv.Type().Elem().Kind() == reflect.Uint8 {
				break
			}
			for i := 0; i < rv.Len(); i++ {
				walk(rv.Index(i).Interface())
			}
			return
		case reflect.Func:
			if rv.IsNil() {
				return
			}
			if rv.Type().CanSeq() && rv.Type().In(0).NumIn() == 1 {
				for c := range rv.Seq() {
					walk(c.Interface())
				}
				return
			}
		}
		out = append(out, v)
	}
	for _, a := range args {
		walk(a)
	}
	return out
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
