// Package tree provides the ordered tree primitive underlying elements.
//
// A Node holds an ordered list of children, a back-reference to its parent,
// and two cached integers: its position among the parent's children and its
// depth below the root. Children are either tree nodes (anything
// implementing Treer) or opaque scalar values such as strings, which are
// stored as-is and carry no parent or position.
//
// # Embedding
//
// Node is meant to be embedded by value. The embedding type calls Init with
// itself so that children, parents and siblings are reported as the outer
// value rather than the bare *Node:
//
//	type Item struct {
//	    tree.Node
//	    Name string
//	}
//
//	func NewItem(name string) *Item {
//	    it := &Item{Name: name}
//	    it.Init(it)
//	    return it
//	}
//
// # Invariants
//
// A node has at most one parent; attaching it somewhere else detaches it
// first. After every structural mutation, each tree child's Index equals its
// position in the parent and its Depth equals the parent's depth plus one,
// including for every node of a moved subtree.
//
// Trees are not safe for concurrent use.
package tree
