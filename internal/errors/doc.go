// Package errors provides the coded error values used across tagtree.
//
// Every failure a tree, element or loader can report has a registered code
// (e.g. "E201") that maps to a category, a short message and a longer
// explanation:
//   - construction: an element kind could not be built (missing attributes)
//   - structural: an operation needs a parent, sibling or acyclic position
//     that does not exist
//   - lookup: an index, data key or class is absent
//   - config: tagtree.yaml could not be read or is invalid
//   - document: a tree document could not be read or decoded
//
// # Usage
//
//	err := errors.New("E201").WithDetail("div has no parent")
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E201: Node has no parent
//	//
//	//   div has no parent
//
// Errors compare by code, so a fresh error from New matches a package-level
// sentinel built from the same code under errors.Is.
package errors
