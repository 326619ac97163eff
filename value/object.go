// Package value implements the tagged value model, environment chain, and
// printer of the lithp runtime.
package value

import "fmt"

// Object is the value all lithp expressions evaluate to.
type Object interface {
	fmt.Stringer

	// IsAtom reports whether the object is not further decomposable.
	IsAtom() bool

	// IsEqual compares two objects for deep structural equality; functions
	// (Builtin and Lambda) compare by identity instead.
	IsEqual(Object) bool
}

// Copy returns a deep, independent copy of obj. Environment reads and writes
// copy values so that the tree-shape invariant (every SExpr/QExpr owns its
// children exclusively) always holds.
func Copy(obj Object) Object {
	if cp, ok := obj.(interface{ copy() Object }); ok {
		return cp.copy()
	}
	// Number, Symbol, and Err are immutable value types: copying them is a
	// no-op, they can't alias mutable state.
	return obj
}
