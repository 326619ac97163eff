package value

import "fmt"

// Err is a human-readable diagnostic, carried as a value (not a Go error)
// so it can flow through the same evaluation rules as any other Object
// (spec.md §7: errors propagate by value, never by panic/exception).
type Err string

// Errorf builds an Err from a printf-like format string and arguments,
// mirroring the value model's Error(fmt, …) constructor (spec.md §4.1).
func Errorf(format string, args ...any) Err {
	return Err(fmt.Sprintf(format, args...))
}

func (Err) IsAtom() bool { return true }

func (e Err) IsEqual(other Object) bool {
	oe, ok := other.(Err)
	return ok && e == oe
}

func (e Err) String() string { return "Error: " + string(e) }

// GetErr returns obj as an Err, if possible.
func GetErr(obj Object) (Err, bool) {
	e, ok := obj.(Err)
	return e, ok
}

// IsErr reports whether obj is an Err value.
func IsErr(obj Object) bool {
	_, ok := obj.(Err)
	return ok
}
