package value

import "io"

// Print writes the value's string representation to w (spec.md §4.6).
func Print(w io.Writer, obj Object) (int, error) {
	return io.WriteString(w, obj.String())
}

// Println writes the value's string representation to w followed by a
// newline.
func Println(w io.Writer, obj Object) (int, error) {
	n, err := Print(w, obj)
	if err != nil {
		return n, err
	}
	m, err := io.WriteString(w, "\n")
	return n + m, err
}
