// Package builtin implements the fixed set of primitive functions spec.md
// §4.4 names (list, head, tail, join, cons, len, eval's non-evaluator
// helpers, arithmetic, def, =, \). Shaped after sx's
// sxpf/builtins/builtins.go CheckArgs/GetX chained-error helpers and
// sxpf/builtins/number, sxpf/builtins/define, but message text follows
// spec.md §7's exact diagnostic strings.
package builtin

import "go.lithp.dev/lithp/value"

// articles gives the fixed "a"/"an" choice for each named type label used
// in diagnostics (spec.md §4.4), since spec.md §7's type-check template
// only varies the article in front of the *actual* type, never the
// expected one.
var articles = map[string]string{
	"Number":        "a",
	"Symbol":        "a",
	"S-Expression":  "an",
	"Q-Expression":  "a",
	"Function":      "a",
	"Error":         "an",
}

func article(typeName string) string {
	if a, ok := articles[typeName]; ok {
		return a
	}
	return "a"
}

// arityError reports spec.md §7's Arity diagnostic.
func arityError(name string, want, got int) value.Err {
	return value.Errorf("Function '%s' expects %d argument but got %d.", name, want, got)
}

// checkArity enforces an exact argument count, returning an Err on
// mismatch.
func checkArity(name string, argv *value.Seq, want int) (value.Err, bool) {
	if argv.Len() != want {
		return arityError(name, want, argv.Len()), true
	}
	return "", false
}

// checkMinArity enforces a minimum argument count.
func checkMinArity(name string, argv *value.Seq, min int) (value.Err, bool) {
	if argv.Len() < min {
		return arityError(name, min, argv.Len()), true
	}
	return "", false
}

// typeError reports spec.md §7's Type diagnostic for an indexed argument.
func typeError(name, expected, actual string, index int) value.Err {
	return value.Errorf("Function '%s' expects a %s but got %s %s at index %d instead.",
		name, expected, article(actual), actual, index)
}

// emptyError reports the non-indexed emptiness diagnostic head/tail need.
func emptyError(name string) value.Err {
	return value.Errorf("Function '%s' passed {} for argument 1.", name)
}

// typeName returns the spec.md §4.4 diagnostic label for obj's variant.
func typeName(obj value.Object) string {
	switch v := obj.(type) {
	case value.Number:
		return "Number"
	case value.Symbol:
		return "Symbol"
	case value.Err:
		return "Error"
	case *value.Seq:
		return v.TypeName()
	case *value.Builtin, *value.Lambda:
		return "Function"
	default:
		return "Unknown"
	}
}

// getQExpr returns argv[i] as a QExpr, or a Type Err.
func getQExpr(name string, argv *value.Seq, i int) (*value.Seq, value.Err, bool) {
	obj := argv.Get(i)
	seq, ok := value.GetSeq(obj)
	if !ok || !seq.IsQExpr() {
		return nil, typeError(name, "Q-Expression", typeName(obj), i), true
	}
	return seq, "", false
}

// getNumber returns argv[i] as a Number, or a Type Err.
func getNumber(name string, argv *value.Seq, i int) (value.Number, value.Err, bool) {
	obj := argv.Get(i)
	n, ok := value.GetNumber(obj)
	if !ok {
		return 0, typeError(name, "Number", typeName(obj), i), true
	}
	return n, "", false
}
