// Package reader lifts a grammar.Node parse tree into runtime values
// (spec.md §4.2). Loosely shaped after sx's sxreader.Reader's Read-style
// entry point, reduced to a single Read function with no reader struct or
// options, and adapted to walk a pre-built parse tree instead of reading
// runes directly — that rune-level work lives in the external grammar
// engine, internal/grammar.
package reader

import (
	"go.lithp.dev/lithp/internal/grammar"
	"go.lithp.dev/lithp/value"
)

// Read lifts node into a value.Object, per the mapping rules of
// spec.md §4.2:
//
//   - a node tagged "number" parses Contents as a base-10 signed integer;
//     on overflow, produces an Err("bad number")
//   - a node tagged "symbol" produces a Symbol(Contents)
//   - the root node (">") or a node tagged "sexpr" starts an empty SExpr
//   - a node tagged "qexpr" starts an empty QExpr
//   - bracket-literal and "regex" children are skipped; every other child
//     is read recursively and appended
//
// Read is total on syntactically valid trees (every child that isn't a
// bracket/regex node must itself match one of the rules above).
func Read(node *grammar.Node) value.Object {
	switch {
	case node.HasTag("number"):
		n, err := value.ParseNumber(node.Contents)
		if err != nil {
			return value.Errorf("bad number")
		}
		return n

	case node.HasTag("symbol"):
		return value.MakeSymbol(node.Contents)

	case node.Tag == grammar.RootTag || node.HasTag("sexpr"):
		return readSeq(node, value.MakeSExpr())

	case node.HasTag("qexpr"):
		return readSeq(node, value.MakeQExpr())

	default:
		return value.Errorf("unrecognized parse node %q", node.Tag)
	}
}

func readSeq(node *grammar.Node, seq *value.Seq) *value.Seq {
	for _, child := range node.Children {
		if isSkipped(child) {
			continue
		}
		seq.Append(Read(child))
	}
	return seq
}

func isSkipped(child *grammar.Node) bool {
	switch child.Contents {
	case "(", ")", "{", "}":
		return true
	}
	return child.Tag == grammar.RegexTag
}
