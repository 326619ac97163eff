package grammar_test

import (
	"testing"

	"go.lithp.dev/lithp/internal/grammar"
)

func TestParseNumber(t *testing.T) {
	root, err := grammar.NewParser().Parse("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !root.HasTag(">") {
		t.Errorf("root tag should be >, got %q", root.Tag)
	}
	found := false
	for _, c := range root.Children {
		if c.HasTag("number") && c.Contents == "42" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a number child with contents 42, got %+v", root.Children)
	}
}

func TestParseNegativeNumber(t *testing.T) {
	root, err := grammar.NewParser().Parse("-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) == 0 || root.Children[0].Contents != "-7" {
		t.Errorf("expected -7, got %+v", root.Children)
	}
}

func TestParseSExpr(t *testing.T) {
	root, err := grammar.NewParser().Parse("(+ 1 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sexpr *grammar.Node
	for _, c := range root.Children {
		if c.HasTag("sexpr") {
			sexpr = c
		}
	}
	if sexpr == nil {
		t.Fatalf("expected a sexpr child, got %+v", root.Children)
	}
	var leaves []*grammar.Node
	for _, c := range sexpr.Children {
		if !c.HasTag("char") && !c.HasTag("regex") {
			leaves = append(leaves, c)
		}
	}
	if len(leaves) != 3 {
		t.Fatalf("expected 3 meaningful children (+, 1, 2), got %d: %+v", len(leaves), leaves)
	}
	if leaves[0].Contents != "+" || leaves[1].Contents != "1" || leaves[2].Contents != "2" {
		t.Errorf("unexpected leaves: %+v", leaves)
	}
}

func TestParseQExpr(t *testing.T) {
	root, err := grammar.NewParser().Parse("{1 2 3}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, c := range root.Children {
		if c.HasTag("qexpr") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a qexpr child, got %+v", root.Children)
	}
}

func TestParseNested(t *testing.T) {
	_, err := grammar.NewParser().Parse("eval (tail {tail tail {1 2 3}})")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseUnmatchedParen(t *testing.T) {
	if _, err := grammar.NewParser().Parse("(+ 1 2"); err == nil {
		t.Error("expected a parse error for an unmatched '('")
	}
}

func TestParseUnexpectedCharacter(t *testing.T) {
	if _, err := grammar.NewParser().Parse("(+ 1 @)"); err == nil {
		t.Error("expected a parse error for an unrecognized character")
	}
}
