package reader_test

import (
	"testing"

	"go.lithp.dev/lithp/internal/grammar"
	"go.lithp.dev/lithp/value"
	"go.lithp.dev/lithp/value/reader"
)

func read(t *testing.T, line string) value.Object {
	t.Helper()
	root, err := grammar.NewParser().Parse(line)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	return reader.Read(root)
}

func TestReadNumber(t *testing.T) {
	got := read(t, "42")
	seq, ok := value.GetSeq(got)
	if !ok || seq.Len() != 1 {
		t.Fatalf("expected a 1-element SExpr, got %v", got)
	}
	if !seq.Get(0).IsEqual(value.MakeNumber(42)) {
		t.Errorf("expected 42, got %v", seq.Get(0))
	}
}

func TestReadBadNumber(t *testing.T) {
	got := read(t, "99999999999999999999999999")
	seq, ok := value.GetSeq(got)
	if !ok || seq.Len() != 1 {
		t.Fatalf("expected a 1-element SExpr, got %v", got)
	}
	if _, ok := value.GetErr(seq.Get(0)); !ok {
		t.Errorf("expected a bad-number Err, got %v", seq.Get(0))
	}
}

func TestReadSExprRoundTrip(t *testing.T) {
	got := read(t, "(+ 1 2 3)")
	seq, ok := value.GetSeq(got)
	if !ok || seq.Len() != 1 {
		t.Fatalf("expected a 1-element SExpr, got %v", got)
	}
	inner, ok := value.GetSeq(seq.Get(0))
	if !ok || !inner.IsSExpr() {
		t.Fatalf("expected an inner SExpr, got %v", seq.Get(0))
	}
	if inner.String() != "(+ 1 2 3)" {
		t.Errorf("unexpected print: %q", inner.String())
	}
}

func TestReadQExprRoundTrip(t *testing.T) {
	got := read(t, "{1 2 3}")
	seq, _ := value.GetSeq(got)
	inner, ok := value.GetSeq(seq.Get(0))
	if !ok || !inner.IsQExpr() {
		t.Fatalf("expected an inner QExpr, got %v", seq.Get(0))
	}
	// Invariant (spec.md §8.1): printer output of a QExpr round-trips
	// through the reader back to an equal value.
	again := read(t, inner.String())
	reSeq, _ := value.GetSeq(again)
	if !reSeq.Get(0).IsEqual(inner) {
		t.Errorf("round-trip mismatch: %v vs %v", inner, reSeq.Get(0))
	}
}

func TestReadNestedQExpr(t *testing.T) {
	got := read(t, "eval (tail {tail tail {1 2 3}})")
	seq, _ := value.GetSeq(got)
	if seq.Len() != 2 {
		t.Fatalf("expected 2 top-level forms, got %d: %v", seq.Len(), got)
	}
}
