package value_test

import (
	"testing"

	"go.lithp.dev/lithp/value"
)

func TestGetNumber(t *testing.T) {
	if _, ok := value.GetNumber(value.Symbol("x")); ok {
		t.Error("a symbol is not a number")
	}
	var o value.Object = value.MakeNumber(17)
	res, ok := value.GetNumber(o)
	if !ok {
		t.Error("is a number:", o)
	} else if !o.IsEqual(res) {
		t.Error("different numbers, expected:", o, "but got:", res)
	}
}

func TestArithmetic(t *testing.T) {
	if got := value.NumAdd(2, 3); got != 5 {
		t.Errorf("2+3: expected 5, got %v", got)
	}
	if got := value.NumSub(2, 3); got != -1 {
		t.Errorf("2-3: expected -1, got %v", got)
	}
	if got := value.NumNeg(5); got != -5 {
		t.Errorf("-5: expected -5, got %v", got)
	}
	if got := value.NumMul(4, 3); got != 12 {
		t.Errorf("4*3: expected 12, got %v", got)
	}
	if _, ok := value.NumDiv(10, 0); ok {
		t.Error("division by zero must report failure")
	}
	if got, ok := value.NumDiv(10, 4); !ok || got != 2 {
		t.Errorf("10/4: expected 2, got %v (ok=%v)", got, ok)
	}
}

func TestParseNumber(t *testing.T) {
	n, err := value.ParseNumber("42")
	if err != nil || n != 42 {
		t.Errorf("expected 42, got %v (err=%v)", n, err)
	}
	if _, err := value.ParseNumber("not-a-number"); err == nil {
		t.Error("expected a parse error")
	}
}
