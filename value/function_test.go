package value_test

import (
	"testing"

	"go.lithp.dev/lithp/value"
)

func TestBuiltinPrint(t *testing.T) {
	b := value.MakeBuiltin("+", func(env *value.Env, argv *value.Seq) value.Object { return value.MakeNumber(0) })
	if b.String() != "<builtin>" {
		t.Errorf("unexpected print: %q", b.String())
	}
	if b.Name() != "+" {
		t.Errorf("unexpected name: %q", b.Name())
	}
}

func TestLambdaPrint(t *testing.T) {
	formals := value.MakeQExpr(value.MakeSymbol("a"), value.MakeSymbol("b"))
	body := value.MakeQExpr(value.MakeSExpr(value.MakeSymbol("+"), value.MakeSymbol("a"), value.MakeSymbol("b")))
	l := value.MakeLambda(formals, body, value.MakeRootEnv())
	if l.String() != "(\\ {a b} {(+ a b)})" {
		t.Errorf("unexpected print: %q", l.String())
	}
}

func TestLambdaCopyIsIndependent(t *testing.T) {
	env := value.MakeRootEnv()
	formals := value.MakeQExpr(value.MakeSymbol("b"))
	body := value.MakeQExpr(value.MakeSymbol("b"))
	l := value.MakeLambda(formals, body, env)
	l.Env.Put(value.MakeSymbol("a"), value.MakeNumber(1))

	dup := value.Copy(l).(*value.Lambda)
	dup.Env.Put(value.MakeSymbol("a"), value.MakeNumber(2))

	if got := l.Env.Get(value.MakeSymbol("a")); !got.IsEqual(value.MakeNumber(1)) {
		t.Errorf("copying a lambda must not leak bindings back into the source: got %v", got)
	}
}

func TestIsFunction(t *testing.T) {
	if value.IsFunction(value.MakeNumber(1)) {
		t.Error("a number is not a function")
	}
	if !value.IsFunction(value.MakeBuiltin("x", nil)) {
		t.Error("a builtin is a function")
	}
}
