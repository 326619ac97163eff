// Package eval implements the evaluator (spec.md §4.5): the Eval dispatch
// rule, the 5-step S-Expression reduction, and call semantics for both
// Builtin and Lambda functions, including partial application and the "&"
// variadic rest-binder (spec.md §9). Shaped after sx's sxeval.Eval dispatch
// (a type switch over the value kind, with S-Expressions recursing into a
// dedicated reduction helper), adapted to spec.md's copy-on-bind /
// errors-as-values model instead of a Go-error-returning evaluator.
package eval

import "go.lithp.dev/lithp/value"

// Eval reduces obj in env per spec.md §4.5:
//
//   - a Symbol looks itself up in env (unbound produces an Err)
//   - an SExpr is reduced by evaluating its children and, unless it is
//     empty or a single child, calling the resulting Function
//   - everything else (Number, QExpr, Err, Function) evaluates to itself
func Eval(env *value.Env, obj value.Object) value.Object {
	switch v := obj.(type) {
	case value.Symbol:
		return env.Get(v)
	case *value.Seq:
		if v.IsSExpr() {
			return evalSExpr(env, v)
		}
		return v
	default:
		return obj
	}
}

func evalSExpr(env *value.Env, seq *value.Seq) value.Object {
	items := seq.Items()
	evaluated := make([]value.Object, len(items))
	for i, it := range items {
		result := Eval(env, it)
		if value.IsErr(result) {
			return result
		}
		evaluated[i] = result
	}

	switch len(evaluated) {
	case 0:
		return value.MakeSExpr()
	case 1:
		return evaluated[0]
	}

	head := evaluated[0]
	if !value.IsFunction(head) {
		return value.Errorf(
			"S-Expression starts with incorrect type. Got %s, Expected Function.", typeName(head))
	}
	args := value.MakeSExpr(evaluated[1:]...)
	return Call(env, head, args)
}

// Call invokes fn (a Builtin or Lambda) with already-evaluated args, per
// spec.md §4.5.1.
func Call(env *value.Env, fn value.Object, args *value.Seq) value.Object {
	switch f := fn.(type) {
	case *value.Builtin:
		return f.Call(env, args)
	case *value.Lambda:
		return callLambda(env, f, args)
	default:
		return value.Errorf("S-Expression starts with incorrect type. Got %s, Expected Function.", typeName(fn))
	}
}

// callLambda binds argv against f's formals one at a time (spec.md §4.5.1):
//
//   - a plain formal consumes one argument
//   - "&" consumes the rest of argv as a single QExpr bound to the formal
//     that follows it, and must be the second-to-last formal
//   - if argv runs out before formals do, callLambda returns a copy of f
//     with the bindings made so far staged and the unbound formals left
//     (partial application)
//   - if a "&" rest-formal is left unbound because argv exactly matched the
//     fixed formals, it is bound to an empty QExpr
//   - once every formal is bound, f's environment's parent is rebound to
//     callerEnv (spec.md §9: dynamic-parent-capture — a lambda resolves
//     free variables against the caller's environment chain at call time,
//     not against the environment lexically enclosing its definition) and
//     the body is evaluated there
func callLambda(callerEnv *value.Env, f *value.Lambda, argv *value.Seq) value.Object {
	local := f.Env.Copy()
	formals := f.Formals.Items()
	args := argv.Items()
	given, total := len(args), len(formals)

	fi, ai := 0, 0
	for fi < len(formals) {
		sym, _ := value.GetSymbol(formals[fi])
		if sym == value.SymAnd {
			if fi+1 != len(formals)-1 {
				return value.Errorf("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest, _ := value.GetSymbol(formals[fi+1])
			local.Put(rest, value.MakeQExpr(args[ai:]...))
			fi += 2
			ai = len(args)
			break
		}
		if ai >= len(args) {
			break
		}
		local.Put(sym, args[ai])
		ai++
		fi++
	}

	if ai < len(args) {
		return value.Errorf("Function passed too many arguments. Got %d but expected %d", given, total)
	}

	if fi < len(formals) {
		if sym, ok := value.GetSymbol(formals[fi]); ok && sym == value.SymAnd && fi+2 == len(formals) {
			rest, _ := value.GetSymbol(formals[fi+1])
			local.Put(rest, value.MakeQExpr())
			fi += 2
		}
	}

	if fi < len(formals) {
		return &value.Lambda{
			Formals: value.MakeQExpr(formals[fi:]...),
			Body:    value.Copy(f.Body).(*value.Seq),
			Env:     local,
		}
	}

	local.SetParent(callerEnv)
	bodySExpr := value.Copy(f.Body).(*value.Seq).AsSExpr()
	return Eval(local, bodySExpr)
}

// typeName mirrors value/builtin's diagnostic labels for the one error
// message the evaluator itself reports.
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

// Eval builtin: retags a QExpr argument as an SExpr and evaluates it in the
// calling environment (spec.md §4.4). Lives here, not in value/builtin, to
// avoid an import cycle (it must call back into Eval).
func EvalBuiltin(env *value.Env, argv *value.Seq) value.Object {
	if argv.Len() != 1 {
		return value.Errorf("Function 'eval' expects %d argument but got %d.", 1, argv.Len())
	}
	seq, ok := value.GetSeq(argv.Get(0))
	if !ok || !seq.IsQExpr() {
		actual := typeName(argv.Get(0))
		article := "a"
		if actual == "S-Expression" || actual == "Error" {
			article = "an"
		}
		return value.Errorf("Function 'eval' expects a Q-Expression but got %s %s at index %d instead.", article, actual, 0)
	}
	return Eval(env, seq.AsSExpr())
}
