package builtin

import "go.lithp.dev/lithp/value"

// bindNames implements the common shape of def and =: argv[0] must be a
// QExpr of Symbols, and the remaining operands must match it one-for-one
// (spec.md §4.4).
func bindNames(name string, argv *value.Seq, bind func(sym value.Symbol, v value.Object)) value.Object {
	if err, bad := checkMinArity(name, argv, 1); bad {
		return err
	}
	names, err, bad := getQExpr(name, argv, 0)
	if bad {
		return err
	}
	for i := 0; i < names.Len(); i++ {
		if _, ok := value.GetSymbol(names.Get(i)); !ok {
			return typeError(name, "Symbol", typeName(names.Get(i)), i)
		}
	}
	if names.Len() != argv.Len()-1 {
		return value.Errorf(
			"Function '%s' passed too many arguments for symbols. Got %d, expected %d.",
			name, argv.Len()-1, names.Len())
	}
	for i := 0; i < names.Len(); i++ {
		sym, _ := value.GetSymbol(names.Get(i))
		bind(sym, argv.Get(i+1))
	}
	return value.MakeSExpr()
}

// Def binds one or more symbols in the global environment.
func Def(env *value.Env, argv *value.Seq) value.Object {
	return bindNames("def", argv, func(sym value.Symbol, v value.Object) {
		env.Def(sym, v)
	})
}

// Put binds one or more symbols in the calling environment only, per
// spec.md's split of def (global) and = (local).
func Put(env *value.Env, argv *value.Seq) value.Object {
	return bindNames("=", argv, func(sym value.Symbol, v value.Object) {
		env.Put(sym, v)
	})
}

// Lambda constructs a user-defined Function from a formals QExpr (all
// Symbols, with at most one "&" rest-binder per spec.md §9) and a body
// QExpr. The lambda's own environment is always a fresh, empty one: spec.md
// §9's dynamic-parent-capture requires free variables to resolve against
// the *caller's* environment chain at call time, so capturing the
// defining env here (env, the builtin's own argument) would instead
// snapshot the defining scope's bindings into the lambda permanently. A
// fresh env has nothing to shadow with, and callLambda (value/eval)
// reparents it to the caller whenever the lambda is fully applied.
func Lambda(_ *value.Env, argv *value.Seq) value.Object {
	if err, bad := checkArity("\\", argv, 2); bad {
		return err
	}
	formals, err, bad := getQExpr("\\", argv, 0)
	if bad {
		return err
	}
	body, err, bad := getQExpr("\\", argv, 1)
	if bad {
		return err
	}
	for i := 0; i < formals.Len(); i++ {
		if _, ok := value.GetSymbol(formals.Get(i)); !ok {
			return typeError("\\", "Symbol", typeName(formals.Get(i)), i)
		}
	}
	if err, bad := checkFormalsAnd(formals); bad {
		return err
	}
	return value.MakeLambda(formals, body, value.MakeRootEnv())
}

// checkFormalsAnd enforces spec.md §3 invariant 3: "&" may appear at most
// once in formals, and only as the second-to-last formal (immediately
// followed by exactly one rest-binding symbol).
func checkFormalsAnd(formals *value.Seq) (value.Err, bool) {
	count := 0
	pos := -1
	for i := 0; i < formals.Len(); i++ {
		if sym, ok := value.GetSymbol(formals.Get(i)); ok && sym == value.SymAnd {
			count++
			pos = i
		}
	}
	if count == 0 {
		return "", false
	}
	if count > 1 || pos != formals.Len()-2 {
		return value.Errorf("Function format invalid. Symbol '&' not followed by single symbol."), true
	}
	return "", false
}
