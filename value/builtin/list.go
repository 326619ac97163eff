package builtin

import "go.lithp.dev/lithp/value"

// List retags argv as a QExpr and returns it (spec.md §4.4: arity ≥0).
func List(_ *value.Env, argv *value.Seq) value.Object {
	return argv.AsQExpr()
}

// Head returns a QExpr containing only the first element of a non-empty
// QExpr argument.
func Head(_ *value.Env, argv *value.Seq) value.Object {
	if err, bad := checkArity("head", argv, 1); bad {
		return err
	}
	seq, err, bad := getQExpr("head", argv, 0)
	if bad {
		return err
	}
	if seq.Len() == 0 {
		return emptyError("head")
	}
	return value.MakeQExpr(seq.Get(0))
}

// Tail returns the input QExpr with its first element removed.
func Tail(_ *value.Env, argv *value.Seq) value.Object {
	if err, bad := checkArity("tail", argv, 1); bad {
		return err
	}
	seq, err, bad := getQExpr("tail", argv, 0)
	if bad {
		return err
	}
	if seq.Len() == 0 {
		return emptyError("tail")
	}
	seq.Pop(0)
	return seq
}

// Join concatenates one or more QExprs into a single QExpr, preserving
// order.
func Join(_ *value.Env, argv *value.Seq) value.Object {
	if err, bad := checkMinArity("join", argv, 1); bad {
		return err
	}
	result := value.MakeQExpr()
	for i := 0; i < argv.Len(); i++ {
		seq, err, bad := getQExpr("join", argv, i)
		if bad {
			return err
		}
		for _, item := range seq.Items() {
			result.Append(item)
		}
	}
	return result
}

// Cons returns a new QExpr whose first element is the first argument and
// whose tail is the second argument's elements. spec.md normalizes this to
// a QExpr (the original source's `cons` wraps in an SExpr, which spec.md
// treats as a source inconsistency with list/head/tail).
func Cons(_ *value.Env, argv *value.Seq) value.Object {
	if err, bad := checkArity("cons", argv, 2); bad {
		return err
	}
	tail, err, bad := getQExpr("cons", argv, 1)
	if bad {
		return err
	}
	result := value.MakeQExpr(argv.Get(0))
	for _, item := range tail.Items() {
		result.Append(item)
	}
	return result
}

// Len returns a Number equal to the child count of a QExpr argument.
func Len(_ *value.Env, argv *value.Seq) value.Object {
	if err, bad := checkArity("len", argv, 1); bad {
		return err
	}
	seq, err, bad := getQExpr("len", argv, 0)
	if bad {
		return err
	}
	return value.MakeNumber(int64(seq.Len()))
}
