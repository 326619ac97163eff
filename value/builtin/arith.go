package builtin

import "go.lithp.dev/lithp/value"

// arithmetic implements the shared shape of +, -, *, /: the first operand
// becomes the accumulator; "-" with no further operands negates it;
// otherwise fold left across the remaining operands (spec.md §4.4).
func arithmetic(name string, fold func(acc, n value.Number) (value.Number, value.Err)) value.BuiltinFn {
	return func(_ *value.Env, argv *value.Seq) value.Object {
		if err, bad := checkMinArity(name, argv, 1); bad {
			return err
		}
		acc, err, bad := getNumber(name, argv, 0)
		if bad {
			return err
		}
		if name == "-" && argv.Len() == 1 {
			return value.NumNeg(acc)
		}
		for i := 1; i < argv.Len(); i++ {
			n, err, bad := getNumber(name, argv, i)
			if bad {
				return err
			}
			var ferr value.Err
			acc, ferr = fold(acc, n)
			if ferr != "" {
				return ferr
			}
		}
		return acc
	}
}

// Add implements (+ n...).
var Add = arithmetic("+", func(acc, n value.Number) (value.Number, value.Err) {
	return value.NumAdd(acc, n), ""
})

// Sub implements (- n n...).
var Sub = arithmetic("-", func(acc, n value.Number) (value.Number, value.Err) {
	return value.NumSub(acc, n), ""
})

// Mul implements (* n...).
var Mul = arithmetic("*", func(acc, n value.Number) (value.Number, value.Err) {
	return value.NumMul(acc, n), ""
})

// Div implements (/ n n...). Division by zero reports spec.md §7's exact
// diagnostic.
var Div = arithmetic("/", func(acc, n value.Number) (value.Number, value.Err) {
	q, ok := value.NumDiv(acc, n)
	if !ok {
		return 0, value.Errorf("cannot divide by zero")
	}
	return q, ""
})
