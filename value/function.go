package value

// BuiltinFn is a primitive function body. It receives the environment the
// call happens in and argv, an SExpr of already-evaluated argument values
// whose ownership transfers to the callee (spec.md §4.4).
type BuiltinFn func(env *Env, argv *Seq) Object

// Builtin is a primitive function identified by name.
type Builtin struct {
	name string
	fn   BuiltinFn
}

// MakeBuiltin creates a Builtin value.
func MakeBuiltin(name string, fn BuiltinFn) *Builtin { return &Builtin{name: name, fn: fn} }

// Name returns the builtin's registered name.
func (b *Builtin) Name() string { return b.name }

// Call invokes the builtin with the given environment and argv.
func (b *Builtin) Call(env *Env, argv *Seq) Object { return b.fn(env, argv) }

func (*Builtin) IsAtom() bool { return true }

func (b *Builtin) IsEqual(other Object) bool {
	ob, ok := other.(*Builtin)
	return ok && b == ob
}

func (b *Builtin) String() string { return "<builtin>" }

// Lambda is a user-defined function: formal parameter symbols, a body, and
// a captured environment used to stage partial-application bindings.
type Lambda struct {
	Formals *Seq
	Body    *Seq
	Env     *Env
}

// MakeLambda creates a Lambda. formals must be a QExpr of Symbols (with at
// most one trailing "& rest" pair, spec.md §3 invariant 3); body is a QExpr.
func MakeLambda(formals, body *Seq, env *Env) *Lambda {
	return &Lambda{Formals: formals, Body: body, Env: env}
}

func (*Lambda) IsAtom() bool { return true }

func (l *Lambda) IsEqual(other Object) bool {
	ol, ok := other.(*Lambda)
	return ok && l == ol
}

func (l *Lambda) String() string {
	return "(\\ " + l.Formals.String() + " " + l.Body.String() + ")"
}

func (l *Lambda) copy() Object {
	return &Lambda{
		Formals: Copy(l.Formals).(*Seq),
		Body:    Copy(l.Body).(*Seq),
		Env:     l.Env.Copy(),
	}
}

// GetFunction returns obj as a callable Function (Builtin or Lambda), if
// possible.
func GetFunction(obj Object) (Object, bool) {
	switch obj.(type) {
	case *Builtin, *Lambda:
		return obj, true
	default:
		return nil, false
	}
}

// IsFunction reports whether obj is a Function (Builtin or Lambda).
func IsFunction(obj Object) bool {
	_, ok := GetFunction(obj)
	return ok
}
