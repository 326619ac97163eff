package value

// Env is a symbol-to-value mapping with an optional parent, forming a
// chain that ends at the global environment. Shaped after sx's
// sxpf/env.go Environment/rootEnvironment, trimmed of its sync.RWMutex:
// spec.md §5 specifies single-threaded, strictly synchronous execution, so
// a mutex nobody ever contends would be defensive for no reason.
type Env struct {
	vars   map[Symbol]Object
	parent *Env
}

// MakeRootEnv creates a new environment with no parent.
func MakeRootEnv() *Env {
	return &Env{vars: make(map[Symbol]Object)}
}

// MakeChildEnv creates a new environment whose parent is the given one.
func MakeChildEnv(parent *Env) *Env {
	return &Env{vars: make(map[Symbol]Object), parent: parent}
}

// Parent returns the parent environment, or nil for the root.
func (e *Env) Parent() *Env { return e.parent }

// SetParent rebinds this environment's parent. Used at call time to
// implement the lambda's dynamic-parent capture (spec.md §9): a lambda's
// own environment's parent is set to the caller's environment when the
// lambda is finally (fully) applied, not fixed at definition time.
func (e *Env) SetParent(p *Env) { e.parent = p }

// Get walks the chain toward the root; on match it returns a deep copy of
// the bound value. If no match is found anywhere in the chain, it returns
// an Err naming the symbol (spec.md §4.3).
func (e *Env) Get(sym Symbol) Object {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[sym]; ok {
			return Copy(v)
		}
	}
	return Errorf("Unbound symbol '%s'!", sym)
}

// Put binds sym in this environment only. If the name already exists
// locally, the previous value is replaced by a copy of v; otherwise a new
// slot is appended. The incoming sym/v remain owned by the caller.
func (e *Env) Put(sym Symbol, v Object) {
	e.vars[sym] = Copy(v)
}

// Def walks to the root environment, then binds there (spec.md §4.3).
func (e *Env) Def(sym Symbol, v Object) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.Put(sym, v)
}

// Copy produces an independent deep copy of this environment's bindings,
// preserving the parent pointer (the parent is shared, not copied). Used
// when a lambda value is copied during partial application.
func (e *Env) Copy() *Env {
	vars := make(map[Symbol]Object, len(e.vars))
	for k, v := range e.vars {
		vars[k] = Copy(v)
	}
	return &Env{vars: vars, parent: e.parent}
}

// Bindings returns a snapshot of this environment's own (non-parent)
// symbol names, in no particular order.
func (e *Env) Bindings() []Symbol {
	names := make([]Symbol, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	return names
}
