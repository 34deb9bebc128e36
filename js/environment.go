package js

// binding is one (name, value) entry in an Environment.
type binding struct {
	name  string
	value RuntimeValue
}

// Environment is a scope record: an ordered list of bindings and an
// optional outer scope. It is deliberately a slice, not a map — the
// source depends on linear-scan semantics: a duplicate "var x" adds a
// second binding rather than overwriting the first, and assignment
// rewrites the first matching binding found by scanning from the
// back of the innermost scope that contains the name (the same binding
// Get returns).
type Environment struct {
	bindings []binding
	outer    *Environment
}

// NewEnvironment creates an empty top-level scope.
func NewEnvironment() *Environment {
	return &Environment{}
}

// NewEnclosedEnvironment creates a scope nested inside outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{outer: outer}
}

// Declare appends a new binding to this scope, even if name is
// already bound here.
func (e *Environment) Declare(name string, value RuntimeValue) {
	e.bindings = append(e.bindings, binding{name: name, value: value})
}

// Get walks outer links looking for the nearest binding named name,
// scanning each scope's bindings back-to-front so the most recent
// declaration wins.
func (e *Environment) Get(name string) (RuntimeValue, bool) {
	for env := e; env != nil; env = env.outer {
		for i := len(env.bindings) - 1; i >= 0; i-- {
			if env.bindings[i].name == name {
				return env.bindings[i].value, true
			}
		}
	}
	return nil, false
}

// Assign rewrites the first matching binding (scanning back-to-front)
// in the innermost scope that contains name. If no scope contains
// name, it is declared fresh in the innermost (this) scope.
func (e *Environment) Assign(name string, value RuntimeValue) {
	for env := e; env != nil; env = env.outer {
		for i := len(env.bindings) - 1; i >= 0; i-- {
			if env.bindings[i].name == name {
				env.bindings[i].value = value
				return
			}
		}
	}
	e.Declare(name, value)
}
