package runtime

import "strconv"

// Environment is a lexical scope: a name -> Value binding table plus a
// pointer to the enclosing (outer) scope. Lookup walks only along outer
// pointers; frames are never merged or flattened (spec §4.2).
type Environment struct {
	store map[Sym]Value
	outer *Environment
}

// NewEnvironment creates a root-level environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[Sym]Value)}
}

// NewEnclosedEnvironment creates a child environment enclosed by outer,
// used for function bodies and `let*` blocks.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[Sym]Value), outer: outer}
}

// Set inserts or overwrites name in the current frame only (spec §4.2
// `set`).
func (e *Environment) Set(name Sym, value Value) {
	e.store[name] = value
}

// find returns the nearest frame (including e) containing name, or nil.
func (e *Environment) find(name Sym) *Environment {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			return env
		}
	}
	return nil
}

// Get returns the value bound to name, walking outer scopes as needed. It
// returns a *NotFoundError wrapped as an error when no frame binds name.
func (e *Environment) Get(name Sym) (Value, error) {
	if env := e.find(name); env != nil {
		return env.store[name], nil
	}
	return nil, &NotFoundError{Name: string(name)}
}

// Outer returns the enclosing environment, or nil at the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Bind binds params to args positionally. If isVariadic is true, the
// separate variadic name is bound to a List holding every actual argument
// left over after params, per `fn*`'s `&` parameter rule (spec §4.5).
func (e *Environment) Bind(params []Sym, variadic Sym, isVariadic bool, args []Value) error {
	if isVariadic {
		if len(args) < len(params) {
			return &ArityError{Expected: len(params), Got: len(args), Variadic: true}
		}
		for i, p := range params {
			e.Set(p, args[i])
		}
		rest := append([]Value(nil), args[len(params):]...)
		e.Set(variadic, NewList(rest...))
		return nil
	}

	if len(args) != len(params) {
		return &ArityError{Expected: len(params), Got: len(args)}
	}
	for i, p := range params {
		e.Set(p, args[i])
	}
	return nil
}

// ArityError reports a parameter/argument count mismatch in Bind.
type ArityError struct {
	Expected int
	Got      int
	Variadic bool
}

func (e *ArityError) Error() string {
	if e.Variadic {
		return "wrong number of arguments: expected at least " +
			strconv.Itoa(e.Expected) + ", got " + strconv.Itoa(e.Got)
	}
	return "wrong number of arguments: expected " + strconv.Itoa(e.Expected) + ", got " + strconv.Itoa(e.Got)
}
