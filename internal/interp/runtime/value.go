// Package runtime implements golisp's tagged-value universe: the single
// Value sum type every reader, evaluator, and builtin operates over, plus
// the lexical Environment chain that binds names to values.
//
// There is deliberately no separate AST: a golisp program is code-as-data,
// so the same List/Vec/Map values the reader produces are the values the
// evaluator walks and user code manipulates with cons/first/rest/etc.
package runtime

import "fmt"

// Value is the interface implemented by every runtime value: Nil, Bool,
// Int, Str, Sym, Kw, *List, *Vec, *Map, *Fn, *Atom.
type Value interface {
	// Type returns a short uppercase type tag, used by the `type` builtin
	// and in error messages.
	Type() string
}

// Nil is golisp's single logical nil value.
type Nil struct{}

func (Nil) Type() string { return "NIL" }

// Bool is a boolean value.
type Bool bool

func (Bool) Type() string { return "BOOLEAN" }

// Int is golisp's one numeric type (see spec §9: numeric mode is a
// compile-time choice; this build selects integers).
type Int int64

func (Int) Type() string { return "INTEGER" }

// Str is a sequence of Unicode scalar values.
type Str string

func (Str) Type() string { return "STRING" }

// Sym is an identifier used for environment lookup.
type Sym string

func (Sym) Type() string { return "SYMBOL" }

// Kw is a self-evaluating keyword, printed as `:name`. Kw and Str occupy
// disjoint key spaces in Map (see MapKey).
type Kw string

func (Kw) Type() string { return "KEYWORD" }

// IsTruthy implements the language's truth rule: everything is truthy
// except Nil and Bool(false).
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// NotFoundError is raised when an environment lookup or function
// application fails to resolve a symbol.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s' not found", e.Name)
}
