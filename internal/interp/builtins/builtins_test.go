package builtins

import (
	"testing"

	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
	"github.com/cwbudde/golisp/pkg/printer"
)

func newTestEnv(t *testing.T) (*runtime.Environment, *evaluator.Evaluator) {
	t.Helper()
	root := runtime.NewEnvironment()
	ev := evaluator.New(nil)
	Register(root, ev, root, Options{})
	return root, ev
}

func call(t *testing.T, env *runtime.Environment, name string, args ...runtime.Value) (runtime.Value, error) {
	t.Helper()
	v, err := env.Get(runtime.Sym(name))
	if err != nil {
		t.Fatalf("builtin %q not registered: %v", name, err)
	}
	fn, ok := v.(*runtime.Fn)
	if !ok || fn.Native == nil {
		t.Fatalf("%q is not a native function", name)
	}
	return fn.Native(args)
}

func mustReadable(t *testing.T, env *runtime.Environment, name string, args ...runtime.Value) string {
	t.Helper()
	v, err := call(t, env, name, args...)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}
	return printer.PrintReadable(v)
}

func TestArithmetic(t *testing.T) {
	env, _ := newTestEnv(t)

	if got := mustReadable(t, env, "+", runtime.Int(1), runtime.Int(2), runtime.Int(3)); got != "6" {
		t.Fatalf("+ : got %s", got)
	}
	if got := mustReadable(t, env, "-", runtime.Int(10), runtime.Int(3), runtime.Int(2)); got != "5" {
		t.Fatalf("- : got %s", got)
	}
	if got := mustReadable(t, env, "-", runtime.Int(7)); got != "7" {
		t.Fatalf("unary - should be identity, got %s", got)
	}
	if got := mustReadable(t, env, "*", runtime.Int(2), runtime.Int(3), runtime.Int(4)); got != "24" {
		t.Fatalf("* : got %s", got)
	}
	if got := mustReadable(t, env, "/", runtime.Int(20), runtime.Int(4)); got != "5" {
		t.Fatalf("/ : got %s", got)
	}

	_, err := call(t, env, "/", runtime.Int(5), runtime.Int(0))
	if err == nil {
		t.Fatal("expected division-by-zero error")
	}
	thrown := evaluator.AsThrown(err)
	if printer.PrintDisplay(thrown.Payload) == "" {
		t.Fatal("expected a non-empty thrown payload")
	}
}

func TestComparisons(t *testing.T) {
	env, _ := newTestEnv(t)
	if got := mustReadable(t, env, "<", runtime.Int(1), runtime.Int(2)); got != "true" {
		t.Fatalf("< : got %s", got)
	}
	if got := mustReadable(t, env, ">=", runtime.Int(1), runtime.Int(2)); got != "false" {
		t.Fatalf(">= : got %s", got)
	}
	if got := mustReadable(t, env, "=", runtime.Str("a"), runtime.Str("a")); got != "true" {
		t.Fatalf("= on equal strings: got %s", got)
	}
}

func TestPredicates(t *testing.T) {
	env, _ := newTestEnv(t)
	cases := []struct {
		name string
		args []runtime.Value
		want string
	}{
		{"nil?", []runtime.Value{runtime.Nil{}}, "true"},
		{"nil?", []runtime.Value{runtime.Int(0)}, "false"},
		{"symbol?", []runtime.Value{runtime.Sym("x")}, "true"},
		{"keyword?", []runtime.Value{runtime.Kw("x")}, "true"},
		{"list?", []runtime.Value{runtime.NewList(runtime.Int(1))}, "true"},
		{"list?", []runtime.Value{runtime.NewVec(runtime.Int(1))}, "false"},
		{"sequential?", []runtime.Value{runtime.NewVec(runtime.Int(1))}, "true"},
		{"empty?", []runtime.Value{runtime.NewList()}, "true"},
		{"empty?", []runtime.Value{runtime.Str("")}, "true"},
		{"empty?", []runtime.Value{runtime.Str("a")}, "false"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustReadable(t, env, tt.name, tt.args...); got != tt.want {
				t.Fatalf("%s: got %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestSequenceBuiltins(t *testing.T) {
	env, _ := newTestEnv(t)

	if got := mustReadable(t, env, "cons", runtime.Int(1), runtime.NewList(runtime.Int(2), runtime.Int(3))); got != "(1 2 3)" {
		t.Fatalf("cons: got %s", got)
	}
	if got := mustReadable(t, env, "concat", runtime.NewList(runtime.Int(1)), runtime.NewVec(runtime.Int(2), runtime.Int(3))); got != "(1 2 3)" {
		t.Fatalf("concat: got %s", got)
	}
	if got := mustReadable(t, env, "first", runtime.NewList()); got != "nil" {
		t.Fatalf("first of empty list: got %s", got)
	}
	if got := mustReadable(t, env, "rest", runtime.NewList(runtime.Int(1), runtime.Int(2))); got != "(2)" {
		t.Fatalf("rest: got %s", got)
	}
	if got := mustReadable(t, env, "count", runtime.NewVec(runtime.Int(1), runtime.Int(2))); got != "2" {
		t.Fatalf("count: got %s", got)
	}
	if got := mustReadable(t, env, "seq", runtime.Str("ab")); got != `("a" "b")` {
		t.Fatalf("seq on string: got %s", got)
	}
	if got := mustReadable(t, env, "conj", runtime.NewList(runtime.Int(1)), runtime.Int(2), runtime.Int(3)); got != "(3 2 1)" {
		t.Fatalf("conj onto list: got %s", got)
	}
	if got := mustReadable(t, env, "conj", runtime.NewVec(runtime.Int(1)), runtime.Int(2), runtime.Int(3)); got != "[1 2 3]" {
		t.Fatalf("conj onto vector: got %s", got)
	}

	_, err := call(t, env, "nth", runtime.NewList(runtime.Int(1)), runtime.Int(5))
	if err == nil {
		t.Fatal("expected an out-of-bounds error from nth")
	}
}

func TestHashMapBuiltins(t *testing.T) {
	env, _ := newTestEnv(t)

	m := mustCall(t, env, "hash-map", runtime.Kw("a"), runtime.Int(1), runtime.Kw("b"), runtime.Int(2))
	if got := mustReadable(t, env, "get", m, runtime.Kw("a")); got != "1" {
		t.Fatalf("get: got %s", got)
	}
	if got := mustReadable(t, env, "contains?", m, runtime.Kw("z")); got != "false" {
		t.Fatalf("contains?: got %s", got)
	}

	m2 := mustCall(t, env, "assoc", m, runtime.Kw("c"), runtime.Int(3))
	if got := mustReadable(t, env, "get", m2, runtime.Kw("c")); got != "3" {
		t.Fatalf("assoc: got %s", got)
	}
	if got := mustReadable(t, env, "get", m, runtime.Kw("c")); got != "nil" {
		t.Fatalf("assoc mutated original map: got %s", got)
	}

	m3 := mustCall(t, env, "dissoc", m2, runtime.Kw("a"))
	if got := mustReadable(t, env, "contains?", m3, runtime.Kw("a")); got != "false" {
		t.Fatalf("dissoc: got %s", got)
	}
}

func mustCall(t *testing.T, env *runtime.Environment, name string, args ...runtime.Value) runtime.Value {
	t.Helper()
	v, err := call(t, env, name, args...)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}
	return v
}

func TestAtomBuiltins(t *testing.T) {
	env, ev := newTestEnv(t)
	_ = ev
	a := mustCall(t, env, "atom", runtime.Int(1))
	if got := mustReadable(t, env, "deref", a); got != "1" {
		t.Fatalf("deref: got %s", got)
	}
	mustCall(t, env, "reset!", a, runtime.Int(5))
	if got := mustReadable(t, env, "deref", a); got != "5" {
		t.Fatalf("deref after reset!: got %s", got)
	}
}

func TestStringBuiltins(t *testing.T) {
	env, _ := newTestEnv(t)
	if got := mustReadable(t, env, "str", runtime.Str("a"), runtime.Int(1)); got != `"a1"` {
		t.Fatalf("str: got %s", got)
	}
	if got := mustReadable(t, env, "pr-str", runtime.Str("a")); got != `"\"a\""` {
		t.Fatalf("pr-str: got %s", got)
	}
	if got := mustReadable(t, env, "symbol", runtime.Str("foo")); got != "foo" {
		t.Fatalf("symbol: got %s", got)
	}
	if got := mustReadable(t, env, "keyword", runtime.Str("foo")); got != ":foo" {
		t.Fatalf("keyword: got %s", got)
	}
	if got := mustReadable(t, env, "read-string", runtime.Str("(1 2 3)")); got != "(1 2 3)" {
		t.Fatalf("read-string: got %s", got)
	}
}

func TestMetaBuiltins(t *testing.T) {
	env, _ := newTestEnv(t)
	lst := runtime.NewList(runtime.Int(1))
	withMeta := mustCall(t, env, "with-meta", lst, runtime.Kw("tag"))
	if got := mustReadable(t, env, "meta", withMeta); got != ":tag" {
		t.Fatalf("meta: got %s", got)
	}
	if got := mustReadable(t, env, "meta", lst); got != "nil" {
		t.Fatalf("with-meta must not mutate the original value: got %s", got)
	}
}

func TestApplyAndMap(t *testing.T) {
	env, ev := newTestEnv(t)
	plus, err := env.Get(runtime.Sym("+"))
	if err != nil {
		t.Fatalf("lookup +: %v", err)
	}
	fn := plus.(*runtime.Fn)

	v, err := call(t, env, "apply", fn, runtime.Int(1), runtime.Int(2), runtime.NewList(runtime.Int(3), runtime.Int(4)))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if printer.PrintReadable(v) != "10" {
		t.Fatalf("apply: got %s", printer.PrintReadable(v))
	}

	square := &runtime.Fn{Name: "square", Native: func(args []runtime.Value) (runtime.Value, error) {
		n := args[0].(runtime.Int)
		return n * n, nil
	}, Meta: runtime.Nil{}}

	got, err := call(t, env, "map", square, runtime.NewVec(runtime.Int(1), runtime.Int(2), runtime.Int(3)))
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if printer.PrintReadable(got) != "(1 4 9)" {
		t.Fatalf("map: got %s", printer.PrintReadable(got))
	}
	_ = ev
}
