package interp

import (
	"strings"
	"testing"

	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
	"github.com/cwbudde/golisp/pkg/printer"
)

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt, err := New(Options{HostLanguage: "test"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rt
}

func evalOne(t *testing.T, rt *Runtime, src string) runtime.Value {
	t.Helper()
	v, err := rt.EvalSource(src, "<test>")
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

// TestEndToEndScenarios exercises spec §8's concrete end-to-end scenarios.
func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"arithmetic", "(+ 1 2 3)", "6"},
		{"let-star", "(let* (a 1 b (+ a 1)) (+ a b))", "3"},
		{"variadic-count", "((fn* (& xs) (count xs)) 1 2 3)", "3"},
		{"quasiquote-splice", "(let* (a 1) `(1 ~a 3 ~@(list 4 5)))", "(1 1 3 4 5)"},
		{"map-square", "(map (fn* (x) (* x x)) [1 2 3 4])", "(1 4 9 16)"},
		{"cond-true", "(cond false 1 false 2 true 3)", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestRuntime(t)
			got := evalOne(t, rt, tt.src)
			if printed := printer.PrintReadable(got); printed != tt.want {
				t.Fatalf("got %s, want %s", printed, tt.want)
			}
		})
	}
}

func TestAtomSwap(t *testing.T) {
	rt := newTestRuntime(t)
	evalOne(t, rt, "(def! a (atom 1))")
	got := evalOne(t, rt, "(swap! a (fn* (x y) (+ x y)) 10)")
	if printer.PrintReadable(got) != "11" {
		t.Fatalf("swap! result: got %s", printer.PrintReadable(got))
	}
	got2 := evalOne(t, rt, "@a")
	if printer.PrintReadable(got2) != "11" {
		t.Fatalf("deref after swap!: got %s", printer.PrintReadable(got2))
	}
}

func TestTryCatch(t *testing.T) {
	rt := newTestRuntime(t)
	got := evalOne(t, rt, `(try* (throw {:msg "bad"}) (catch* e (get e :msg)))`)
	if printer.PrintReadable(got) != `"bad"` {
		t.Fatalf("got %s", printer.PrintReadable(got))
	}
}

func TestEqualityAcrossListVector(t *testing.T) {
	rt := newTestRuntime(t)
	if got := evalOne(t, rt, "(= '(1 2 3) [1 2 3])"); printer.PrintReadable(got) != "true" {
		t.Fatalf("expected true, got %s", printer.PrintReadable(got))
	}
	if got := evalOne(t, rt, "(list? [1 2 3])"); printer.PrintReadable(got) != "false" {
		t.Fatalf("expected false, got %s", printer.PrintReadable(got))
	}
	if got := evalOne(t, rt, "(sequential? [1 2 3])"); printer.PrintReadable(got) != "true" {
		t.Fatalf("expected true, got %s", printer.PrintReadable(got))
	}
}

func TestCondOddArity(t *testing.T) {
	rt := newTestRuntime(t)
	_, err := rt.EvalSource("(cond false)", "<test>")
	if err == nil {
		t.Fatal("expected an error for an odd number of cond forms")
	}
	thrown := evaluator.AsThrown(err)
	if !strings.Contains(printer.PrintDisplay(thrown.Payload), "odd number of forms to cond") {
		t.Fatalf("unexpected thrown payload: %v", thrown.Payload)
	}
}

// TestTailCallOptimization exercises spec §8's TCO property: a
// tail-recursive function invoked well beyond any reasonable Go stack
// depth must not overflow.
func TestTailCallOptimization(t *testing.T) {
	rt := newTestRuntime(t)
	evalOne(t, rt, `
		(def! count-to
		  (fn* (n acc)
		    (if (> n 0)
		      (count-to (- n 1) (+ acc 1))
		      acc)))
	`)
	got := evalOne(t, rt, "(count-to 100000 0)")
	if printer.PrintReadable(got) != "100000" {
		t.Fatalf("got %s", printer.PrintReadable(got))
	}
}

// TestTryCatchTailRecursion exercises the tail-position fidelity of a
// catch* handler: each iteration throws, is caught, and the handler
// recurses — this must trampoline the same way a plain tail call does.
func TestTryCatchTailRecursion(t *testing.T) {
	rt := newTestRuntime(t)
	evalOne(t, rt, `
		(def! loop2
		  (fn* (n)
		    (if (> n 0)
		      (try* (throw n) (catch* e (loop2 (- e 1))))
		      "done")))
	`)
	got := evalOne(t, rt, "(loop2 50000)")
	if printer.PrintReadable(got) != `"done"` {
		t.Fatalf("got %s", printer.PrintReadable(got))
	}
}

func TestMacroFixpoint(t *testing.T) {
	rt := newTestRuntime(t)
	evalOne(t, rt, "(defmacro! twice (fn* (x) (list 'do x x)))")
	got := evalOne(t, rt, "(macroexpand '(twice (def! y 1)))")
	if printer.PrintReadable(got) != "(do (def! y 1) (def! y 1))" {
		t.Fatalf("got %s", printer.PrintReadable(got))
	}
}

// TestMacroExpandsToMacroCall exercises the fixpoint rule in Eval itself,
// not just the `macroexpand` special form: a macro whose expansion is
// itself a macro call must keep expanding until the head is no longer a
// macro before normal evaluation proceeds.
func TestMacroExpandsToMacroCall(t *testing.T) {
	rt := newTestRuntime(t)
	evalOne(t, rt, "(defmacro! m1 (fn* (x) (list 'm2 x)))")
	evalOne(t, rt, "(defmacro! m2 (fn* (y) (list 'quote y)))")
	got := evalOne(t, rt, "(m1 foo)")
	if printer.PrintReadable(got) != "foo" {
		t.Fatalf("got %s", printer.PrintReadable(got))
	}
}

func TestLoadFilePrelude(t *testing.T) {
	rt := newTestRuntime(t)
	if _, err := rt.Root.Get(runtime.Sym("not")); err != nil {
		t.Fatalf("expected prelude to define `not`: %v", err)
	}
	if _, err := rt.Root.Get(runtime.Sym("load-file")); err != nil {
		t.Fatalf("expected prelude to define `load-file`: %v", err)
	}
	got := evalOne(t, rt, "(not false)")
	if printer.PrintReadable(got) != "true" {
		t.Fatalf("got %s", printer.PrintReadable(got))
	}
}

func TestApplyingNonFunctionRaises(t *testing.T) {
	rt := newTestRuntime(t)
	evalOne(t, rt, "(def! x 5)")
	_, err := rt.EvalSource("(x 1 2)", "<test>")
	if err == nil {
		t.Fatal("expected an error applying a non-function value")
	}
	thrown := evaluator.AsThrown(err)
	msg := printer.PrintDisplay(thrown.Payload)
	if !strings.Contains(msg, "cannot apply non-function") || !strings.Contains(msg, "x") {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestUnboundSymbolRaises(t *testing.T) {
	rt := newTestRuntime(t)
	_, err := rt.EvalSource("undefined-symbol", "<test>")
	if err == nil {
		t.Fatal("expected a lookup error")
	}
}
