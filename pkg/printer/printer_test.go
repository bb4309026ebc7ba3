package printer

import (
	"testing"

	"github.com/cwbudde/golisp/internal/interp/runtime"
)

func TestPrintReadableScalars(t *testing.T) {
	tests := []struct {
		name string
		v    runtime.Value
		want string
	}{
		{"nil", runtime.Nil{}, "nil"},
		{"true", runtime.Bool(true), "true"},
		{"false", runtime.Bool(false), "false"},
		{"int", runtime.Int(42), "42"},
		{"negative int", runtime.Int(-7), "-7"},
		{"symbol", runtime.Sym("foo"), "foo"},
		{"keyword", runtime.Kw("foo"), ":foo"},
		{"string", runtime.Str("hi"), `"hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrintReadable(tt.v); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintReadableEscapesSpecials(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"backslash", `a\b`, `"a\\b"`},
		{"quote", `a"b`, `"a\"b"`},
		{"newline", "a\nb", `"a\nb"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrintReadable(runtime.Str(tt.s)); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintDisplayIsUnescaped(t *testing.T) {
	if got := PrintDisplay(runtime.Str(`a"b\nc`)); got != `a"b\nc` {
		t.Fatalf("got %q", got)
	}
}

func TestPrintReadableCollections(t *testing.T) {
	lst := runtime.NewList(runtime.Int(1), runtime.Str("a"), runtime.Kw("k"))
	if got := PrintReadable(lst); got != `(1 "a" :k)` {
		t.Fatalf("list: got %q", got)
	}

	vec := runtime.NewVec(runtime.Int(1), runtime.Int(2))
	if got := PrintReadable(vec); got != "[1 2]" {
		t.Fatalf("vector: got %q", got)
	}

	m := runtime.NewMap()
	key, ok := runtime.KeyOf(runtime.Kw("a"))
	if !ok {
		t.Fatal("KeyOf failed for keyword")
	}
	m.Set(key, runtime.Int(1))
	if got := PrintReadable(m); got != "{:a 1}" {
		t.Fatalf("map: got %q", got)
	}
}

func TestPrintAtom(t *testing.T) {
	a := runtime.NewAtom(runtime.Int(5))
	if got := PrintReadable(a); got != "(atom 5)" {
		t.Fatalf("atom: got %q", got)
	}
}

func TestPrintFunction(t *testing.T) {
	fn := runtime.NewNative("f", func(args []runtime.Value) (runtime.Value, error) { return runtime.Nil{}, nil })
	if got := PrintReadable(fn); got != "#<function>" {
		t.Fatalf("function: got %q", got)
	}
	macro := fn.AsMacro()
	if got := PrintReadable(macro); got != "#<macro>" {
		t.Fatalf("macro: got %q", got)
	}
}

func TestPrintReadableNonEmpty(t *testing.T) {
	values := []runtime.Value{
		runtime.Int(42),
		runtime.Str("hello\nworld"),
		runtime.Kw("kw"),
		runtime.Sym("sym"),
		runtime.NewList(runtime.Int(1), runtime.Int(2)),
		runtime.NewVec(runtime.Int(1), runtime.Int(2)),
	}
	for _, v := range values {
		printed := PrintReadable(v)
		if printed == "" {
			t.Fatalf("empty printed form for %#v", v)
		}
	}
}
