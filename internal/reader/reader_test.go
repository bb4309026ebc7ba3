package reader

import (
	"testing"

	"github.com/cwbudde/golisp/internal/interp/runtime"
	"github.com/cwbudde/golisp/pkg/printer"
)

func TestReadFormAtoms(t *testing.T) {
	tests := []struct {
		src  string
		want runtime.Value
	}{
		{"nil", runtime.Nil{}},
		{"true", runtime.Bool(true)},
		{"false", runtime.Bool(false)},
		{"42", runtime.Int(42)},
		{"-7", runtime.Int(-7)},
		{"+3", runtime.Int(3)},
		{":foo", runtime.Kw("foo")},
		{"foo", runtime.Sym("foo")},
		{`"hello"`, runtime.Str("hello")},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := ReadForm(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !runtime.Equal(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReadFormCollections(t *testing.T) {
	lst, err := ReadForm("(1 2 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := lst.(*runtime.List); !ok {
		t.Fatalf("expected a List, got %T", lst)
	}

	vec, err := ReadForm("[1 2 3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := vec.(*runtime.Vec); !ok {
		t.Fatalf("expected a Vec, got %T", vec)
	}

	m, err := ReadForm(`{:a 1 "b" 2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mp, ok := m.(*runtime.Map)
	if !ok {
		t.Fatalf("expected a Map, got %T", m)
	}
	if mp.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", mp.Len())
	}
}

func TestReadFormReaderMacros(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"quote", "'x", "(quote x)"},
		{"quasiquote", "`x", "(quasiquote x)"},
		{"unquote", "~x", "(unquote x)"},
		{"splice-unquote", "~@x", "(splice-unquote x)"},
		{"deref", "@x", "(deref x)"},
		{"with-meta", "^{:a 1} x", "(with-meta x {:a 1})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := ReadForm(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := printer.PrintReadable(form)
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadFormMapRejectsNonStringKey(t *testing.T) {
	if _, err := ReadForm("{1 2}"); err == nil {
		t.Fatal("expected an error for a non-string/keyword map key")
	}
}

func TestReadFormMissingMapValue(t *testing.T) {
	if _, err := ReadForm("{:a}"); err == nil {
		t.Fatal("expected an error for a map literal missing a value")
	}
}

func TestRoundTripReadablePrint(t *testing.T) {
	srcs := []string{
		"42", `"hello\nworld"`, ":kw", "sym", "nil", "true", "false",
		"(1 2 3)", "[1 2 3]", `{:a 1 :b 2}`,
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			v, err := ReadForm(src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			printed := printer.PrintReadable(v)
			v2, err := ReadForm(printed)
			if err != nil {
				t.Fatalf("re-read error: %v", err)
			}
			if !runtime.Equal(v, v2) {
				t.Fatalf("round-trip mismatch: %v != %v", v, v2)
			}
		})
	}
}

func TestIsEOF(t *testing.T) {
	_, err := ReadForm("")
	if !IsEOF(err) {
		t.Fatalf("expected IsEOF on empty input, got %v", err)
	}
}

func TestReadAll(t *testing.T) {
	forms, err := ReadAll("(+ 1 2) [3 4] :kw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}
	if printer.PrintReadable(forms[2]) != ":kw" {
		t.Fatalf("got %s", printer.PrintReadable(forms[2]))
	}
}

func TestReadAllStopsAtFirstError(t *testing.T) {
	forms, err := ReadAll("(+ 1 2) (3 4")
	if err == nil {
		t.Fatal("expected an error for an unbalanced trailing form")
	}
	if len(forms) != 1 {
		t.Fatalf("expected the one form read ahead of the error, got %d", len(forms))
	}
}
