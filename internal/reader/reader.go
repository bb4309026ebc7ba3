// Package reader implements the recursive-descent half of the reader: it
// consumes internal/lexer's token stream and builds runtime.Value trees —
// lists, vectors, maps, and atoms — including the reader-macro rewrites
// for quote/quasiquote/unquote/splice-unquote/deref/with-meta (spec §4.4).
package reader

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/golisp/internal/interp/runtime"
	"github.com/cwbudde/golisp/internal/lexer"
	"github.com/cwbudde/golisp/pkg/token"
)

// Reader parses one form at a time from source text.
type Reader struct {
	lex     *lexer.Lexer
	lookhd  *token.Token
	lookErr error
}

// New creates a Reader over source.
func New(source string) *Reader {
	return &Reader{lex: lexer.New(source)}
}

// Error is a parse-time failure with position information, distinct from
// a lexer.Error only in that it may also report structural problems (a
// map with a non-string/keyword key, an unexpected closing bracket seen
// out of context).
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

func (r *Reader) next() (token.Token, error) {
	if r.lookhd != nil {
		t := *r.lookhd
		err := r.lookErr
		r.lookhd = nil
		r.lookErr = nil
		return t, err
	}
	return r.lex.Next()
}

func (r *Reader) peek() (token.Token, error) {
	if r.lookhd == nil {
		t, err := r.lex.Next()
		r.lookhd = &t
		r.lookErr = err
	}
	return *r.lookhd, r.lookErr
}

// ReadForm reads a single top-level form. At end of input it returns a nil
// Value and a sentinel error the caller can test with IsEOF.
func ReadForm(source string) (runtime.Value, error) {
	return New(source).Form()
}

// Form reads the next form from the reader.
func (r *Reader) Form() (runtime.Value, error) {
	t, err := r.next()
	if err != nil {
		return nil, err
	}
	return r.formFromToken(t)
}

// eofSentinel is returned, unwrapped, when Form is called at end of input.
type eofSentinel struct{}

func (eofSentinel) Error() string { return "unexpected EOF" }

// IsEOF reports whether err indicates clean end of input.
func IsEOF(err error) bool {
	_, ok := err.(eofSentinel)
	return ok
}

func (r *Reader) formFromToken(t token.Token) (runtime.Value, error) {
	switch t.Kind {
	case token.EOF:
		return nil, eofSentinel{}

	case token.LParen:
		return r.readSeq(token.RParen, func(items []runtime.Value) runtime.Value {
			return &runtime.List{Items: items, Meta: runtime.Nil{}}
		})
	case token.LBracket:
		return r.readSeq(token.RBracket, func(items []runtime.Value) runtime.Value {
			return &runtime.Vec{Items: items, Meta: runtime.Nil{}}
		})
	case token.LBrace:
		return r.readMap(t.Pos)

	case token.RParen, token.RBracket, token.RBrace:
		return nil, &Error{Message: fmt.Sprintf("unexpected '%s'", t.Literal), Pos: t.Pos}

	case token.Quote:
		return r.readWrapped("quote")
	case token.Quasiquote:
		return r.readWrapped("quasiquote")
	case token.Unquote:
		return r.readWrapped("unquote")
	case token.SpliceUnquote:
		return r.readWrapped("splice-unquote")
	case token.Deref:
		return r.readWrapped("deref")
	case token.Meta:
		meta, err := r.Form()
		if err != nil {
			return nil, err
		}
		value, err := r.Form()
		if err != nil {
			return nil, err
		}
		return runtime.NewList(runtime.Sym("with-meta"), value, meta), nil

	case token.String:
		return runtime.Str(norm.NFC.String(t.Literal)), nil

	case token.Atom:
		return parseAtom(norm.NFC.String(t.Literal)), nil
	}

	return nil, &Error{Message: "unrecognized token " + t.Kind.String(), Pos: t.Pos}
}

// ReadAll reads every top-level form out of source. On a reader/lexer
// error it stops at that point and returns the error alongside every form
// read ahead of it — the lexer does not resynchronize after an unbalanced
// delimiter or bad escape, so there is nothing to gain by continuing to
// scan past the failure.
func ReadAll(source string) ([]runtime.Value, error) {
	r := New(source)
	var forms []runtime.Value
	for {
		form, err := r.Form()
		if err != nil {
			if IsEOF(err) {
				return forms, nil
			}
			return forms, err
		}
		forms = append(forms, form)
	}
}

func (r *Reader) readWrapped(head string) (runtime.Value, error) {
	inner, err := r.Form()
	if err != nil {
		return nil, err
	}
	return runtime.NewList(runtime.Sym(head), inner), nil
}

func (r *Reader) readSeq(closer token.Kind, build func([]runtime.Value) runtime.Value) (runtime.Value, error) {
	var items []runtime.Value
	for {
		t, err := r.peek()
		if err != nil {
			return nil, err
		}
		if t.Kind == token.EOF {
			return nil, &Error{Message: fmt.Sprintf("expected '%s', got EOF", closer), Pos: t.Pos}
		}
		if t.Kind == closer {
			r.next()
			return build(items), nil
		}
		form, err := r.Form()
		if err != nil {
			return nil, err
		}
		items = append(items, form)
	}
}

func (r *Reader) readMap(openPos token.Position) (runtime.Value, error) {
	m := runtime.NewMap()
	for {
		t, err := r.peek()
		if err != nil {
			return nil, err
		}
		if t.Kind == token.EOF {
			return nil, &Error{Message: "expected '}', got EOF", Pos: t.Pos}
		}
		if t.Kind == token.RBrace {
			r.next()
			return m, nil
		}

		keyForm, err := r.Form()
		if err != nil {
			return nil, err
		}
		key, ok := runtime.KeyOf(keyForm)
		if !ok {
			return nil, &Error{Message: "map key must be a string or keyword, got " + keyForm.Type(), Pos: t.Pos}
		}

		vt, err := r.peek()
		if err != nil {
			return nil, err
		}
		if vt.Kind == token.RBrace || vt.Kind == token.EOF {
			return nil, &Error{Message: "map literal is missing a value", Pos: vt.Pos}
		}
		valueForm, err := r.Form()
		if err != nil {
			return nil, err
		}
		m.Set(key, valueForm)
	}
}

func parseAtom(text string) runtime.Value {
	switch text {
	case "nil":
		return runtime.Nil{}
	case "true":
		return runtime.Bool(true)
	case "false":
		return runtime.Bool(false)
	}
	if strings.HasPrefix(text, ":") {
		return runtime.Kw(text[1:])
	}
	if n, ok := parseInt(text); ok {
		return n
	}
	return runtime.Sym(text)
}

// parseInt attempts to parse text as an integer literal: an optional
// leading sign, at most one thousands comma, requiring at least one
// digit. (A lone comma never actually reaches here, since the tokenizer
// treats ',' as whitespace and so never includes it in an atom's text;
// the comma-stripping below is kept for fidelity with forms read through
// any future tokenizer that stops treating comma as whitespace.)
func parseInt(text string) (runtime.Int, bool) {
	if text == "" {
		return 0, false
	}

	sign := int64(1)
	digits := text
	if digits[0] == '+' {
		digits = digits[1:]
	} else if digits[0] == '-' {
		sign = -1
		digits = digits[1:]
	}
	if digits == "" || strings.Count(digits, ".") > 0 {
		return 0, false
	}
	digits = strings.Replace(digits, ",", "", 1)
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	val, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return runtime.Int(sign * val), true
}
