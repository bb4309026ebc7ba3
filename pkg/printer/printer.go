// Package printer renders golisp runtime values as text, in both the
// readable form (quoted strings, escaped specials — what the reader can
// read back) and the display form (raw contents, used by `str`/`println`).
package printer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/golisp/internal/interp/runtime"
)

// PrintReadable renders v in readable form: strings are quoted and
// escaped, matching what the Reader accepts back (spec §8's round-trip
// property).
func PrintReadable(v runtime.Value) string {
	var sb strings.Builder
	write(&sb, v, true)
	return sb.String()
}

// PrintDisplay renders v in display form: string contents are emitted
// raw, with no surrounding quotes or escaping.
func PrintDisplay(v runtime.Value) string {
	var sb strings.Builder
	write(&sb, v, false)
	return sb.String()
}

func write(sb *strings.Builder, v runtime.Value, readable bool) {
	switch t := v.(type) {
	case runtime.Nil:
		sb.WriteString("nil")
	case runtime.Bool:
		if t {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case runtime.Int:
		sb.WriteString(strconv.FormatInt(int64(t), 10))
	case runtime.Str:
		if readable {
			writeEscapedString(sb, string(t))
		} else {
			sb.WriteString(string(t))
		}
	case runtime.Sym:
		sb.WriteString(string(t))
	case runtime.Kw:
		sb.WriteString(":")
		sb.WriteString(string(t))
	case *runtime.List:
		sb.WriteString("(")
		writeItems(sb, t.Items, readable)
		sb.WriteString(")")
	case *runtime.Vec:
		sb.WriteString("[")
		writeItems(sb, t.Items, readable)
		sb.WriteString("]")
	case *runtime.Map:
		sb.WriteString("{")
		for i, k := range t.Keys() {
			if i > 0 {
				sb.WriteString(" ")
			}
			write(sb, k.Value(), readable)
			sb.WriteString(" ")
			val, _ := t.Get(k)
			write(sb, val, readable)
		}
		sb.WriteString("}")
	case *runtime.Atom:
		sb.WriteString("(atom ")
		write(sb, t.Deref(), readable)
		sb.WriteString(")")
	case *runtime.Fn:
		if t.IsMacro {
			sb.WriteString("#<macro>")
		} else {
			sb.WriteString("#<function>")
		}
	default:
		sb.WriteString("#<unknown>")
	}
}

func writeItems(sb *strings.Builder, items []runtime.Value, readable bool) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(" ")
		}
		write(sb, item, readable)
	}
}

func writeEscapedString(sb *strings.Builder, s string) {
	sb.WriteString(`"`)
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString(`"`)
}
