package builtins

import (
	"strconv"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/golisp/internal/interp/runtime"
)

// registerInterop installs the JSON/YAML interchange builtins this dialect
// adds beyond spec's own core list: `read-json`, `json-str`, `read-yaml`,
// `yaml-str`. They let host-embedded scripts consume and produce the two
// structured-text formats most host languages exchange data in, using the
// same libraries the rest of the pack reaches for rather than a hand-rolled
// encoder/decoder.
func registerInterop(env *runtime.Environment) {
	def(env, "read-json", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("read-json", "1", len(args))
		}
		s, ok := args[0].(runtime.Str)
		if !ok {
			return nil, typeError("read-json", "a string", args[0])
		}
		if !gjson.Valid(string(s)) {
			return nil, typeError("read-json", "valid JSON text", args[0])
		}
		return fromGJSON(gjson.Parse(string(s))), nil
	})

	def(env, "json-str", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("json-str", "1", len(args))
		}
		doc, err := toJSON(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.Str(strings.TrimRight(string(pretty.Pretty([]byte(doc))), "\n")), nil
	})

	def(env, "read-yaml", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("read-yaml", "1", len(args))
		}
		s, ok := args[0].(runtime.Str)
		if !ok {
			return nil, typeError("read-yaml", "a string", args[0])
		}
		var native any
		if err := goyaml.Unmarshal([]byte(s), &native); err != nil {
			return nil, typeError("read-yaml", "valid YAML text", args[0])
		}
		return fromNative(native), nil
	})

	def(env, "yaml-str", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("yaml-str", "1", len(args))
		}
		native, err := toNative(args[0])
		if err != nil {
			return nil, err
		}
		out, err := goyaml.Marshal(native)
		if err != nil {
			return nil, typeError("yaml-str", "a representable value", args[0])
		}
		return runtime.Str(strings.TrimRight(string(out), "\n")), nil
	})
}

func fromGJSON(r gjson.Result) runtime.Value {
	switch {
	case r.IsArray():
		items := r.Array()
		out := make([]runtime.Value, len(items))
		for i, item := range items {
			out[i] = fromGJSON(item)
		}
		return runtime.NewVec(out...)
	case r.IsObject():
		m := runtime.NewMap()
		r.ForEach(func(key, value gjson.Result) bool {
			k, _ := runtime.KeyOf(runtime.Str(key.String()))
			m.Set(k, fromGJSON(value))
			return true
		})
		return m
	case r.Type == gjson.Null:
		return runtime.Nil{}
	case r.Type == gjson.True:
		return runtime.Bool(true)
	case r.Type == gjson.False:
		return runtime.Bool(false)
	case r.Type == gjson.Number:
		return runtime.Int(r.Int())
	default:
		return runtime.Str(r.String())
	}
}

// toJSON renders v as a JSON document, built bottom-up via sjson.SetRaw so
// arrays and objects are assembled the same way sjson's own API composes
// documents rather than through a hand-rolled encoder.
func toJSON(v runtime.Value) (string, error) {
	switch t := v.(type) {
	case runtime.Nil:
		return "null", nil
	case runtime.Bool:
		if t {
			return "true", nil
		}
		return "false", nil
	case runtime.Int:
		return strconv.FormatInt(int64(t), 10), nil
	case runtime.Str:
		return strconv.Quote(string(t)), nil
	case runtime.Kw:
		return strconv.Quote(string(t)), nil
	case *runtime.List, *runtime.Vec:
		items, _ := runtime.Seq(v)
		doc := "[]"
		for _, item := range items {
			raw, err := toJSON(item)
			if err != nil {
				return "", err
			}
			var err2 error
			doc, err2 = sjson.SetRaw(doc, "-1", raw)
			if err2 != nil {
				return "", typeError("json-str", "a serializable sequence", v)
			}
		}
		return doc, nil
	case *runtime.Map:
		doc := "{}"
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			raw, err := toJSON(val)
			if err != nil {
				return "", err
			}
			keyStr := printerKeyString(k)
			var err2 error
			doc, err2 = sjson.SetRaw(doc, sjsonEscapePath(keyStr), raw)
			if err2 != nil {
				return "", typeError("json-str", "a serializable map", v)
			}
		}
		return doc, nil
	default:
		return "", typeError("json-str", "a serializable value", v)
	}
}

func printerKeyString(k runtime.MapKey) string {
	switch t := k.Value().(type) {
	case runtime.Kw:
		return string(t)
	case runtime.Str:
		return string(t)
	default:
		return ""
	}
}

// sjsonEscapePath escapes sjson's path metacharacters (`.`, `*`, `?`) in a
// map key so it is treated as a single literal path segment.
func sjsonEscapePath(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(key)
}

func toNative(v runtime.Value) (any, error) {
	switch t := v.(type) {
	case runtime.Nil:
		return nil, nil
	case runtime.Bool:
		return bool(t), nil
	case runtime.Int:
		return int64(t), nil
	case runtime.Str:
		return string(t), nil
	case runtime.Kw:
		return string(t), nil
	case *runtime.List, *runtime.Vec:
		items, _ := runtime.Seq(v)
		out := make([]any, len(items))
		for i, item := range items {
			n, err := toNative(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case *runtime.Map:
		out := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			n, err := toNative(val)
			if err != nil {
				return nil, err
			}
			out[printerKeyString(k)] = n
		}
		return out, nil
	default:
		return nil, typeError("yaml-str", "a serializable value", v)
	}
}

func fromNative(x any) runtime.Value {
	switch t := x.(type) {
	case nil:
		return runtime.Nil{}
	case bool:
		return runtime.Bool(t)
	case int:
		return runtime.Int(t)
	case int64:
		return runtime.Int(t)
	case uint64:
		return runtime.Int(t)
	case float64:
		return runtime.Int(int64(t))
	case string:
		return runtime.Str(t)
	case []any:
		out := make([]runtime.Value, len(t))
		for i, item := range t {
			out[i] = fromNative(item)
		}
		return runtime.NewVec(out...)
	case map[string]any:
		m := runtime.NewMap()
		for k, val := range t {
			key, _ := runtime.KeyOf(runtime.Str(k))
			m.Set(key, fromNative(val))
		}
		return m
	case map[any]any:
		m := runtime.NewMap()
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			key, _ := runtime.KeyOf(runtime.Str(ks))
			m.Set(key, fromNative(val))
		}
		return m
	default:
		return runtime.Nil{}
	}
}
