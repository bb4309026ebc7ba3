package runtime

// List is an ordered sequence constructed by `()` / `list`.
type List struct {
	Items []Value
	Meta  Value
}

func (*List) Type() string { return "LIST" }

// NewList builds a List with a Nil meta slot.
func NewList(items ...Value) *List {
	return &List{Items: items, Meta: Nil{}}
}

// Vec is an ordered sequence constructed by `[]` / `vector`. Vec compares
// equal to List element-wise (spec §3) but is a distinct type: `vector?`
// and `list?` never both report true for the same value.
type Vec struct {
	Items []Value
	Meta  Value
}

func (*Vec) Type() string { return "VECTOR" }

// NewVec builds a Vec with a Nil meta slot.
func NewVec(items ...Value) *Vec {
	return &Vec{Items: items, Meta: Nil{}}
}

// Seq returns the Items slice common to List and Vec, or nil if v is
// neither. It is the shared entry point for sequence builtins that treat
// List and Vec interchangeably (spec's `sequential?` predicate).
func Seq(v Value) ([]Value, bool) {
	switch t := v.(type) {
	case *List:
		return t.Items, true
	case *Vec:
		return t.Items, true
	}
	return nil, false
}

// Map is a mapping from Str/Kw keys to values. Key order is not
// significant, but Keys/Vals (and the printer) iterate in insertion order
// for reproducible output.
type Map struct {
	keys   []MapKey
	values map[MapKey]Value
	Meta   Value
}

// NewMap builds an empty Map with a Nil meta slot.
func NewMap() *Map {
	return &Map{values: make(map[MapKey]Value), Meta: Nil{}}
}

func (*Map) Type() string { return "MAP" }

// Set inserts or overwrites key -> value, recording insertion order for
// new keys.
func (m *Map) Set(key MapKey, value Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get retrieves the value stored at key.
func (m *Map) Get(key MapKey) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key from the map, if present.
func (m *Map) Delete(key MapKey) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []MapKey {
	return m.keys
}

// Len reports the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Clone returns a shallow copy of m: same values, independent key/value
// storage. Used by assoc/dissoc/with-meta, all of which must not mutate
// the original Map (spec: "all other values are logically immutable").
func (m *Map) Clone() *Map {
	n := &Map{
		keys:   append([]MapKey(nil), m.keys...),
		values: make(map[MapKey]Value, len(m.values)),
		Meta:   m.Meta,
	}
	for k, v := range m.values {
		n.values[k] = v
	}
	return n
}
