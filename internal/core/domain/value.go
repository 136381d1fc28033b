package domain

import (
	"strconv"
	"strings"
)

// FieldValue is the raw value of a document field. Readers produce a small
// closed set of shapes: scalars, sequences of scalars, sequences of weighted
// tokens, and tuples (possibly singleton-nested). Normalization must be
// total over all of them.
type FieldValue interface {
	fieldValue()
}

// String is a scalar text value.
type String string

// Int is a scalar integer value, e.g. a publication year.
type Int int

// Float is a scalar numeric value.
type Float float64

// Tuple is a fixed-shape composite element, such as a (surname, given name)
// pair or a one-element affiliation wrapper.
type Tuple []FieldValue

// List is a sequence-shaped field value.
type List []FieldValue

// Token is one element of a feature-shaped value: a key with a trailing
// weight. Normalization drops the weight and keeps the key.
type Token struct {
	Value  FieldValue
	Weight float64
}

func (String) fieldValue() {}
func (Int) fieldValue()    {}
func (Float) fieldValue()  {}
func (Tuple) fieldValue()  {}
func (List) fieldValue()   {}
func (Token) fieldValue()  {}

// KeyKind discriminates the variants of a normalized index key.
type KeyKind uint8

const (
	KindString KeyKind = iota
	KindInt
	KindFloat
	KindPair
)

// Key is a normalized, comparable index key. Two raw elements that
// normalize to the same Key land in the same index slot.
type Key struct {
	kind KeyKind
	str  string
	num  int
	f    float64
	pair [2]string
}

// StringKey returns the key for a text value.
func StringKey(s string) Key { return Key{kind: KindString, str: s} }

// IntKey returns the key for an integer value.
func IntKey(n int) Key { return Key{kind: KindInt, num: n} }

// FloatKey returns the key for a numeric value.
func FloatKey(f float64) Key { return Key{kind: KindFloat, f: f} }

// PairKey returns the key for a two-part value such as an author name.
func PairKey(first, second string) Key {
	return Key{kind: KindPair, pair: [2]string{first, second}}
}

// Kind reports the key variant.
func (k Key) Kind() KeyKind { return k.kind }

// Int returns the integer value of the key, if it has one.
func (k Key) Int() (int, bool) {
	if k.kind != KindInt {
		return 0, false
	}
	return k.num, true
}

// String renders the key for display and for coercion to document identity.
func (k Key) String() string {
	switch k.kind {
	case KindInt:
		return strconv.Itoa(k.num)
	case KindFloat:
		return strconv.FormatFloat(k.f, 'g', -1, 64)
	case KindPair:
		return k.pair[0] + " " + k.pair[1]
	default:
		return k.str
	}
}

// IntRange returns the integer keys in [from, to), in increasing order.
// Used for multi-year field selection when slicing.
func IntRange(from, to int) []Key {
	if to <= from {
		return nil
	}
	keys := make([]Key, 0, to-from)
	for n := from; n < to; n++ {
		keys = append(keys, IntKey(n))
	}
	return keys
}

// NormalizeField expands a raw field value into its index keys. Scalars are
// treated as one-element sequences, sequences as themselves. Within the
// sequence, weighted tokens lose their trailing weight, and singleton
// tuples unwrap to their single element, preserving the element's type.
func NormalizeField(v FieldValue) []Key {
	elements, ok := v.(List)
	if !ok {
		elements = List{v}
	}
	keys := make([]Key, 0, len(elements))
	for _, el := range elements {
		keys = append(keys, NormalizeElement(el))
	}
	return keys
}

// NormalizeElement maps one sequence element to its index key.
func NormalizeElement(v FieldValue) Key {
	switch el := v.(type) {
	case nil:
		return StringKey("")
	case String:
		return StringKey(string(el))
	case Int:
		return IntKey(int(el))
	case Float:
		return FloatKey(float64(el))
	case Token:
		return NormalizeElement(el.Value)
	case Tuple:
		return normalizeComposite([]FieldValue(el))
	case List:
		return normalizeComposite([]FieldValue(el))
	default:
		return StringKey("")
	}
}

// normalizeComposite handles tuple-shaped elements: singletons unwrap to
// their contained scalar, two-part string tuples become pair keys, and
// anything wider folds into a single string key.
func normalizeComposite(parts []FieldValue) Key {
	if len(parts) == 1 {
		return NormalizeElement(parts[0])
	}
	if len(parts) == 2 {
		a, aok := parts[0].(String)
		b, bok := parts[1].(String)
		if aok && bok {
			return PairKey(string(a), string(b))
		}
	}
	rendered := make([]string, len(parts))
	for i, p := range parts {
		rendered[i] = NormalizeElement(p).String()
	}
	return StringKey(strings.Join(rendered, "\x1f"))
}
