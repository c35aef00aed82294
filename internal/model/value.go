// Package model defines the data structures shared by the jsoned layers.
package model

import (
	"math"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is an IEEE-754 double.
	KindNumber
	// KindString is a UTF-8 string.
	KindString
	// KindArray is an ordered sequence of values.
	KindArray
	// KindObject is an ordered mapping from string keys to values.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a JSON value. Containers are always handled through pointers so a
// change made through one reference is seen by every holder of the document.
type Value struct {
	kind  Kind
	b     bool
	n     float64
	s     string
	items []*Value
	obj   *Object
}

// Null returns a new null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a new boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Number returns a new number value. Non-finite inputs become 0 since JSON
// cannot represent them.
func Number(n float64) *Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}

	return &Value{kind: KindNumber, n: n}
}

// String returns a new string value.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// NewArray returns a new array holding items.
func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, items: append([]*Value{}, items...)}
}

// NewObject returns a new empty object.
func NewObject() *Value {
	return &Value{kind: KindObject, obj: newObject()}
}

// Kind reports the variant held by v. A nil Value is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}

	return v.kind
}

// IsContainer reports whether v is an array or an object.
func (v *Value) IsContainer() bool {
	k := v.Kind()
	return k == KindArray || k == KindObject
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() bool { return v != nil && v.b }

// AsNumber returns the number payload.
func (v *Value) AsNumber() float64 {
	if v == nil {
		return 0
	}

	return v.n
}

// AsString returns the string payload.
func (v *Value) AsString() string {
	if v == nil {
		return ""
	}

	return v.s
}

// Len returns the number of elements of an array or entries of an object,
// and 0 for scalars.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.items)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Items returns the elements of an array. The slice must not be modified.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}

	return v.items
}

// Index returns the element at i of an array.
func (v *Value) Index(i int) (*Value, bool) {
	if v.Kind() != KindArray || i < 0 || i >= len(v.items) {
		return nil, false
	}

	return v.items[i], true
}

// SetIndex stores item at position i of an array. Positions past the end are
// filled with nulls first, so i == Len() appends.
func (v *Value) SetIndex(i int, item *Value) bool {
	if v.Kind() != KindArray || i < 0 {
		return false
	}

	for len(v.items) < i {
		v.items = append(v.items, Null())
	}

	if i == len(v.items) {
		v.items = append(v.items, item)
	} else {
		v.items[i] = item
	}

	return true
}

// Append adds item at the end of an array.
func (v *Value) Append(item *Value) bool {
	return v.SetIndex(v.Len(), item)
}

// RemoveIndex removes the element at i, shifting later elements left.
func (v *Value) RemoveIndex(i int) bool {
	if v.Kind() != KindArray || i < 0 || i >= len(v.items) {
		return false
	}

	v.items = append(v.items[:i], v.items[i+1:]...)

	return true
}

// Object returns the ordered mapping of an object value, or nil.
func (v *Value) Object() *Object {
	if v.Kind() != KindObject {
		return nil
	}

	return v.obj
}

// Field looks up key in an object.
func (v *Value) Field(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}

	return v.obj.Get(key)
}

// SetField inserts or overwrites key in an object.
func (v *Value) SetField(key string, item *Value) bool {
	if v.Kind() != KindObject {
		return false
	}

	v.obj.Set(key, item)

	return true
}

// DeleteField removes key from an object.
func (v *Value) DeleteField(key string) bool {
	if v.Kind() != KindObject {
		return false
	}

	return v.obj.Delete(key)
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}

	out := &Value{kind: v.kind, b: v.b, n: v.n, s: v.s}

	switch v.kind {
	case KindArray:
		out.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			out.items[i] = item.Clone()
		}
	case KindObject:
		out.obj = newObject()
		for _, e := range v.obj.Entries() {
			out.obj.Set(e.Key, e.Value.Clone())
		}
	default:
	}

	return out
}

// Equal reports whether v and other are deeply equal. Object key order is
// part of the comparison.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}

	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}

		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}

		return true
	case KindObject:
		a, b := v.obj.Entries(), other.obj.Entries()
		if len(a) != len(b) {
			return false
		}

		for i := range a {
			if a[i].Key != b[i].Key || !a[i].Value.Equal(b[i].Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
