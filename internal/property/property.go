// Package property implements the named, typed configuration values that
// are handed to a resource at creation time.
//
// A Property is a small tagged union over the four supported scalar kinds:
// bool, int, float and string. Values are carried as cty.Value internally so
// that document loaders can hand their parsed literals straight through and
// DecodeInto can reuse cty's conversion rules, but the public surface speaks
// plain Go scalars.
package property

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Kind discriminates the value stored in a Property. The zero value is
// KindInvalid, which only the zero Property carries.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Property is an immutable name/value pair. The zero value is not useful;
// construct properties with Bool, Int, Float, String or FromCty.
type Property struct {
	name string
	kind Kind
	val  cty.Value
}

func Bool(name string, v bool) Property {
	return Property{name: name, kind: KindBool, val: cty.BoolVal(v)}
}

func Int(name string, v int64) Property {
	return Property{name: name, kind: KindInt, val: cty.NumberIntVal(v)}
}

func Float(name string, v float64) Property {
	return Property{name: name, kind: KindFloat, val: cty.NumberFloatVal(v)}
}

func String(name string, v string) Property {
	return Property{name: name, kind: KindString, val: cty.StringVal(v)}
}

// FromCty classifies an already-parsed cty literal into a Property. Whole
// numbers that fit int64 become KindInt, all other numbers KindFloat.
// Null, unknown and non-scalar values are rejected.
func FromCty(name string, v cty.Value) (Property, error) {
	if v.IsNull() || !v.IsKnown() {
		return Property{}, fmt.Errorf("property %q: value must be a known, non-null literal", name)
	}
	switch v.Type() {
	case cty.Bool:
		return Property{name: name, kind: KindBool, val: v}, nil
	case cty.Number:
		if f := v.AsBigFloat(); f.IsInt() {
			if _, acc := f.Int64(); acc == big.Exact {
				return Property{name: name, kind: KindInt, val: v}, nil
			}
		}
		return Property{name: name, kind: KindFloat, val: v}, nil
	case cty.String:
		return Property{name: name, kind: KindString, val: v}, nil
	default:
		return Property{}, fmt.Errorf("property %q: unsupported value type %s", name, v.Type().FriendlyName())
	}
}

func (p Property) Name() string { return p.name }

func (p Property) Kind() Kind { return p.kind }

// Value exposes the underlying cty representation for loaders and decoders.
func (p Property) Value() cty.Value { return p.val }

// BoolVal returns the stored bool. The second return is false when the
// property holds a different kind.
func (p Property) BoolVal() (bool, bool) {
	if p.kind != KindBool {
		return false, false
	}
	var out bool
	if err := gocty.FromCtyValue(p.val, &out); err != nil {
		return false, false
	}
	return out, true
}

// IntVal returns the stored integer. The second return is false when the
// property holds a different kind or the value overflows int64.
func (p Property) IntVal() (int64, bool) {
	if p.kind != KindInt {
		return 0, false
	}
	var out int64
	if err := gocty.FromCtyValue(p.val, &out); err != nil {
		return 0, false
	}
	return out, true
}

// FloatVal returns the stored float. The second return is false when the
// property holds a different kind.
func (p Property) FloatVal() (float64, bool) {
	if p.kind != KindFloat {
		return 0, false
	}
	var out float64
	if err := gocty.FromCtyValue(p.val, &out); err != nil {
		return 0, false
	}
	return out, true
}

// StringVal returns the stored string. The second return is false when the
// property holds a different kind.
func (p Property) StringVal() (string, bool) {
	if p.kind != KindString {
		return "", false
	}
	var out string
	if err := gocty.FromCtyValue(p.val, &out); err != nil {
		return "", false
	}
	return out, true
}

func (p Property) String() string {
	return fmt.Sprintf("%s(%s)", p.name, p.kind)
}

// List is an ordered collection of properties, preserving document order.
type List []Property

// Get returns the first property with the given name.
func (l List) Get(name string) (Property, bool) {
	for _, p := range l {
		if p.name == name {
			return p, true
		}
	}
	return Property{}, false
}

func (l List) Has(name string) bool {
	_, ok := l.Get(name)
	return ok
}

// Names returns the property names in document order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, p := range l {
		names[i] = p.name
	}
	return names
}
