// Package feature holds the Feature/FeatureCollection/PropertyValue model
// every pipeline stage (contour, mount, ingest, clip, simplify, tile
// encoder) passes geometry and attributes through.
package feature

import "github.com/tilecraft/maptiles/internal/geom"

// PropertyValue is a tagged union over the attribute value types the
// source data model supports: string, a 64-bit float (ints and floats
// are not distinguished on the wire), bool, null, and an array of values.
type PropertyValue struct {
	kind propKind
	str  string
	num  float64
	boo  bool
	arr  []PropertyValue
}

type propKind int

const (
	kindString propKind = iota
	kindNumber
	kindBool
	kindNull
	kindArray
)

func StringValue(s string) PropertyValue { return PropertyValue{kind: kindString, str: s} }
func NumberValue(n float64) PropertyValue { return PropertyValue{kind: kindNumber, num: n} }
func BoolValue(b bool) PropertyValue     { return PropertyValue{kind: kindBool, boo: b} }
func NullValue() PropertyValue           { return PropertyValue{kind: kindNull} }
func ArrayValue(v []PropertyValue) PropertyValue {
	return PropertyValue{kind: kindArray, arr: v}
}

// IsString reports whether the value holds a string.
func (v PropertyValue) IsString() bool { return v.kind == kindString }

// IsNumber reports whether the value holds a number.
func (v PropertyValue) IsNumber() bool { return v.kind == kindNumber }

// IsBool reports whether the value holds a bool.
func (v PropertyValue) IsBool() bool { return v.kind == kindBool }

// IsNull reports whether the value is null.
func (v PropertyValue) IsNull() bool { return v.kind == kindNull }

// IsArray reports whether the value holds an array.
func (v PropertyValue) IsArray() bool { return v.kind == kindArray }

// Any returns the underlying value as its natural Go type; useful when
// building MVT attribute maps, which are untyped. Arrays are returned as
// []any and null as nil.
func (v PropertyValue) Any() any {
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		return v.num
	case kindBool:
		return v.boo
	case kindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Any()
		}
		return out
	default:
		return nil
	}
}

func (v PropertyValue) StringValue() (string, bool) { return v.str, v.kind == kindString }
func (v PropertyValue) NumberValue() (float64, bool) { return v.num, v.kind == kindNumber }
func (v PropertyValue) BoolValue() (bool, bool)      { return v.boo, v.kind == kindBool }
func (v PropertyValue) ArrayValue() ([]PropertyValue, bool) {
	return v.arr, v.kind == kindArray
}

// Properties is an attribute map attached to a Feature.
type Properties map[string]PropertyValue

// Clone returns a shallow copy (PropertyValue is itself immutable).
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Feature pairs one geometry with its attributes.
type Feature struct {
	Geometry   geom.Geometry
	Properties Properties
}

// Clone deep-copies the geometry and shallow-copies the properties.
func (f *Feature) Clone() *Feature {
	return &Feature{
		Geometry:   geom.Clone(f.Geometry),
		Properties: f.Properties.Clone(),
	}
}

// FeatureCollection is an ordered set of features sharing one layer.
type FeatureCollection struct {
	Features []*Feature
}

// NewFeatureCollection returns an empty collection.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{}
}

// Append adds a feature.
func (fc *FeatureCollection) Append(f *Feature) {
	fc.Features = append(fc.Features, f)
}

// Clone deep-copies every feature.
func (fc *FeatureCollection) Clone() *FeatureCollection {
	out := &FeatureCollection{Features: make([]*Feature, len(fc.Features))}
	for i, f := range fc.Features {
		out.Features[i] = f.Clone()
	}
	return out
}
