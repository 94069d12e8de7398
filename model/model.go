// Package model declares the two-level envelope around a person tree and its
// bound schemas. The wire shape is {"inner": {"person": {...}}}; parsing
// yields typed structs and dumping yields the canonical generic form ready
// for a wire driver.
package model

import (
	"context"

	kintree "github.com/reoring/kintree"
	"github.com/reoring/kintree/codec"
	"github.com/reoring/kintree/dsl"
	"github.com/reoring/kintree/person"
)

// Inner holds the person tree.
type Inner struct {
	Person *person.Person `json:"person"`
}

// Outer is the top-level envelope.
type Outer struct {
	Inner Inner `json:"inner"`
}

var innerSchema = dsl.MustBind[Inner](
	dsl.Object().
		Field("person", dsl.CodecOf(codec.Tree())).Required(),
)

var outerSchema = dsl.MustBind[Outer](
	dsl.Object().
		Field("inner", dsl.TypedOf[Inner](innerSchema)).Required(),
)

// InnerSchema returns the bound schema for Inner.
func InnerSchema() kintree.Schema[Inner] { return innerSchema }

// OuterSchema returns the bound schema for Outer.
func OuterSchema() kintree.Schema[Outer] { return outerSchema }

// ParseOuter validates and types a generic value into Outer. Unknown keys are
// rejected at both envelope levels.
func ParseOuter(ctx context.Context, v any) (Outer, error) {
	return outerSchema.Parse(ctx, v)
}

// DumpOuter projects a typed Outer back into the generic form. The person
// subtree comes out as nested mappings with int64 ages and non-nil children
// arrays.
func DumpOuter(ctx context.Context, o Outer) (map[string]any, error) {
	d := outerSchema.(kintree.Dumper[Outer])
	return d.Dump(ctx, o)
}

// Equal reports deep equality of two envelopes.
func (o Outer) Equal(other Outer) bool {
	return o.Inner.Equal(other.Inner)
}

// Equal reports deep equality of the inner layer.
func (in Inner) Equal(other Inner) bool {
	return in.Person.Equal(other.Person)
}
