package dsl

import (
	"fmt"
	"sort"

	kintree "github.com/reoring/kintree"
)

// ObjectBuilder assembles an object schema field by field.
type ObjectBuilder struct {
	fields        map[string]AnyAdapter
	required      map[string]struct{}
	unknownPolicy kintree.UnknownPolicy
}

// Object starts building an object schema. Unknown keys are rejected unless
// UnknownStrip is selected.
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:        map[string]AnyAdapter{},
		required:      map[string]struct{}{},
		unknownPolicy: kintree.UnknownStrict,
	}
}

// Field adds a field and returns a step to mark it Required or Optional.
func (b *ObjectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Require marks the listed fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrict rejects unknown keys (the default).
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknownPolicy = kintree.UnknownStrict
	return b
}

// UnknownStrip drops unknown keys silently.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.unknownPolicy = kintree.UnknownStrip
	return b
}

// Build finalizes the object schema.
func (b *ObjectBuilder) Build() (kintree.Schema[map[string]any], error) {
	for n := range b.required {
		if _, ok := b.fields[n]; !ok {
			return nil, fmt.Errorf("required field %q is not declared", n)
		}
	}
	keys := make([]string, 0, len(b.fields))
	for k := range b.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &objectSchema{
		fields:        b.fields,
		required:      b.required,
		unknownPolicy: b.unknownPolicy,
		sortedKeys:    keys,
	}, nil
}

// MustBuild is Build that panics on configuration errors. Intended for
// package-level schema variables.
func (b *ObjectBuilder) MustBuild() kintree.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// fieldStep scopes Required/Optional to the most recently added field.
type fieldStep struct {
	b    *ObjectBuilder
	name string
}

// Required marks the current field as required and returns the builder.
func (s *fieldStep) Required() *ObjectBuilder {
	s.b.required[s.name] = struct{}{}
	return s.b
}

// Optional leaves the current field optional and returns the builder.
func (s *fieldStep) Optional() *ObjectBuilder { return s.b }

// Field chains directly into declaring the next field.
func (s *fieldStep) Field(name string, ad AnyAdapter) *fieldStep {
	return s.b.Field(name, ad)
}

// Build finalizes from a field step, leaving the current field optional.
func (s *fieldStep) Build() (kintree.Schema[map[string]any], error) { return s.b.Build() }

// MustBuild finalizes from a field step, panicking on configuration errors.
func (s *fieldStep) MustBuild() kintree.Schema[map[string]any] { return s.b.MustBuild() }
