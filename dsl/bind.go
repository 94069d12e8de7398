package dsl

import (
	"context"
	"fmt"
	"reflect"

	kintree "github.com/reoring/kintree"
)

// Bind projects an object schema onto a struct type T. Keys are resolved with
// kintree.ResolveStructKey (kintree tag, then json tag, then field name).
func Bind[T any](b *ObjectBuilder) (kintree.Schema[T], error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	obj, ok := s.(*objectSchema)
	if !ok {
		return nil, fmt.Errorf("bind: unexpected object schema %T", s)
	}
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: %T is not a struct", zero)
	}
	fieldByKey := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := kintree.ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		fieldByKey[key] = i
	}
	for key := range obj.fields {
		if _, ok := fieldByKey[key]; !ok {
			return nil, fmt.Errorf("bind: %s has no field for key %q", t.Name(), key)
		}
	}
	return &typedObjectSchema[T]{inner: obj, t: t, fieldByKey: fieldByKey}, nil
}

// MustBind is Bind that panics on configuration errors.
func MustBind[T any](b *ObjectBuilder) kintree.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

type typedObjectSchema[T any] struct {
	inner      *objectSchema
	t          reflect.Type
	fieldByKey map[string]int
}

var _ kintree.Dumper[struct{}] = (*typedObjectSchema[struct{}])(nil)

func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	m, err := s.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	out := reflect.New(s.t).Elem()
	var iss kintree.Issues
	for key, idx := range s.fieldByKey {
		fv, present := m[key]
		if !present {
			continue
		}
		field := out.Field(idx)
		if fv == nil {
			// Leave the zero value; pointer and slice fields stay nil.
			continue
		}
		rv := reflect.ValueOf(fv)
		switch {
		case rv.Type().AssignableTo(field.Type()):
			field.Set(rv)
		case rv.Type().ConvertibleTo(field.Type()):
			field.Set(rv.Convert(field.Type()))
		default:
			iss = kintree.AppendIssues(iss, kintree.Issue{
				Path: "/" + key, Code: kintree.CodeInvalidType,
				Message: fmt.Sprintf("cannot assign %s to %s", rv.Type(), field.Type()),
			})
		}
	}
	if len(iss) > 0 {
		return zero, iss
	}
	return out.Interface().(T), nil
}

func (s *typedObjectSchema[T]) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[T], error) {
	dm, err := s.inner.ParseWithMeta(ctx, v)
	if err != nil {
		var zero kintree.Decoded[T]
		return zero, err
	}
	tv, err := s.Parse(ctx, v)
	if err != nil {
		var zero kintree.Decoded[T]
		return zero, err
	}
	return kintree.Decoded[T]{Value: tv, Presence: dm.Presence}, nil
}

func (s *typedObjectSchema[T]) TypeCheck(ctx context.Context, v any) error {
	return s.inner.TypeCheck(ctx, v)
}

func (s *typedObjectSchema[T]) RuleCheck(ctx context.Context, v any) error {
	return s.inner.RuleCheck(ctx, v)
}

func (s *typedObjectSchema[T]) Validate(ctx context.Context, v any) error {
	return s.inner.Validate(ctx, v)
}

// ValidateValue projects the struct back to a map and validates per field.
func (s *typedObjectSchema[T]) ValidateValue(ctx context.Context, v T) error {
	m := s.toFieldMap(v)
	return s.inner.ValidateValue(ctx, m)
}

// Dump emits the generic wire form of a typed value. Each declared field is
// run through its adapter's encode direction; fields without one pass through.
func (s *typedObjectSchema[T]) Dump(ctx context.Context, v T) (map[string]any, error) {
	m := s.toFieldMap(v)
	return s.inner.Dump(ctx, m)
}

func (s *typedObjectSchema[T]) toFieldMap(v T) map[string]any {
	rv := reflect.ValueOf(v)
	m := make(map[string]any, len(s.fieldByKey))
	for key, idx := range s.fieldByKey {
		if _, declared := s.inner.fields[key]; !declared {
			continue
		}
		m[key] = rv.Field(idx).Interface()
	}
	return m
}

// TypedOf wraps a bound struct schema as an AnyAdapter so typed objects can
// nest inside other objects. The encode direction comes from the schema's
// Dumper implementation when available.
func TypedOf[T any](s kintree.Schema[T]) AnyAdapter {
	return anyAdapterFromSchema[T](s)
}
