package dsl

import (
	"context"

	kintree "github.com/reoring/kintree"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper so object builders
// can mix field types. It carries both directions: parse (wire -> typed) and
// encode (typed -> generic wire form); a nil encode passes the value through
// unchanged.
type AnyAdapter struct {
	parse         func(context.Context, any) (any, error)
	encode        func(context.Context, any) (any, error)
	validateValue func(context.Context, any) error
	orig          any
}

// anyAdapterFromSchema wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func anyAdapterFromSchema[T any](s kintree.Schema[T]) AnyAdapter {
	ad := AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		validateValue: func(ctx context.Context, v any) error {
			tv, ok := v.(T)
			if !ok {
				return kintree.Issues{kintree.Issue{Path: "/", Code: kintree.CodeInvalidType, Message: "invalid field type"}}
			}
			return s.ValidateValue(ctx, tv)
		},
		orig: s,
	}
	if d, ok := any(s).(kintree.Dumper[T]); ok {
		ad.encode = func(ctx context.Context, v any) (any, error) {
			tv, ok := v.(T)
			if !ok {
				return nil, kintree.Issues{kintree.Issue{Path: "/", Code: kintree.CodeInvalidType, Message: "invalid field type"}}
			}
			return d.Dump(ctx, tv)
		}
	}
	return ad
}

// Orig returns the original underlying Schema[T] or codec used to create this
// adapter. It is intended for advanced integrations and may change.
func (ad AnyAdapter) Orig() any { return ad.orig }

// Nullable wraps an AnyAdapter to accept nulls for both parse and validate.
// When the input value is nil, parsing succeeds and returns nil; validation
// also succeeds.
func Nullable(ad AnyAdapter) AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validateValue
	prevEncode := ad.encode
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		if prevParse == nil {
			return v, nil
		}
		return prevParse(ctx, v)
	}
	out.validateValue = func(ctx context.Context, v any) error {
		if v == nil {
			return nil
		}
		if prevValidate == nil {
			if prevParse == nil {
				return nil
			}
			_, err := prevParse(ctx, v)
			return err
		}
		return prevValidate(ctx, v)
	}
	out.encode = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		if prevEncode == nil {
			return v, nil
		}
		return prevEncode(ctx, v)
	}
	return out
}

// Nullable enables fluent chaining: dsl.StringOf[T]().Nullable()
func (ad AnyAdapter) Nullable() AnyAdapter { return Nullable(ad) }
