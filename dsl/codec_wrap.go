package dsl

import (
	"context"

	kintree "github.com/reoring/kintree"
)

// Codec wraps a kintree.Codec as a Schema of the domain type B. Parsing runs
// the wire-side schema first, then Decode; ValidateValue delegates to the
// domain-side schema.
func Codec[A, B any](c kintree.Codec[A, B]) kintree.Schema[B] {
	return &codecSchema[A, B]{c: c}
}

type codecSchema[A, B any] struct {
	c kintree.Codec[A, B]
}

func (s *codecSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	a, err := s.c.In().Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	return s.c.Decode(ctx, a)
}

func (s *codecSchema[A, B]) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[B], error) {
	da, err := s.c.In().ParseWithMeta(ctx, v)
	if err != nil {
		var zero kintree.Decoded[B]
		return zero, err
	}
	b, err := s.c.Decode(ctx, da.Value)
	if err != nil {
		var zero kintree.Decoded[B]
		return zero, err
	}
	return kintree.Decoded[B]{Value: b, Presence: da.Presence}, nil
}

func (s *codecSchema[A, B]) TypeCheck(ctx context.Context, v any) error {
	return s.c.In().TypeCheck(ctx, v)
}

func (s *codecSchema[A, B]) RuleCheck(ctx context.Context, v any) error {
	return s.c.In().RuleCheck(ctx, v)
}

func (s *codecSchema[A, B]) Validate(ctx context.Context, v any) error {
	return s.c.In().Validate(ctx, v)
}

func (s *codecSchema[A, B]) ValidateValue(ctx context.Context, v B) error {
	return s.c.Out().ValidateValue(ctx, v)
}

// Dump encodes the domain value back through the codec into its wire form.
// The wire form must be an object for Dump; use CodecOf for non-object codecs.
func (s *codecSchema[A, B]) Dump(ctx context.Context, v B) (map[string]any, error) {
	a, err := s.c.Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	m, ok := any(a).(map[string]any)
	if !ok {
		return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "codec wire form is not an object"}}
	}
	return m, nil
}

// CodecOf wraps a codec directly as an AnyAdapter for object fields. Parse
// runs In().Parse then Decode; encode runs Encode back to the wire form.
func CodecOf[A, B any](c kintree.Codec[A, B]) AnyAdapter {
	s := Codec(c)
	ad := anyAdapterFromSchema[B](s)
	ad.encode = func(ctx context.Context, v any) (any, error) {
		b, ok := v.(B)
		if !ok {
			return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "invalid field type"}}
		}
		return c.Encode(ctx, b)
	}
	ad.orig = c
	return ad
}
