package codec

import (
	"context"

	kintree "github.com/reoring/kintree"
)

// Identity returns a codec whose wire and domain sides share one schema.
// Useful when a pipeline expects a Codec but no conversion is needed.
func Identity[T any](s kintree.Schema[T]) kintree.Codec[T, T] {
	return identityCodec[T]{s: s}
}

type identityCodec[T any] struct {
	s kintree.Schema[T]
}

func (c identityCodec[T]) In() kintree.Schema[T]  { return c.s }
func (c identityCodec[T]) Out() kintree.Schema[T] { return c.s }

func (c identityCodec[T]) Decode(ctx context.Context, a T) (T, error) {
	if err := c.s.ValidateValue(ctx, a); err != nil {
		var zero T
		return zero, err
	}
	return a, nil
}

func (c identityCodec[T]) Encode(ctx context.Context, b T) (T, error) {
	if err := c.s.ValidateValue(ctx, b); err != nil {
		var zero T
		return zero, err
	}
	return b, nil
}
