package dsl

import (
	"context"
	"math"

	kintree "github.com/reoring/kintree"
	"github.com/reoring/kintree/i18n"
)

// String returns the minimal string schema implementation.
func String() kintree.Schema[string] { return stringSchema{} }

// Bool returns the minimal bool schema implementation.
func Bool() kintree.Schema[bool] { return boolSchema{} }

// Int returns the minimal int schema implementation. On the wire side it
// accepts any Go integer width (the canonical generic form is int64).
func Int() kintree.Schema[int] { return intSchema{} }

type stringSchema struct{}

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: i18n.T(kintree.CodeInvalidType, nil)}}
	}
	// Normalize -> ValidateValue -> Refine
	ns, err := kintree.ApplyNormalize[string](ctx, s, stringSchema{})
	if err != nil {
		return "", err
	}
	s = ns
	if err := (stringSchema{}).ValidateValue(ctx, s); err != nil {
		return "", err
	}
	if err := kintree.ApplyRefine[string](ctx, s, stringSchema{}); err != nil {
		return "", err
	}
	return s, nil
}

func (stringSchema) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[string], error) {
	s, err := (stringSchema{}).Parse(ctx, v)
	return kintree.Decoded[string]{Value: s, Presence: kintree.PresenceMap{"/": kintree.PresenceSeen}}, err
}

func (stringSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: i18n.T(kintree.CodeInvalidType, nil)}}
	}
	return nil
}

func (stringSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (stringSchema) Validate(ctx context.Context, v any) error {
	if err := (stringSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (stringSchema{}).RuleCheck(ctx, v)
}

func (stringSchema) ValidateValue(ctx context.Context, v string) error { return nil }

type boolSchema struct{}

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: i18n.T(kintree.CodeInvalidType, nil)}}
	}
	nb, err := kintree.ApplyNormalize[bool](ctx, b, boolSchema{})
	if err != nil {
		return false, err
	}
	b = nb
	if err := (boolSchema{}).ValidateValue(ctx, b); err != nil {
		return false, err
	}
	if err := kintree.ApplyRefine[bool](ctx, b, boolSchema{}); err != nil {
		return false, err
	}
	return b, nil
}

func (boolSchema) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[bool], error) {
	b, err := (boolSchema{}).Parse(ctx, v)
	return kintree.Decoded[bool]{Value: b, Presence: kintree.PresenceMap{"/": kintree.PresenceSeen}}, err
}

func (boolSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(bool); !ok {
		return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: i18n.T(kintree.CodeInvalidType, nil)}}
	}
	return nil
}

func (boolSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (boolSchema) Validate(ctx context.Context, v any) error {
	if err := (boolSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (boolSchema{}).RuleCheck(ctx, v)
}

func (boolSchema) ValidateValue(ctx context.Context, v bool) error { return nil }

type intSchema struct{}

func intFromAny(v any) (int, bool, error) {
	switch t := v.(type) {
	case int:
		return t, true, nil
	case int8:
		return int(t), true, nil
	case int16:
		return int(t), true, nil
	case int32:
		return int(t), true, nil
	case int64:
		return int(t), true, nil
	case uint:
		return int(t), true, nil
	case uint8:
		return int(t), true, nil
	case uint16:
		return int(t), true, nil
	case uint32:
		return int(t), true, nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, true, kintree.Issues{{Path: "/", Code: kintree.CodeOverflow, Message: "int overflow"}}
		}
		return int(t), true, nil
	default:
		return 0, false, nil
	}
}

func (intSchema) Parse(ctx context.Context, v any) (int, error) {
	i, ok, err := intFromAny(v)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: i18n.T(kintree.CodeInvalidType, nil)}}
	}
	if err := (intSchema{}).ValidateValue(ctx, i); err != nil {
		return 0, err
	}
	return i, nil
}

func (intSchema) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[int], error) {
	i, err := (intSchema{}).Parse(ctx, v)
	return kintree.Decoded[int]{Value: i, Presence: kintree.PresenceMap{"/": kintree.PresenceSeen}}, err
}

func (intSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok, _ := intFromAny(v); !ok {
		return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: i18n.T(kintree.CodeInvalidType, nil)}}
	}
	return nil
}

func (intSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (intSchema) Validate(ctx context.Context, v any) error {
	if err := (intSchema{}).TypeCheck(ctx, v); err != nil {
		return err
	}
	return (intSchema{}).RuleCheck(ctx, v)
}

func (intSchema) ValidateValue(ctx context.Context, v int) error { return nil }

// ---------------- Of-helpers ----------------

// stringAsSchema wraps stringSchema and projects to a domain type T with underlying string.
type stringAsSchema[T ~string] struct{}

func (stringAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	s, err := (stringSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(s), nil
}

func (stringAsSchema[T]) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[T], error) {
	ds, err := (stringSchema{}).ParseWithMeta(ctx, v)
	if err != nil {
		var zero kintree.Decoded[T]
		return zero, err
	}
	return kintree.Decoded[T]{Value: T(ds.Value), Presence: ds.Presence}, nil
}

func (stringAsSchema[T]) TypeCheck(ctx context.Context, v any) error {
	return (stringSchema{}).TypeCheck(ctx, v)
}
func (stringAsSchema[T]) RuleCheck(ctx context.Context, v any) error {
	return (stringSchema{}).RuleCheck(ctx, v)
}
func (stringAsSchema[T]) Validate(ctx context.Context, v any) error {
	return (stringSchema{}).Validate(ctx, v)
}
func (stringAsSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return (stringSchema{}).ValidateValue(ctx, string(v))
}

// StringOf returns an AnyAdapter for a string wire schema projected to domain type T.
func StringOf[T ~string]() AnyAdapter {
	ad := anyAdapterFromSchema[T](stringAsSchema[T]{})
	ad.encode = func(ctx context.Context, v any) (any, error) {
		tv, ok := v.(T)
		if !ok {
			return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "invalid field type"}}
		}
		return string(tv), nil
	}
	ad.orig = stringSchema{}
	return ad
}

// intAsSchema wraps intSchema and projects to a domain type T with underlying int.
type intAsSchema[T ~int] struct{}

func (intAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	i, err := (intSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(i), nil
}

func (intAsSchema[T]) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[T], error) {
	di, err := (intSchema{}).ParseWithMeta(ctx, v)
	if err != nil {
		var zero kintree.Decoded[T]
		return zero, err
	}
	return kintree.Decoded[T]{Value: T(di.Value), Presence: di.Presence}, nil
}

func (intAsSchema[T]) TypeCheck(ctx context.Context, v any) error {
	return (intSchema{}).TypeCheck(ctx, v)
}
func (intAsSchema[T]) RuleCheck(ctx context.Context, v any) error {
	return (intSchema{}).RuleCheck(ctx, v)
}
func (intAsSchema[T]) Validate(ctx context.Context, v any) error {
	return (intSchema{}).Validate(ctx, v)
}
func (intAsSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return (intSchema{}).ValidateValue(ctx, int(v))
}

// IntOf returns an AnyAdapter for an integer wire schema projected to domain
// type T(~int). The encode direction emits the canonical int64 form.
func IntOf[T ~int]() AnyAdapter {
	ad := anyAdapterFromSchema[T](intAsSchema[T]{})
	ad.encode = func(ctx context.Context, v any) (any, error) {
		tv, ok := v.(T)
		if !ok {
			return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "invalid field type"}}
		}
		return int64(tv), nil
	}
	ad.orig = intSchema{}
	return ad
}

// boolAsSchema wraps boolSchema and projects to a domain type T with underlying bool.
type boolAsSchema[T ~bool] struct{}

func (boolAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	b, err := (boolSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(b), nil
}

func (boolAsSchema[T]) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[T], error) {
	db, err := (boolSchema{}).ParseWithMeta(ctx, v)
	if err != nil {
		var zero kintree.Decoded[T]
		return zero, err
	}
	return kintree.Decoded[T]{Value: T(db.Value), Presence: db.Presence}, nil
}

func (boolAsSchema[T]) TypeCheck(ctx context.Context, v any) error {
	return (boolSchema{}).TypeCheck(ctx, v)
}
func (boolAsSchema[T]) RuleCheck(ctx context.Context, v any) error {
	return (boolSchema{}).RuleCheck(ctx, v)
}
func (boolAsSchema[T]) Validate(ctx context.Context, v any) error {
	return (boolSchema{}).Validate(ctx, v)
}
func (boolAsSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return (boolSchema{}).ValidateValue(ctx, bool(v))
}

// BoolOf returns an AnyAdapter for a bool wire schema projected to domain type T.
func BoolOf[T ~bool]() AnyAdapter {
	ad := anyAdapterFromSchema[T](boolAsSchema[T]{})
	ad.encode = func(ctx context.Context, v any) (any, error) {
		tv, ok := v.(T)
		if !ok {
			return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "invalid field type"}}
		}
		return bool(tv), nil
	}
	ad.orig = boolSchema{}
	return ad
}
