package dsl

import (
	"context"
	"strconv"

	kintree "github.com/reoring/kintree"
)

// Array starts a typed array schema over an element schema.
func Array[E any](elem kintree.Schema[E]) *ArrayBuilder[E] {
	return &ArrayBuilder[E]{elem: elem, min: -1, max: -1}
}

// ArrayBuilder builds a Schema[[]E] with optional length bounds.
type ArrayBuilder[E any] struct {
	elem kintree.Schema[E]
	min  int
	max  int
}

// Min sets the minimum element count (inclusive).
func (b *ArrayBuilder[E]) Min(n int) *ArrayBuilder[E] { b.min = n; return b }

// Max sets the maximum element count (inclusive).
func (b *ArrayBuilder[E]) Max(n int) *ArrayBuilder[E] { b.max = n; return b }

// Build finalizes the array schema.
func (b *ArrayBuilder[E]) Build() kintree.Schema[[]E] {
	return &arraySchema[E]{elem: b.elem, min: b.min, max: b.max}
}

type arraySchema[E any] struct {
	elem kintree.Schema[E]
	min  int
	max  int
}

func (s *arraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	var raw []any
	switch t := v.(type) {
	case []any:
		raw = t
	case []E:
		// Already element-typed; still run bounds and per-element validation.
		if err := s.checkLen(len(t)); err != nil {
			return nil, err
		}
		var iss kintree.Issues
		for i, e := range t {
			if err := s.elem.ValidateValue(ctx, e); err != nil {
				iss = append(iss, kintree.RebaseIssues("/"+strconv.Itoa(i), err)...)
				if kintree.IsFailFast(ctx) {
					return nil, iss
				}
			}
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return t, nil
	default:
		return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "expected array"}}
	}

	if err := s.checkLen(len(raw)); err != nil {
		return nil, err
	}
	out := make([]E, 0, len(raw))
	var iss kintree.Issues
	for i, e := range raw {
		ev, err := s.elem.Parse(ctx, e)
		if err != nil {
			iss = append(iss, kintree.RebaseIssues("/"+strconv.Itoa(i), err)...)
			if kintree.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (s *arraySchema[E]) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[[]E], error) {
	out, err := s.Parse(ctx, v)
	if err != nil {
		var zero kintree.Decoded[[]E]
		return zero, err
	}
	return kintree.Decoded[[]E]{Value: out, Presence: kintree.PresenceMap{"/": kintree.PresenceSeen}}, nil
}

func (s *arraySchema[E]) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case []any, []E:
		return nil
	default:
		return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "expected array"}}
	}
}

func (s *arraySchema[E]) RuleCheck(ctx context.Context, v any) error {
	switch t := v.(type) {
	case []any:
		return s.checkLen(len(t))
	case []E:
		return s.checkLen(len(t))
	}
	return nil
}

func (s *arraySchema[E]) Validate(ctx context.Context, v any) error {
	if err := s.TypeCheck(ctx, v); err != nil {
		return err
	}
	return s.RuleCheck(ctx, v)
}

func (s *arraySchema[E]) ValidateValue(ctx context.Context, v []E) error {
	if err := s.checkLen(len(v)); err != nil {
		return err
	}
	var iss kintree.Issues
	for i, e := range v {
		if err := s.elem.ValidateValue(ctx, e); err != nil {
			iss = append(iss, kintree.RebaseIssues("/"+strconv.Itoa(i), err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (s *arraySchema[E]) checkLen(n int) error {
	if s.min >= 0 && n < s.min {
		return kintree.Issues{{
			Path: "/", Code: kintree.CodeTooShort, Message: "array too short",
			Params: map[string]any{"min": s.min, "got": n},
		}}
	}
	if s.max >= 0 && n > s.max {
		return kintree.Issues{{
			Path: "/", Code: kintree.CodeTooLong, Message: "array too long",
			Params: map[string]any{"max": s.max, "got": n},
		}}
	}
	return nil
}

// ArrayOf wraps a built array schema as an AnyAdapter for object fields. The
// element adapter supplies the encode direction when present.
func ArrayOf[E any](elem AnyAdapter) AnyAdapter {
	var es kintree.Schema[E]
	if s, ok := elem.orig.(kintree.Schema[E]); ok {
		es = s
	}
	parse := func(ctx context.Context, v any) (any, error) {
		raw, ok := v.([]any)
		if !ok {
			return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "expected array"}}
		}
		out := make([]E, 0, len(raw))
		var iss kintree.Issues
		for i, e := range raw {
			ev, err := elem.parse(ctx, e)
			if err != nil {
				iss = append(iss, kintree.RebaseIssues("/"+strconv.Itoa(i), err)...)
				if kintree.IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
			tv, ok := ev.(E)
			if !ok {
				iss = append(iss, kintree.Issue{Path: "/" + strconv.Itoa(i), Code: kintree.CodeInvalidType, Message: "invalid element type"})
				continue
			}
			out = append(out, tv)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	}
	validate := func(ctx context.Context, v any) error {
		tv, ok := v.([]E)
		if !ok {
			return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "invalid field type"}}
		}
		var iss kintree.Issues
		for i, e := range tv {
			if elem.validateValue == nil {
				continue
			}
			if err := elem.validateValue(ctx, e); err != nil {
				iss = append(iss, kintree.RebaseIssues("/"+strconv.Itoa(i), err)...)
			}
		}
		if len(iss) > 0 {
			return iss
		}
		return nil
	}
	encode := func(ctx context.Context, v any) (any, error) {
		tv, ok := v.([]E)
		if !ok {
			return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: "invalid field type"}}
		}
		out := make([]any, 0, len(tv))
		for i, e := range tv {
			if elem.encode == nil {
				out = append(out, e)
				continue
			}
			ev, err := elem.encode(ctx, e)
			if err != nil {
				return nil, kintree.RebaseIssues("/"+strconv.Itoa(i), err)
			}
			out = append(out, ev)
		}
		return out, nil
	}
	return AnyAdapter{parse: parse, encode: encode, validateValue: validate, orig: es}
}
