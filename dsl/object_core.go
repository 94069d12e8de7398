package dsl

import (
	"context"
	"sort"

	kintree "github.com/reoring/kintree"
	"github.com/reoring/kintree/i18n"
)

// objectSchema is the map-backed object implementation. Field order is
// normalized by sorting keys so issue ordering is deterministic.
type objectSchema struct {
	fields        map[string]AnyAdapter
	required      map[string]struct{}
	unknownPolicy kintree.UnknownPolicy
	sortedKeys    []string
}

var _ kintree.Schema[map[string]any] = (*objectSchema)(nil)
var _ kintree.Dumper[map[string]any] = (*objectSchema)(nil)

func (o *objectSchema) keys() []string {
	if o.sortedKeys != nil {
		return o.sortedKeys
	}
	ks := make([]string, 0, len(o.fields))
	for k := range o.fields {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: i18n.T(kintree.CodeInvalidType, nil)}}
	}
	out := make(map[string]any, len(o.fields))
	var iss kintree.Issues

	for _, k := range o.keys() {
		ad := o.fields[k]
		raw, present := m[k]
		if !present {
			if _, req := o.required[k]; req {
				iss = kintree.AppendIssues(iss, kintree.Issue{Path: "/" + k, Code: kintree.CodeRequired, Message: i18n.T(kintree.CodeRequired, nil)})
				if kintree.IsFailFast(ctx) {
					return nil, iss
				}
			}
			continue
		}
		pv, err := ad.parse(ctx, raw)
		if err != nil {
			iss = append(iss, kintree.RebaseIssues("/"+k, err)...)
			if kintree.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[k] = pv
	}

	if unk := o.unknownIssues(m); unk != nil {
		iss = append(iss, unk...)
		if kintree.IsFailFast(ctx) {
			return nil, iss
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[map[string]any], error) {
	m, err := o.Parse(ctx, v)
	if err != nil {
		var zero kintree.Decoded[map[string]any]
		return zero, err
	}
	pm := kintree.PresenceMap{"/": kintree.PresenceSeen}
	in, _ := v.(map[string]any)
	for _, k := range o.keys() {
		if raw, ok := in[k]; ok {
			p := kintree.PresenceSeen
			if raw == nil {
				p |= kintree.PresenceWasNull
			}
			pm["/"+k] = p
		}
	}
	return kintree.Decoded[map[string]any]{Value: m, Presence: pm}, nil
}

func (o *objectSchema) TypeCheck(ctx context.Context, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: i18n.T(kintree.CodeInvalidType, nil)}}
	}
	var iss kintree.Issues
	for _, k := range o.keys() {
		if _, req := o.required[k]; !req {
			continue
		}
		if _, present := m[k]; !present {
			iss = kintree.AppendIssues(iss, kintree.Issue{Path: "/" + k, Code: kintree.CodeRequired, Message: i18n.T(kintree.CodeRequired, nil)})
		}
	}
	if unk := o.unknownIssues(m); unk != nil {
		iss = append(iss, unk...)
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (o *objectSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	if err := o.TypeCheck(ctx, v); err != nil {
		return err
	}
	return o.RuleCheck(ctx, v)
}

// ValidateValue runs per-field validators over an already parsed map.
func (o *objectSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	var iss kintree.Issues
	for _, k := range o.keys() {
		ad := o.fields[k]
		fv, present := v[k]
		if !present {
			if _, req := o.required[k]; req {
				iss = kintree.AppendIssues(iss, kintree.Issue{Path: "/" + k, Code: kintree.CodeRequired, Message: i18n.T(kintree.CodeRequired, nil)})
			}
			continue
		}
		if ad.validateValue == nil {
			continue
		}
		if err := ad.validateValue(ctx, fv); err != nil {
			iss = append(iss, kintree.RebaseIssues("/"+k, err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Dump emits the generic wire form of a parsed map. Fields whose adapters
// carry an encode direction are encoded; others pass through unchanged.
func (o *objectSchema) Dump(ctx context.Context, v map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(v))
	for _, k := range o.keys() {
		fv, present := v[k]
		if !present {
			continue
		}
		ad := o.fields[k]
		if ad.encode == nil {
			out[k] = fv
			continue
		}
		ev, err := ad.encode(ctx, fv)
		if err != nil {
			return nil, kintree.RebaseIssues("/"+k, err)
		}
		out[k] = ev
	}
	return out, nil
}

func (o *objectSchema) unknownIssues(m map[string]any) kintree.Issues {
	if o.unknownPolicy != kintree.UnknownStrict {
		return nil
	}
	var unknown []string
	for k := range m {
		if _, known := o.fields[k]; !known {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	iss := make(kintree.Issues, 0, len(unknown))
	for _, k := range unknown {
		iss = append(iss, kintree.Issue{Path: "/" + k, Code: kintree.CodeUnknownKey, Message: i18n.T(kintree.CodeUnknownKey, nil)})
	}
	return iss
}
