// Package codec bridges the generic wire vocabulary and the person domain
// model. Tree is the central codec: Decode materializes a *person.Person from
// a generic mapping bottom-up, Encode projects it back to the canonical
// generic form.
package codec

import (
	"context"
	"fmt"
	"strconv"

	kintree "github.com/reoring/kintree"
	"github.com/reoring/kintree/person"
)

// Tree returns the codec between the generic mapping form and *person.Person.
func Tree() kintree.Codec[map[string]any, *person.Person] {
	return treeCodec{}
}

type treeCodec struct{}

func (treeCodec) In() kintree.Schema[map[string]any]  { return mapSchema{} }
func (treeCodec) Out() kintree.Schema[*person.Person] { return personSchema{} }

func (c treeCodec) Decode(ctx context.Context, a map[string]any) (*person.Person, error) {
	p, err := fromGeneric(a, "")
	if err != nil {
		return nil, err
	}
	if err := c.Out().ValidateValue(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c treeCodec) Encode(ctx context.Context, p *person.Person) (map[string]any, error) {
	if err := c.Out().ValidateValue(ctx, p); err != nil {
		return nil, err
	}
	return toGeneric(p), nil
}

// Validate accepts either an already typed *person.Person or a generic
// mapping. Typed values pass through the domain-side validator; mappings are
// structurally decoded and discarded.
func Validate(ctx context.Context, v any) error {
	switch t := v.(type) {
	case *person.Person:
		return (personSchema{}).ValidateValue(ctx, t)
	case map[string]any:
		_, err := fromGeneric(t, "")
		return err
	default:
		return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: fmt.Sprintf("expected person or mapping, got %T", v)}}
	}
}

// fromGeneric materializes a person subtree. Children are fully built before
// the parent so a failure deep in the tree never yields a partial node.
func fromGeneric(m map[string]any, base string) (*person.Person, error) {
	var iss kintree.Issues

	name, ok := m["name"].(string)
	if !ok {
		if _, present := m["name"]; !present {
			iss = kintree.AppendIssues(iss, kintree.Issue{Path: base + "/name", Code: kintree.CodeRequired, Message: "name is required"})
		} else {
			iss = kintree.AppendIssues(iss, kintree.Issue{Path: base + "/name", Code: kintree.CodeInvalidType, Message: fmt.Sprintf("expected string, got %T", m["name"])})
		}
	}

	var age int
	switch t := m["age"].(type) {
	case int64:
		age = int(t)
	case int:
		age = t
	default:
		if _, present := m["age"]; !present {
			iss = kintree.AppendIssues(iss, kintree.Issue{Path: base + "/age", Code: kintree.CodeRequired, Message: "age is required"})
		} else {
			iss = kintree.AppendIssues(iss, kintree.Issue{Path: base + "/age", Code: kintree.CodeInvalidType, Message: fmt.Sprintf("expected integer, got %T", m["age"])})
		}
	}

	rawChildren, present := m["children"]
	if !present {
		iss = kintree.AppendIssues(iss, kintree.Issue{Path: base + "/children", Code: kintree.CodeRequired, Message: "children is required"})
		return nil, iss
	}
	list, ok := rawChildren.([]any)
	if !ok {
		iss = kintree.AppendIssues(iss, kintree.Issue{Path: base + "/children", Code: kintree.CodeInvalidType, Message: fmt.Sprintf("expected array, got %T", rawChildren)})
		return nil, iss
	}

	children := make([]*person.Person, 0, len(list))
	for i, e := range list {
		cm, ok := e.(map[string]any)
		if !ok {
			iss = kintree.AppendIssues(iss, kintree.Issue{
				Path: base + "/children/" + strconv.Itoa(i), Code: kintree.CodeInvalidType,
				Message: fmt.Sprintf("expected mapping, got %T", e),
			})
			continue
		}
		child, err := fromGeneric(cm, base+"/children/"+strconv.Itoa(i))
		if err != nil {
			ci, _ := kintree.AsIssues(err)
			iss = append(iss, ci...)
			continue
		}
		children = append(children, child)
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return &person.Person{Name: name, Age: age, Children: children}, nil
}

// toGeneric projects a person subtree into the canonical generic form:
// string name, int64 age, and an always non-nil children array.
func toGeneric(p *person.Person) map[string]any {
	children := make([]any, 0, len(p.Children))
	for _, c := range p.Children {
		children = append(children, toGeneric(c))
	}
	return map[string]any{
		"name":     p.Name,
		"age":      int64(p.Age),
		"children": children,
	}
}

// mapSchema is the wire-side schema: any string-keyed mapping passes, the
// per-key structure is the codec's concern.
type mapSchema struct{}

func (mapSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: fmt.Sprintf("expected mapping, got %T", v)}}
	}
	return m, nil
}

func (mapSchema) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[map[string]any], error) {
	m, err := (mapSchema{}).Parse(ctx, v)
	if err != nil {
		var zero kintree.Decoded[map[string]any]
		return zero, err
	}
	return kintree.Decoded[map[string]any]{Value: m, Presence: kintree.PresenceMap{"/": kintree.PresenceSeen}}, nil
}

func (mapSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(map[string]any); !ok {
		return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: fmt.Sprintf("expected mapping, got %T", v)}}
	}
	return nil
}

func (mapSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (mapSchema) Validate(ctx context.Context, v any) error {
	return (mapSchema{}).TypeCheck(ctx, v)
}

func (mapSchema) ValidateValue(ctx context.Context, v map[string]any) error { return nil }

// personSchema is the domain-side schema. A nil pointer is the one invalid
// typed value.
type personSchema struct{}

func (personSchema) Parse(ctx context.Context, v any) (*person.Person, error) {
	switch t := v.(type) {
	case *person.Person:
		if err := (personSchema{}).ValidateValue(ctx, t); err != nil {
			return nil, err
		}
		return t, nil
	case map[string]any:
		return fromGeneric(t, "")
	default:
		return nil, kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: fmt.Sprintf("expected person or mapping, got %T", v)}}
	}
}

func (personSchema) ParseWithMeta(ctx context.Context, v any) (kintree.Decoded[*person.Person], error) {
	p, err := (personSchema{}).Parse(ctx, v)
	if err != nil {
		var zero kintree.Decoded[*person.Person]
		return zero, err
	}
	return kintree.Decoded[*person.Person]{Value: p, Presence: kintree.PresenceMap{"/": kintree.PresenceSeen}}, nil
}

func (personSchema) TypeCheck(ctx context.Context, v any) error {
	switch v.(type) {
	case *person.Person, map[string]any:
		return nil
	default:
		return kintree.Issues{{Path: "/", Code: kintree.CodeInvalidType, Message: fmt.Sprintf("expected person or mapping, got %T", v)}}
	}
}

func (personSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (personSchema) Validate(ctx context.Context, v any) error {
	return Validate(ctx, v)
}

func (personSchema) ValidateValue(ctx context.Context, v *person.Person) error {
	if v == nil {
		return kintree.Issues{{Path: "/", Code: kintree.CodeRequired, Message: "person is nil"}}
	}
	var walk func(p *person.Person, base string) kintree.Issues
	walk = func(p *person.Person, base string) kintree.Issues {
		var iss kintree.Issues
		for i, c := range p.Children {
			cp := base + "/children/" + strconv.Itoa(i)
			if c == nil {
				iss = kintree.AppendIssues(iss, kintree.Issue{Path: cp, Code: kintree.CodeRequired, Message: "child is nil"})
				continue
			}
			iss = append(iss, walk(c, cp)...)
		}
		return iss
	}
	if iss := walk(v, ""); len(iss) > 0 {
		return iss
	}
	return nil
}
