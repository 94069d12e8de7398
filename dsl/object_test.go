package dsl_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	kintree "github.com/reoring/kintree"
	"github.com/reoring/kintree/dsl"
)

type account struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Active bool   `json:"active"`
}

func accountBuilder() *dsl.ObjectBuilder {
	return dsl.Object().
		Field("name", dsl.StringOf[string]()).Required().
		Field("age", dsl.IntOf[int]()).Required().
		Field("active", dsl.BoolOf[bool]()).Optional()
}

func TestObject_ParseBasic(t *testing.T) {
	ctx := context.Background()
	s := accountBuilder().MustBuild()

	got, err := s.Parse(ctx, map[string]any{"name": "alice", "age": int64(30), "active": true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := map[string]any{"name": "alice", "age": 30, "active": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestObject_RequiredMissing(t *testing.T) {
	ctx := context.Background()
	s := accountBuilder().MustBuild()

	_, err := s.Parse(ctx, map[string]any{"name": "alice"})
	iss, ok := kintree.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != kintree.CodeRequired || iss[0].Path != "/age" {
		t.Fatalf("unexpected issues: %+v", iss)
	}
}

func TestObject_UnknownStrict(t *testing.T) {
	ctx := context.Background()
	s := accountBuilder().MustBuild()

	_, err := s.Parse(ctx, map[string]any{"name": "a", "age": int64(1), "extra": "x"})
	iss, ok := kintree.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != kintree.CodeUnknownKey || iss[0].Path != "/extra" {
		t.Fatalf("unexpected issues: %+v", iss)
	}
}

func TestObject_UnknownStrip(t *testing.T) {
	ctx := context.Background()
	s := accountBuilder().UnknownStrip().MustBuild()

	got, err := s.Parse(ctx, map[string]any{"name": "a", "age": int64(1), "extra": "x"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, present := got["extra"]; present {
		t.Fatalf("unknown key should have been stripped: %v", got)
	}
}

func TestObject_NestedPathRebasing(t *testing.T) {
	ctx := context.Background()
	inner := dsl.MustBind[account](accountBuilder())
	s := dsl.Object().
		Field("owner", dsl.TypedOf[account](inner)).Required().
		MustBuild()

	_, err := s.Parse(ctx, map[string]any{
		"owner": map[string]any{"name": "a", "age": "not-an-int"},
	})
	iss, ok := kintree.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Path != "/owner/age" || iss[0].Code != kintree.CodeInvalidType {
		t.Fatalf("unexpected issues: %+v", iss)
	}
}

func TestObject_FailFastStopsEarly(t *testing.T) {
	ctx := kintree.WithFailFast(context.Background(), true)
	s := accountBuilder().MustBuild()

	_, err := s.Parse(ctx, map[string]any{})
	iss, ok := kintree.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 {
		t.Fatalf("fail-fast should stop at the first issue, got %d", len(iss))
	}
}

func TestBind_ParseAndDump(t *testing.T) {
	ctx := context.Background()
	s := dsl.MustBind[account](accountBuilder())

	got, err := s.Parse(ctx, map[string]any{"name": "bob", "age": int64(7), "active": true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := account{Name: "bob", Age: 7, Active: true}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	d, ok := any(s).(kintree.Dumper[account])
	if !ok {
		t.Fatalf("bound schema should implement Dumper")
	}
	m, err := d.Dump(ctx, got)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	wantMap := map[string]any{"name": "bob", "age": int64(7), "active": true}
	if diff := cmp.Diff(wantMap, m); diff != "" {
		t.Fatalf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestBind_ValidateValue(t *testing.T) {
	ctx := context.Background()
	s := dsl.MustBind[account](accountBuilder())
	if err := s.ValidateValue(ctx, account{Name: "x", Age: 1}); err != nil {
		t.Fatalf("validate value: %v", err)
	}
}

func TestNullable(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object().
		Field("note", dsl.StringOf[string]().Nullable()).Optional().
		MustBuild()

	got, err := s.Parse(ctx, map[string]any{"note": nil})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, present := got["note"]; !present || v != nil {
		t.Fatalf("expected explicit null, got %v", got)
	}
}

func TestArray_BoundsAndPaths(t *testing.T) {
	ctx := context.Background()
	s := dsl.Array[string](dsl.String()).Min(1).Max(2).Build()

	if _, err := s.Parse(ctx, []any{}); err == nil {
		t.Fatalf("expected too_short")
	} else if iss, _ := kintree.AsIssues(err); iss[0].Code != kintree.CodeTooShort {
		t.Fatalf("expected too_short, got %+v", iss)
	}

	if _, err := s.Parse(ctx, []any{"a", "b", "c"}); err == nil {
		t.Fatalf("expected too_long")
	} else if iss, _ := kintree.AsIssues(err); iss[0].Code != kintree.CodeTooLong {
		t.Fatalf("expected too_long, got %+v", iss)
	}

	_, err := s.Parse(ctx, []any{"ok", int64(3)})
	iss, ok := kintree.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Path != "/1" || iss[0].Code != kintree.CodeInvalidType {
		t.Fatalf("unexpected issues: %+v", iss)
	}
}

func TestArrayOf_EncodeDirection(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object().
		Field("tags", dsl.ArrayOf[string](dsl.StringOf[string]())).Required().
		MustBuild()

	got, err := s.Parse(ctx, map[string]any{"tags": []any{"a", "b"}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tags, ok := got["tags"].([]string)
	if !ok || len(tags) != 2 {
		t.Fatalf("expected []string of 2, got %T %v", got["tags"], got["tags"])
	}

	d, ok := any(s).(kintree.Dumper[map[string]any])
	if !ok {
		t.Fatalf("object schema should implement Dumper")
	}
	m, err := d.Dump(ctx, got)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := map[string]any{"tags": []any{"a", "b"}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("dump mismatch (-want +got):\n%s", diff)
	}
}
