package genval

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanonicalize_IntegerWidthsCollapse(t *testing.T) {
	in := map[string]any{
		"a": int(1),
		"b": int32(2),
		"c": uint16(3),
		"d": uint64(4),
		"e": json.Number("5"),
	}
	got, err := Canonicalize(in, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"a": int64(1), "b": int64(2), "c": int64(3), "d": int64(4), "e": int64(5)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("canonical mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalize_UntypedMapKeys(t *testing.T) {
	in := map[any]any{"name": "a", "children": []any{}}
	got, err := Canonicalize(in, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(map[string]any); !ok {
		t.Fatalf("expected map[string]any, got %T", got)
	}

	if _, err := Canonicalize(map[any]any{int64(1): "a"}, Options{}); err == nil {
		t.Fatalf("expected error for non-string map key")
	}
}

func TestCanonicalize_RejectsForeignKinds(t *testing.T) {
	cases := []any{
		1.5,
		float32(2.5),
		[]byte("raw"),
		json.Number("1.25"),
		map[string]any{"x": 1.5},
		struct{}{},
	}
	for _, c := range cases {
		if _, err := Canonicalize(c, Options{}); err == nil {
			t.Fatalf("expected vocabulary error for %T(%v)", c, c)
		}
	}
}

func TestCanonicalize_KindErrorCarriesPath(t *testing.T) {
	_, err := Canonicalize(map[string]any{"children": []any{map[string]any{"age": 1.5}}}, Options{})
	var ke *KindError
	if !errors.As(err, &ke) {
		t.Fatalf("expected KindError, got %v", err)
	}
	if ke.Path != "/children/0/age" {
		t.Fatalf("expected path /children/0/age, got %q", ke.Path)
	}
}

func TestCanonicalize_Uint64Overflow(t *testing.T) {
	_, err := Canonicalize(uint64(math.MaxInt64)+1, Options{})
	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OverflowError, got %v", err)
	}
}

func TestCanonicalize_MaxDepth(t *testing.T) {
	v := any("leaf")
	for i := 0; i < 10; i++ {
		v = []any{v}
	}
	if _, err := Canonicalize(v, Options{MaxDepth: 20}); err != nil {
		t.Fatalf("depth 10 should pass under cap 20: %v", err)
	}
	_, err := Canonicalize(v, Options{MaxDepth: 5})
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("expected DepthError, got %v", err)
	}
}
