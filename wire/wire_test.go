package wire_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	kintree "github.com/reoring/kintree"
	"github.com/reoring/kintree/wire"
)

func sampleValue() map[string]any {
	return map[string]any{
		"name": "root",
		"age":  int64(42),
		"children": []any{
			map[string]any{"name": "a", "age": int64(7), "children": []any{}},
			map[string]any{"name": "b", "age": int64(9), "children": []any{
				map[string]any{"name": "c", "age": int64(1), "children": []any{}},
			}},
		},
		"active": true,
		"note":   nil,
	}
}

func TestRoundTrip_AllDrivers(t *testing.T) {
	drivers := []wire.Driver{wire.Msgpack(), wire.CBOR(), wire.JSON()}
	for _, d := range drivers {
		t.Run(d.Name(), func(t *testing.T) {
			v := sampleValue()
			b, err := wire.EncodeWith(d, v)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := wire.DecodeWith(d, b)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(v, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_CanonicalizesIntWidths(t *testing.T) {
	b, err := wire.Encode(map[string]any{"age": 42})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := wire.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", got)
	}
	if m["age"] != int64(42) {
		t.Fatalf("expected int64(42), got %T(%v)", m["age"], m["age"])
	}
}

func TestEncode_RejectsFloat(t *testing.T) {
	_, err := wire.Encode(map[string]any{"x": 1.5})
	var ce *wire.CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CodecError, got %v", err)
	}
	if ce.Op != "encode" {
		t.Fatalf("expected encode op, got %q", ce.Op)
	}
}

func TestDecode_RejectsFloatPayload(t *testing.T) {
	// Craft the bytes below the vocabulary check: raw JSON with a fraction.
	_, err := wire.DecodeWith(wire.JSON(), []byte(`{"x":1.5}`))
	var ce *wire.CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CodecError, got %v", err)
	}
	if ce.Op != "decode" {
		t.Fatalf("expected decode op, got %q", ce.Op)
	}
}

func TestDecode_TruncatedBytes(t *testing.T) {
	for _, d := range []wire.Driver{wire.Msgpack(), wire.CBOR(), wire.JSON()} {
		t.Run(d.Name(), func(t *testing.T) {
			b, err := wire.EncodeWith(d, sampleValue())
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			_, err = wire.DecodeWith(d, b[:len(b)/2])
			var ce *wire.CodecError
			if !errors.As(err, &ce) {
				t.Fatalf("expected CodecError on truncated input, got %v", err)
			}
		})
	}
}

func TestDecode_MaxDepth(t *testing.T) {
	v := any("leaf")
	for i := 0; i < 30; i++ {
		v = []any{v}
	}
	b, err := wire.Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := wire.Decode(b); err != nil {
		t.Fatalf("default depth should accept 30 levels: %v", err)
	}
	_, err = wire.Decode(b, kintree.ParseOpt{MaxDepth: 10})
	var ce *wire.CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CodecError under tight depth cap, got %v", err)
	}
}

func TestDriverRegistry(t *testing.T) {
	defer wire.UseDefaultDriver()

	wire.SetDriver(wire.CBOR())
	b, err := wire.Encode(sampleValue())
	if err != nil {
		t.Fatalf("encode via cbor: %v", err)
	}
	if _, err := wire.DecodeWith(wire.CBOR(), b); err != nil {
		t.Fatalf("bytes should be cbor: %v", err)
	}

	wire.UseDefaultDriver()
	b2, err := wire.Encode(sampleValue())
	if err != nil {
		t.Fatalf("encode via default: %v", err)
	}
	if _, err := wire.DecodeWith(wire.Msgpack(), b2); err != nil {
		t.Fatalf("bytes should be msgpack again: %v", err)
	}
}
