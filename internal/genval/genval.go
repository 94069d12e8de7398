// Package genval canonicalizes arbitrary decoded values into the generic
// value vocabulary shared by the schema layer and the wire drivers:
// string, int64, bool, nil, []any, and map[string]any. Anything else is
// outside the vocabulary and is rejected.
package genval

import (
	"encoding/json"
	"fmt"
	"math"
)

// DefaultMaxDepth bounds the nesting depth accepted during canonicalization.
// Traversal is recursive, so this also bounds call-stack usage for decoded
// wire values.
const DefaultMaxDepth = 1000

// Options controls canonicalization.
type Options struct {
	// MaxDepth caps nesting depth; zero means DefaultMaxDepth.
	MaxDepth int
}

// KindError reports a value kind outside the generic vocabulary.
type KindError struct {
	Path string
	Got  string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("genval: unsupported kind %s at %s", e.Got, e.Path)
}

// DepthError reports nesting beyond the configured maximum.
type DepthError struct {
	Path string
	Max  int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("genval: max depth %d exceeded at %s", e.Max, e.Path)
}

// OverflowError reports an integer that cannot be represented as int64.
type OverflowError struct {
	Path string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("genval: integer overflows int64 at %s", e.Path)
}

// Canonicalize rebuilds v with every scalar, sequence, and mapping in
// canonical form. Integer widths collapse to int64; maps with non-string
// keys, floats, byte strings, and any other foreign kind fail.
func Canonicalize(v any, opt Options) (any, error) {
	max := opt.MaxDepth
	if max <= 0 {
		max = DefaultMaxDepth
	}
	return walk(v, "/", 0, max)
}

func walk(v any, path string, depth, maxDepth int) (any, error) {
	if depth > maxDepth {
		return nil, &DepthError{Path: path, Max: maxDepth}
	}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return t, nil
	case bool:
		return t, nil
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case uint:
		return uintToInt64(uint64(t), path)
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return uintToInt64(t, path)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return nil, &KindError{Path: path, Got: "non-integer number " + t.String()}
		}
		return i, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			c, err := walk(e, childPath(path, fmt.Sprintf("%d", i)), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			c, err := walk(e, childPath(path, k), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case map[any]any:
		// Some drivers hand back untyped map keys; accept them only when
		// every key is a string.
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, &KindError{Path: path, Got: fmt.Sprintf("map key %T", k)}
			}
			c, err := walk(e, childPath(path, ks), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[ks] = c
		}
		return out, nil
	default:
		return nil, &KindError{Path: path, Got: fmt.Sprintf("%T", v)}
	}
}

func uintToInt64(u uint64, path string) (any, error) {
	if u > math.MaxInt64 {
		return nil, &OverflowError{Path: path}
	}
	return int64(u), nil
}

func childPath(base, key string) string {
	if base == "/" {
		return "/" + key
	}
	return base + "/" + key
}
