// Package wire encodes generic values (string, int64, bool, nil, []any,
// map[string]any) to bytes and back. The byte layout is delegated to
// off-the-shelf codec libraries behind a swappable Driver; the package
// guarantees only the round-trip law Decode(Encode(v)) == v over the
// canonical vocabulary, not byte canonicality.
package wire

import (
	"fmt"
	"sync"

	kintree "github.com/reoring/kintree"
	"github.com/reoring/kintree/internal/genval"
)

// DefaultMaxDepth is the nesting depth accepted on decode when ParseOpt does
// not say otherwise. It exists to bound recursion over hostile input.
const DefaultMaxDepth = genval.DefaultMaxDepth

// Driver converts between a decoded Go value and its byte representation.
// Implementations do not need to canonicalize; the package does that on both
// sides.
type Driver interface {
	Name() string
	ContentType() string
	Marshal(v any) ([]byte, error)
	Unmarshal(b []byte) (any, error)
}

// CodecError reports a wire-level failure: malformed or truncated bytes, a
// value kind outside the generic vocabulary, or a driver fault. It is
// orthogonal to kintree.Issues, which live one layer above.
type CodecError struct {
	Op     string // "encode" or "decode"
	Driver string
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("wire: %s (%s): %v", e.Op, e.Driver, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

var (
	driverMu      sync.RWMutex
	currentDriver Driver = Msgpack()
)

// SetDriver replaces the global wire driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the MessagePack-backed default.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = Msgpack()
	driverMu.Unlock()
}

// Default returns the driver currently in effect.
func Default() Driver { return getDriver() }

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// Encode serializes a generic value using the current driver.
func Encode(v any) ([]byte, error) { return EncodeWith(getDriver(), v) }

// Decode deserializes bytes into a canonical generic value using the current
// driver.
func Decode(b []byte, opts ...kintree.ParseOpt) (any, error) {
	return DecodeWith(getDriver(), b, opts...)
}

// EncodeWith serializes with an explicit driver. The input is canonicalized
// first, so values outside the generic vocabulary fail before any bytes are
// produced.
func EncodeWith(d Driver, v any) ([]byte, error) {
	c, err := genval.Canonicalize(v, genval.Options{})
	if err != nil {
		return nil, &CodecError{Op: "encode", Driver: d.Name(), Err: err}
	}
	b, err := d.Marshal(c)
	if err != nil {
		return nil, &CodecError{Op: "encode", Driver: d.Name(), Err: err}
	}
	return b, nil
}

// DecodeWith deserializes with an explicit driver and canonicalizes the
// result, enforcing the depth cap from the last ParseOpt when given.
func DecodeWith(d Driver, b []byte, opts ...kintree.ParseOpt) (any, error) {
	var opt kintree.ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, err := d.Unmarshal(b)
	if err != nil {
		return nil, &CodecError{Op: "decode", Driver: d.Name(), Err: err}
	}
	c, err := genval.Canonicalize(v, genval.Options{MaxDepth: opt.MaxDepth})
	if err != nil {
		return nil, &CodecError{Op: "decode", Driver: d.Name(), Err: err}
	}
	return c, nil
}
