package wire

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"
)

// JSON returns a go-json-backed driver. Numbers are decoded as json.Number
// and canonicalized to int64 downstream, so fractional payloads fail the
// vocabulary check instead of silently losing precision.
func JSON() Driver { return jsonDriver{} }

type jsonDriver struct{}

func (jsonDriver) Name() string        { return "go-json" }
func (jsonDriver) ContentType() string { return "application/json" }

func (jsonDriver) Marshal(v any) ([]byte, error) {
	return j.Marshal(v)
}

func (jsonDriver) Unmarshal(b []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	// A generic value is a single document; trailing tokens are malformed.
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after document")
	}
	return out, nil
}
