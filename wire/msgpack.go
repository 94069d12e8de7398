package wire

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack returns the MessagePack-backed driver. It is the package default.
func Msgpack() Driver { return msgpackDriver{} }

type msgpackDriver struct{}

func (msgpackDriver) Name() string        { return "msgpack" }
func (msgpackDriver) ContentType() string { return "application/msgpack" }

func (msgpackDriver) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackDriver) Unmarshal(b []byte) (any, error) {
	var out any
	if err := msgpack.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
