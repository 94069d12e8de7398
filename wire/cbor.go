package wire

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// cborModes holds the shared encode/decode modes. Decode forces string map
// keys and signed integer conversion so the result lands directly in the
// generic vocabulary.
var cborEnc, cborDec = func() (cbor.EncMode, cbor.DecMode) {
	enc, err := cbor.EncOptions{}.EncMode()
	if err != nil {
		panic(err)
	}
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSignedOrFail,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return enc, dec
}()

// CBOR returns the CBOR-backed driver.
func CBOR() Driver { return cborDriver{} }

type cborDriver struct{}

func (cborDriver) Name() string        { return "cbor" }
func (cborDriver) ContentType() string { return "application/cbor" }

func (cborDriver) Marshal(v any) ([]byte, error) {
	return cborEnc.Marshal(v)
}

func (cborDriver) Unmarshal(b []byte) (any, error) {
	var out any
	if err := cborDec.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
