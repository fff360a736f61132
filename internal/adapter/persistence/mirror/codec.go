package mirror

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode writes Core Deterministic CBOR: the same record always encodes to
// the same bytes. Times keep nanoseconds.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("mirror: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// sync queue payloads decode into any; keep them JSON-friendly
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("mirror: CBOR decoder initialization failed: " + err.Error())
	}
}

func marshal(v any) ([]byte, error) { return encMode.Marshal(v) }

func unmarshal(data []byte, v any) error { return decMode.Unmarshal(data, v) }
