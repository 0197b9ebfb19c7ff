package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Decode unmarshals bz into a value of type T.
func Decode[T any](bz []byte) (T, error) {
	out := new(T)
	if err := json.Unmarshal(bz, out); err != nil {
		return *out, eris.Wrap(err, "")
	}
	return *out, nil
}

// Encode marshals v to JSON.
func Encode(v any) ([]byte, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "")
	}
	return bz, nil
}

// EncodeIndent marshals v to indented JSON for human-facing diagnostics.
func EncodeIndent(v any) ([]byte, error) {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "")
	}
	return bz, nil
}
