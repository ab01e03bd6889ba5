// Package codec converts objects between the managed representation (plain Go
// values) and the native representation (JSON-encoded bytes).
package codec

import (
	"fmt"

	"github.com/bytedance/sonic"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Converter = (*JSON)(nil)

// api is configured like encoding/json so encoded objects are byte-for-byte stable.
var api = sonic.ConfigStd

// Encode returns the native representation of v.
func Encode(v any) ([]byte, error) {
	data, err := api.Marshal(v)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode object")
	}
	return data, nil
}

// Decode returns the managed representation of data.
func Decode(data []byte) (any, error) {
	var v any
	if err := api.Unmarshal(data, &v); err != nil {
		return nil, zerr.Wrap(err, "failed to decode object")
	}
	return v, nil
}

// JSON implements ports.Converter with Encode and Decode.
type JSON struct{}

// NewJSON creates a JSON converter.
func NewJSON() *JSON {
	return &JSON{}
}

// ToManaged decodes a native object. The native value must be a byte slice.
func (JSON) ToManaged(ref domain.OutputRef, native any) (any, error) {
	data, ok := native.([]byte)
	if !ok {
		return nil, zerr.With(zerr.With(zerr.New("native object is not encoded"), "ref", ref.String()), "type", fmt.Sprintf("%T", native))
	}
	v, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "ref", ref.String())
	}
	return v, nil
}

// ToNative encodes a managed object.
func (JSON) ToNative(ref domain.OutputRef, managed any) (any, error) {
	data, err := Encode(managed)
	if err != nil {
		return nil, zerr.With(err, "ref", ref.String())
	}
	return data, nil
}

