package persistence

import (
	"bytes"
	"encoding/gob"
	"errors"

	"github.com/petrijr/regular/pkg/definition"
)

var errEmptyPayload = errors.New("gob: empty payload")

// EncodeValue serializes v using encoding/gob.
func EncodeValue[T any](v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeValue deserializes a payload produced by EncodeValue.
func DecodeValue[T any](data []byte) (T, error) {
	var v T
	if len(data) == 0 {
		return v, errEmptyPayload
	}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

func encodeDefinition(def definition.Definition) ([]byte, error) {
	return EncodeValue(def)
}

func decodeDefinition(data []byte) (definition.Definition, error) {
	return DecodeValue[definition.Definition](data)
}
