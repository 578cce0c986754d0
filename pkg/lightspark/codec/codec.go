// Package codec maps the flattened, type prefixed wire JSON of the Lightspark
// GraphQL API to typed Go values and back.
//
// A Schema is a declarative table of wire keys, value codecs and field
// accessors. The same table drives both decoding and encoding, so the wire
// contract for a type is stated exactly once.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
)

// TypenameKey is the discriminator key used for polymorphic values
const TypenameKey string = "__typename"

// Codec converts between a JSON decoded value (as produced by encoding/json
// when decoding into an any) and F.
type Codec[F any] interface {
	decode(v any, path []string, r *Report) (F, error)
	encode(f F) (any, error)
}

const (
	KindEnum    string = "enum"
	KindVariant string = "variant"
)

// Unknown describes a wire value that was not recognized but was mapped to a
// forward compatible sentinel instead of failing the decode.
type Unknown struct {
	Path  string
	Kind  string
	Type  string
	Value string
}

func (u Unknown) Err() error {
	return errors.NewUnknownVariantError(
		fmt.Sprintf("unknown %s %q for %s at %s", u.Kind, u.Value, u.Type, u.Path),
	)
}

// Report collects unknown enum tags and variants seen during a decode.
// A nil Report is valid and discards everything.
type Report struct {
	Unknown []Unknown
}

func (r *Report) Empty() bool {
	return r == nil || len(r.Unknown) == 0
}

func (r *Report) record(path []string, kind, typ, value string) {
	if r == nil {
		return
	}

	r.Unknown = append(r.Unknown, Unknown{
		Path:  strings.Join(path, "."),
		Kind:  kind,
		Type:  typ,
		Value: value,
	})
}

// Decode applies c to a JSON decoded value
func Decode[F any](c Codec[F], v any, r *Report) (F, error) {
	return c.decode(v, nil, r)
}

// DecodeAt is Decode for a value found at path inside a larger document, so
// that errors and reports carry the full path.
func DecodeAt[F any](c Codec[F], v any, path []string, r *Report) (F, error) {
	return c.decode(v, path, r)
}

// ShapeError returns a decode error for a value of an unexpected JSON kind
func ShapeError(path []string, expected string, v any) error {
	return wrongShape(path, expected, v)
}

// Encode applies c to a Go value, returning a value that encoding/json can marshal
func Encode[F any](c Codec[F], f F) (any, error) {
	return c.encode(f)
}

// ParseJSON decodes a JSON document keeping numbers as json.Number so that
// 64 bit integers survive the trip. Anything but whitespace after the
// document is an error.
func ParseJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	err := dec.Decode(&v)
	if err != nil {
		return nil, errors.NewDecodeError(nil, "malformed json: "+err.Error())
	}

	var trailing any
	if err = dec.Decode(&trailing); err != io.EOF {
		return nil, errors.NewDecodeError(nil, "malformed json: unexpected data after the top level value")
	}

	return v, nil
}

// ParseObject is ParseJSON for documents that must be a JSON object
func ParseObject(body []byte) (map[string]any, error) {
	v, err := ParseJSON(body)
	if err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.NewDecodeError(nil, fmt.Sprintf("expected an object, got %s", jsonKind(v)))
	}

	return obj, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func wrongShape(path []string, expected string, v any) error {
	return errors.NewDecodeError(path, fmt.Sprintf("expected %s, got %s", expected, jsonKind(v)))
}

func child(path []string, key string) []string {
	p := make([]string, len(path), len(path)+1)
	copy(p, path)
	return append(p, key)
}
