package operations

import (
	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
)

// At returns a decoder that walks path from the data object and decodes the
// value found there with c. A missing or null value anywhere along the path
// is reported as not found.
func At[T any](c codec.Codec[T], path ...string) Decoder[T] {
	return func(data map[string]any, r *codec.Report) (*T, error) {
		v, found, err := lookup(data, path)
		if err != nil || !found {
			return nil, err
		}

		t, err := codec.DecodeAt(c, v, path, r)
		if err != nil {
			return nil, err
		}

		return &t, nil
	}
}

// EntityAt is At for a schema
func EntityAt[T any](s *codec.Schema[T], path ...string) Decoder[T] {
	return At[T](s, path...)
}

// Raw returns the data object itself, used when the caller wants to do its
// own decoding.
func Raw() Decoder[map[string]any] {
	return func(data map[string]any, _ *codec.Report) (*map[string]any, error) {
		if data == nil {
			return nil, nil
		}
		return &data, nil
	}
}

func lookup(data map[string]any, path []string) (any, bool, error) {
	var v any = data

	if data == nil {
		return nil, false, nil
	}

	for idx, key := range path {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, false, codec.ShapeError(path[:idx], "object", v)
		}

		v, ok = obj[key]
		if !ok || v == nil {
			return nil, false, nil
		}
	}

	return v, true, nil
}
