package codec

import (
	"encoding/json"
	"fmt"

	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
)

// Field is a single row of a Schema: a wire name, a value codec and an
// accessor to the Go field holding the value.
type Field[T any] struct {
	name   string
	decode func(obj map[string]any, key string, path []string, r *Report, t *T) error
	encode func(t *T, key string, out map[string]any) error
}

func (f Field[T]) Name() string {
	return f.name
}

// Required declares a field that must be present and non null on the wire
func Required[T, F any](name string, c Codec[F], get func(*T) *F) Field[T] {
	return Field[T]{
		name: name,
		decode: func(obj map[string]any, key string, path []string, r *Report, t *T) error {
			fieldPath := child(path, key)

			v, ok := obj[key]
			if !ok || v == nil {
				return errors.NewDecodeError(fieldPath, "required value is missing")
			}

			f, err := c.decode(v, fieldPath, r)
			if err != nil {
				return err
			}

			*get(t) = f
			return nil
		},
		encode: func(t *T, key string, out map[string]any) error {
			v, err := c.encode(*get(t))
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", key, err)
			}
			out[key] = v
			return nil
		},
	}
}

// Optional declares a field that may be missing or null on the wire. Absent
// values decode to nil and are left out when encoding.
func Optional[T, F any](name string, c Codec[F], get func(*T) **F) Field[T] {
	return Field[T]{
		name: name,
		decode: func(obj map[string]any, key string, path []string, r *Report, t *T) error {
			v, ok := obj[key]
			if !ok || v == nil {
				*get(t) = nil
				return nil
			}

			f, err := c.decode(v, child(path, key), r)
			if err != nil {
				return err
			}

			*get(t) = &f
			return nil
		},
		encode: func(t *T, key string, out map[string]any) error {
			p := *get(t)
			if p == nil {
				return nil
			}

			v, err := c.encode(*p)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", key, err)
			}
			out[key] = v
			return nil
		},
	}
}

// Schema describes how a struct type T is laid out on the wire. Every key is
// the schema prefix followed by an underscore and the field name.
type Schema[T any] struct {
	typename string
	prefix   string
	fields   []Field[T]
	keys     []string
}

// NewSchema builds a schema. It panics if two fields map to the same wire
// key, since that can only be a programming error in a static table.
func NewSchema[T any](typename, prefix string, fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		typename: typename,
		prefix:   prefix,
		fields:   fields,
		keys:     make([]string, 0, len(fields)),
	}

	seen := map[string]bool{}

	for _, f := range fields {
		key := s.Key(f.name)
		if seen[key] {
			panic(fmt.Sprintf("schema %s declares wire key %s more than once", typename, key))
		}
		seen[key] = true
		s.keys = append(s.keys, key)
	}

	return s
}

func (s *Schema[T]) Typename() string {
	return s.typename
}

func (s *Schema[T]) Prefix() string {
	return s.prefix
}

// Key returns the wire key for a field name
func (s *Schema[T]) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "_" + name
}

// Keys returns the wire keys of the schema in declaration order
func (s *Schema[T]) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// FromJSON decodes a wire object, discarding information about unknown tags
func (s *Schema[T]) FromJSON(obj map[string]any) (T, error) {
	return s.Decode(obj, nil)
}

// Decode decodes a wire object and records any unknown enum tags or
// variants in r.
func (s *Schema[T]) Decode(obj map[string]any, r *Report) (T, error) {
	return s.decodeObject(obj, nil, r)
}

// ToJSON encodes t as a wire object, including its __typename
func (s *Schema[T]) ToJSON(t T) (map[string]any, error) {
	out := make(map[string]any, len(s.fields)+1)

	if s.typename != "" {
		out[TypenameKey] = s.typename
	}

	for idx, f := range s.fields {
		err := f.encode(&t, s.keys[idx], out)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", s.typename, err)
		}
	}

	return out, nil
}

// Unmarshal decodes a JSON document into T
func (s *Schema[T]) Unmarshal(body []byte) (T, error) {
	obj, err := ParseObject(body)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.FromJSON(obj)
}

// Marshal encodes t as a JSON document
func (s *Schema[T]) Marshal(t T) ([]byte, error) {
	obj, err := s.ToJSON(t)
	if err != nil {
		return nil, err
	}

	return json.Marshal(obj)
}

func (s *Schema[T]) decodeObject(obj map[string]any, path []string, r *Report) (T, error) {
	var t T

	for idx, f := range s.fields {
		err := f.decode(obj, s.keys[idx], path, r, &t)
		if err != nil {
			return t, err
		}
	}

	return t, nil
}

func (s *Schema[T]) decode(v any, path []string, r *Report) (T, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		var zero T
		return zero, wrongShape(path, "object", v)
	}

	return s.decodeObject(obj, path, r)
}

func (s *Schema[T]) encode(t T) (any, error) {
	return s.ToJSON(t)
}
