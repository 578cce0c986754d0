package codec

import (
	"fmt"

	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
)

// VariantOf is one concrete member of a Union
type VariantOf[I any] struct {
	typename string
	decode   func(obj map[string]any, path []string, r *Report) (I, error)
	encode   func(i I) (any, bool, error)
}

// Variant registers the type decoded by s as a member of the union I. A
// pointer to T must implement I.
func Variant[I any, T any](s *Schema[T]) VariantOf[I] {
	return VariantOf[I]{
		typename: s.typename,
		decode: func(obj map[string]any, path []string, r *Report) (I, error) {
			var zero I

			t, err := s.decodeObject(obj, path, r)
			if err != nil {
				return zero, err
			}

			i, ok := any(&t).(I)
			if !ok {
				return zero, errors.NewDecodeError(path, fmt.Sprintf("%s is not a member of the union", s.typename))
			}

			return i, nil
		},
		encode: func(i I) (any, bool, error) {
			switch t := any(i).(type) {
			case *T:
				if t == nil {
					return nil, true, nil
				}
				v, err := s.ToJSON(*t)
				return v, true, err
			case T:
				v, err := s.ToJSON(t)
				return v, true, err
			}
			return nil, false, nil
		},
	}
}

// Union decodes polymorphic values by looking at their __typename and
// dispatching to the matching variant. Unknown type names decode to the
// value returned by the unknown constructor.
type Union[I any] struct {
	name     string
	variants map[string]VariantOf[I]
	order    []VariantOf[I]
	unknown  func(typename string) I
}

func NewUnion[I any](name string, unknown func(typename string) I, variants ...VariantOf[I]) *Union[I] {
	u := &Union[I]{
		name:     name,
		variants: make(map[string]VariantOf[I], len(variants)),
		order:    variants,
		unknown:  unknown,
	}

	for _, v := range variants {
		if _, exists := u.variants[v.typename]; exists {
			panic(fmt.Sprintf("union %s declares variant %s more than once", name, v.typename))
		}
		u.variants[v.typename] = v
	}

	return u
}

func (u *Union[I]) Name() string {
	return u.name
}

// Typenames returns the known variant type names in declaration order
func (u *Union[I]) Typenames() []string {
	names := make([]string, 0, len(u.order))
	for _, v := range u.order {
		names = append(names, v.typename)
	}
	return names
}

// FromJSON decodes a single polymorphic wire object
func (u *Union[I]) FromJSON(obj map[string]any, r *Report) (I, error) {
	return u.decode(obj, nil, r)
}

func (u *Union[I]) ToJSON(i I) (map[string]any, error) {
	v, err := u.encode(i)
	if err != nil {
		return nil, err
	}

	obj, _ := v.(map[string]any)
	return obj, nil
}

func (u *Union[I]) decode(v any, path []string, r *Report) (I, error) {
	var zero I

	obj, ok := v.(map[string]any)
	if !ok {
		return zero, wrongShape(path, "object", v)
	}

	typename, ok := obj[TypenameKey].(string)
	if !ok || typename == "" {
		return zero, errors.NewDecodeError(child(path, TypenameKey), "polymorphic value without a type name")
	}

	variant, ok := u.variants[typename]
	if !ok {
		r.record(path, KindVariant, u.name, typename)
		return u.unknown(typename), nil
	}

	return variant.decode(obj, path, r)
}

type typenamer interface {
	Typename() string
}

func (u *Union[I]) encode(i I) (any, error) {
	for _, v := range u.order {
		obj, matched, err := v.encode(i)
		if matched {
			return obj, err
		}
	}

	// values outside the known variants, such as the unknown sentinel, only
	// keep their type name
	if tn, ok := any(i).(typenamer); ok {
		return map[string]any{TypenameKey: tn.Typename()}, nil
	}

	return nil, fmt.Errorf("%T is not a variant of %s", i, u.name)
}
