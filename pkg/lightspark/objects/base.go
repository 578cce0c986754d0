// Package objects contains the typed Lightspark API entities, their wire
// schemas and the canonical GraphQL fragment for every type.
package objects

import (
	"time"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
)

// Base holds the fields every entity has
type Base struct {
	// ID is unique across all Lightspark systems and should be treated as opaque
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Base) EntityID() string {
	return b.ID
}

func (b *Base) base() *Base {
	return b
}

type entity interface {
	base() *Base
}

func entityFields[T any, PT interface {
	*T
	entity
}]() []codec.Field[T] {
	return []codec.Field[T]{
		codec.Required("id", codec.String, func(t *T) *string { return &PT(t).base().ID }),
		codec.Required("created_at", codec.Time, func(t *T) *time.Time { return &PT(t).base().CreatedAt }),
		codec.Required("updated_at", codec.Time, func(t *T) *time.Time { return &PT(t).base().UpdatedAt }),
	}
}

func fields[T any](groups ...[]codec.Field[T]) []codec.Field[T] {
	all := []codec.Field[T]{}
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
