package types

// Entity is a server identified object decoded from a response
type Entity interface {
	EntityID() string
	Typename() string
}

// Ref is a lightweight reference to another entity. Only the id is known,
// a separate fetch is needed to hydrate it.
type Ref struct {
	ID string
}

func (r Ref) EntityID() string {
	return r.ID
}

// PageInfo describes the position of a connection page. Cursors are opaque
// and must be passed back to the server verbatim.
type PageInfo struct {
	HasNextPage     *bool
	HasPreviousPage *bool
	StartCursor     *string
	EndCursor       *string
}

func (pi *PageInfo) NextPage() bool {
	return pi != nil && pi.HasNextPage != nil && *pi.HasNextPage
}

func (pi *PageInfo) PreviousPage() bool {
	return pi != nil && pi.HasPreviousPage != nil && *pi.HasPreviousPage
}

// Connection is a single page of a paginated collection. Count is the total
// number of entities on the server and may be larger than len(Entities).
type Connection[E any] struct {
	Count    int64
	PageInfo *PageInfo
	Entities []E
}
