package operations

import (
	"fmt"
	"slices"
	"strings"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/diwise/lightspark-go/pkg/lightspark/fragments"
)

const (
	ArgFirst  string = "first"
	ArgAfter  string = "after"
	ArgLast   string = "last"
	ArgBefore string = "before"
)

// Page selects a page of a connection. Forward paging uses First and After,
// backward paging uses Last and Before.
type Page struct {
	first  *int64
	after  *string
	last   *int64
	before *string
}

type PageOption func(*Page)

func First(n int64) PageOption {
	return func(p *Page) { p.first = &n }
}

// After takes a cursor exactly as it was returned by the server
func After(cursor string) PageOption {
	return func(p *Page) { p.after = &cursor }
}

func Last(n int64) PageOption {
	return func(p *Page) { p.last = &n }
}

func Before(cursor string) PageOption {
	return func(p *Page) { p.before = &cursor }
}

func NewPage(options ...PageOption) Page {
	p := Page{}
	for _, option := range options {
		option(&p)
	}
	return p
}

type argument struct {
	name    string
	gqlType string
	value   any
}

// arguments returns the set page arguments in a fixed order
func (p Page) arguments() []argument {
	args := []argument{}

	if p.first != nil {
		args = append(args, argument{ArgFirst, "Int", *p.first})
	}
	if p.after != nil {
		args = append(args, argument{ArgAfter, "String", *p.after})
	}
	if p.last != nil {
		args = append(args, argument{ArgLast, "Int", *p.last})
	}
	if p.before != nil {
		args = append(args, argument{ArgBefore, "String", *p.before})
	}

	return args
}

// ConnectionSpec describes a connection field on an entity
type ConnectionSpec struct {
	// Name of the generated operation, e.g. FetchWithdrawalRequestToWithdrawalsConnection
	Name string
	// EntityType is the type condition used on the entity lookup
	EntityType string
	// Field is the connection field on the entity
	Field string
	// Fragment selects the fields of the connection type
	Fragment string
	// Arguments lists the paging arguments the field accepts
	Arguments []string
}

// ConnectionQuery compiles an operation fetching one page of a connection of
// the entity with the given id. Each paging argument that is set appears
// exactly once among the variable declarations and once among the field
// arguments. Arguments that are not set are left out entirely.
func ConnectionQuery[T any](reg *fragments.Registry, spec ConnectionSpec, entityID string, page Page, s *codec.Schema[T]) (*Operation[T], error) {
	args := page.arguments()

	variables := map[string]any{"entity_id": entityID}
	declarations := []string{"$entity_id: ID!"}
	fieldArgs := []string{}

	for _, arg := range args {
		if !slices.Contains(spec.Arguments, arg.name) {
			return nil, errors.NewCompositionError(fmt.Sprintf("%s does not accept the %s argument", spec.Field, arg.name))
		}

		variables[arg.name] = arg.value
		declarations = append(declarations, fmt.Sprintf("$%s: %s", arg.name, arg.gqlType))
		fieldArgs = append(fieldArgs, fmt.Sprintf("%s: $%s", arg.name, arg.name))
	}

	field := spec.Field
	if len(fieldArgs) > 0 {
		field = fmt.Sprintf("%s(%s)", spec.Field, strings.Join(fieldArgs, ", "))
	}

	template := fmt.Sprintf(`
query %s(%s) {
    entity(id: $entity_id) {
        ... on %s {
            %s {
                ...%s
            }
        }
    }
}`, spec.Name, strings.Join(declarations, ", "), spec.EntityType, field, spec.Fragment)

	return Build(reg, template, variables, EntityAt(s, "entity", spec.Field))
}
