package operations

import (
	"fmt"
	"maps"
	"strings"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/diwise/lightspark-go/pkg/lightspark/fragments"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const (
	Query    string = "query"
	Mutation string = "mutation"
)

// Decoder turns the data object of a response into a typed result. It must
// not do any I/O. A nil result without an error means that the requested
// object does not exist.
type Decoder[T any] func(data map[string]any, r *codec.Report) (*T, error)

// Operation is a compiled query or mutation ready to be handed to a transport
type Operation[T any] struct {
	Name      string
	Type      string
	Query     string
	Variables map[string]any
	Decode    Decoder[T]
}

// Request is the JSON envelope sent to the GraphQL endpoint
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func (o *Operation[T]) Request() Request {
	variables := o.Variables
	if variables == nil {
		variables = map[string]any{}
	}

	return Request{
		Query:     o.Query,
		Variables: variables,
	}
}

// Build compiles an operation template. Every named fragment spread in the
// template that is not defined by the template itself is resolved through
// reg and its definition, together with all transitive dependencies, is
// appended exactly once. Variables are passed through untouched.
func Build[T any](reg *fragments.Registry, template string, variables map[string]any, decode Decoder[T]) (*Operation[T], error) {
	if decode == nil {
		return nil, errors.NewCompositionError("an operation needs a decoder")
	}

	doc, err := parser.ParseQuery(&ast.Source{Name: "template", Input: template})
	if err != nil {
		return nil, errors.NewCompositionError(fmt.Sprintf("operation template does not parse: %s", err.Error()))
	}

	if len(doc.Operations) != 1 {
		return nil, errors.NewCompositionError(fmt.Sprintf("an operation template must contain exactly one operation, found %d", len(doc.Operations)))
	}

	op := doc.Operations[0]

	local := map[string]bool{}
	for _, f := range doc.Fragments {
		if local[f.Name] {
			return nil, errors.NewCompositionError(fmt.Sprintf("fragment %s is defined more than once in the template", f.Name))
		}
		local[f.Name] = true
	}

	required := []string{}
	for _, name := range fragments.DocumentSpreads(doc) {
		if !local[name] {
			required = append(required, name)
		}
	}

	resolved, err := reg.Resolve(required...)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", op.Name, err)
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(template))

	for _, f := range resolved {
		if local[f.Name()] {
			return nil, errors.NewCompositionError(fmt.Sprintf("template redefines registered fragment %s", f.Name()))
		}
		sb.WriteString("\n\n")
		sb.WriteString(f.Text())
	}
	sb.WriteString("\n")

	text := sb.String()

	err = verify(text)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", op.Name, err)
	}

	return &Operation[T]{
		Name:      op.Name,
		Type:      string(op.Operation),
		Query:     text,
		Variables: maps.Clone(variables),
		Decode:    decode,
	}, nil
}

// MustBuild is Build for operations without variables that are compiled once
// at package initialization. It panics on error.
func MustBuild[T any](reg *fragments.Registry, template string, decode Decoder[T]) *Operation[T] {
	op, err := Build(reg, template, nil, decode)
	if err != nil {
		panic(err.Error())
	}
	return op
}

// WithVariables returns a copy of o bound to a new set of variables
func (o *Operation[T]) WithVariables(variables map[string]any) *Operation[T] {
	c := *o
	c.Variables = maps.Clone(variables)
	return &c
}

// verify parses the final operation text and makes sure that each fragment
// is defined once and every spread has a definition.
func verify(text string) error {
	doc, err := parser.ParseQuery(&ast.Source{Name: "operation", Input: text})
	if err != nil {
		return errors.NewCompositionError(fmt.Sprintf("compiled operation does not parse: %s", err.Error()))
	}

	defined := map[string]bool{}
	for _, f := range doc.Fragments {
		if defined[f.Name] {
			return errors.NewCompositionError(fmt.Sprintf("fragment %s is defined more than once", f.Name))
		}
		defined[f.Name] = true
	}

	for _, name := range fragments.DocumentSpreads(doc) {
		if !defined[name] {
			return errors.NewCompositionError(fmt.Sprintf("fragment %s is used but not defined", name))
		}
	}

	return nil
}
