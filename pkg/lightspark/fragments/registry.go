package fragments

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Definition is the input to Register. Selection is the body of the fragment
// without the surrounding braces and DependsOn names every fragment spread
// used inside it.
type Definition struct {
	Name      string
	On        string
	Selection string
	DependsOn []string
}

// Fragment is an immutable, validated fragment definition
type Fragment struct {
	name      string
	on        string
	dependsOn []string
	text      string
}

func (f Fragment) Name() string {
	return f.name
}

func (f Fragment) On() string {
	return f.on
}

func (f Fragment) DependsOn() []string {
	return slices.Clone(f.dependsOn)
}

// Text returns the complete "fragment X on Y { ... }" definition
func (f Fragment) Text() string {
	return f.text
}

// Registry holds named fragments forming an acyclic dependency graph.
//
// Register is not safe for concurrent use. Registries are meant to be filled
// during initialization and only read after that, which needs no locking.
type Registry struct {
	fragments map[string]Fragment
	order     []string
}

func New() *Registry {
	return &Registry{
		fragments: map[string]Fragment{},
	}
}

// NewRegistry creates a registry and registers defs in the given order
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := New()

	for _, def := range defs {
		err := r.Register(def)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustNewRegistry is NewRegistry for package level tables. It panics on error.
func MustNewRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err.Error())
	}
	return r
}

var nameRegexp = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// Register validates and adds a fragment definition. Dependencies that are
// not registered yet are allowed and checked when the fragment is resolved.
// Registering the same definition twice is a no-op, while a different
// definition under an existing name or a dependency cycle is an error.
func (r *Registry) Register(def Definition) error {
	if !nameRegexp.MatchString(def.Name) || def.Name == "on" {
		return errors.NewCompositionError(fmt.Sprintf("invalid fragment name %q", def.Name))
	}

	if !nameRegexp.MatchString(def.On) {
		return errors.NewCompositionError(fmt.Sprintf("fragment %s has an invalid type condition %q", def.Name, def.On))
	}

	text := render(def)

	doc, err := parser.ParseQuery(&ast.Source{Name: def.Name, Input: text})
	if err != nil {
		return errors.NewCompositionError(fmt.Sprintf("fragment %s does not parse: %s", def.Name, err.Error()))
	}

	if len(doc.Operations) != 0 || len(doc.Fragments) != 1 {
		return errors.NewCompositionError(fmt.Sprintf("selection of fragment %s must not contain definitions", def.Name))
	}

	dependsOn := unique(def.DependsOn)
	spreads := unique(Spreads(doc.Fragments[0].SelectionSet))

	if !slices.Equal(dependsOn, spreads) {
		return errors.NewCompositionError(fmt.Sprintf(
			"fragment %s declares dependencies [%s] but spreads [%s]",
			def.Name, strings.Join(dependsOn, ", "), strings.Join(spreads, ", "),
		))
	}

	f := Fragment{
		name:      def.Name,
		on:        def.On,
		dependsOn: dependsOn,
		text:      text,
	}

	if existing, ok := r.fragments[def.Name]; ok {
		if existing.text == f.text {
			return nil
		}
		return errors.NewCompositionError(fmt.Sprintf("fragment %s is already registered with a different definition", def.Name))
	}

	if path := r.cycle(f); path != nil {
		return errors.NewCompositionError(fmt.Sprintf("fragment dependency cycle %s", strings.Join(path, " -> ")))
	}

	r.fragments[f.name] = f
	r.order = append(r.order, f.name)

	return nil
}

// MustRegister is Register for package level tables. It panics on error.
func (r *Registry) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err.Error())
		}
	}
}

func (r *Registry) Lookup(name string) (Fragment, bool) {
	f, ok := r.fragments[name]
	return f, ok
}

// Names returns the registered fragment names in registration order
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Clone returns a registry with the same contents that can be extended
// without affecting r.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		fragments: make(map[string]Fragment, len(r.fragments)),
		order:     slices.Clone(r.order),
	}

	for k, v := range r.fragments {
		c.fragments[k] = v
	}

	return c
}

// Resolve returns the named fragments and everything they depend on,
// transitively. Each fragment appears once and after its dependencies.
func (r *Registry) Resolve(names ...string) ([]Fragment, error) {
	const (
		visiting = 1
		done     = 2
	)

	state := map[string]int{}
	result := []Fragment{}

	var visit func(name, requiredBy string) error
	visit = func(name, requiredBy string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return errors.NewCompositionError(fmt.Sprintf("fragment dependency cycle through %s", name))
		}

		f, ok := r.fragments[name]
		if !ok {
			if requiredBy == "" {
				return errors.NewCompositionError(fmt.Sprintf("unknown fragment %s", name))
			}
			return errors.NewCompositionError(fmt.Sprintf("unknown fragment %s (required by %s)", name, requiredBy))
		}

		state[name] = visiting

		for _, dep := range f.dependsOn {
			if err := visit(dep, name); err != nil {
				return err
			}
		}

		state[name] = done
		result = append(result, f)

		return nil
	}

	for _, name := range names {
		if err := visit(name, ""); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Text returns the resolved definitions for names, separated by blank lines
func (r *Registry) Text(names ...string) (string, error) {
	resolved, err := r.Resolve(names...)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(resolved))
	for _, f := range resolved {
		texts = append(texts, f.text)
	}

	return strings.Join(texts, "\n\n"), nil
}

// cycle returns the dependency path leading from f back to itself, if any
func (r *Registry) cycle(f Fragment) []string {
	seen := map[string]bool{}

	var walk func(name string, path []string) []string
	walk = func(name string, path []string) []string {
		if name == f.name {
			return append(path, name)
		}

		if seen[name] {
			return nil
		}
		seen[name] = true

		dep, ok := r.fragments[name]
		if !ok {
			return nil
		}

		for _, next := range dep.dependsOn {
			if p := walk(next, append(slices.Clone(path), name)); p != nil {
				return p
			}
		}

		return nil
	}

	for _, dep := range f.dependsOn {
		if p := walk(dep, []string{f.name}); p != nil {
			return p
		}
	}

	return nil
}

func render(def Definition) string {
	return fmt.Sprintf("fragment %s on %s {\n%s\n}", def.Name, def.On, strings.Trim(def.Selection, "\n"))
}

func unique(names []string) []string {
	u := slices.Clone(names)
	slices.Sort(u)
	return slices.Compact(u)
}
