package catalog

import (
	"fmt"
	"maps"
	"slices"

	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/diwise/lightspark-go/pkg/lightspark/fragments"
	"github.com/diwise/lightspark-go/pkg/lightspark/operations"
)

// Catalog holds operations defined in configuration, compiled against the
// SDK fragments extended with the configured ones.
type Catalog interface {
	Operations() []string
	Compile(name string, variables map[string]any) (*operations.Operation[map[string]any], error)
	Registry() *fragments.Registry
}

type catalogImpl struct {
	registry   *fragments.Registry
	operations map[string]OperationConfig
}

// New clones base and registers the configured fragments in it. Every
// configured operation is compiled once so that broken templates are found
// up front.
func New(cfg *Config, base *fragments.Registry) (Catalog, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	c := &catalogImpl{
		registry:   base.Clone(),
		operations: map[string]OperationConfig{},
	}

	for _, f := range cfg.Fragments {
		err := c.registry.Register(fragments.Definition{
			Name:      f.Name,
			On:        f.On,
			Selection: f.Selection,
			DependsOn: f.DependsOn,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to register fragment %s: %w", f.Name, err)
		}
	}

	for _, o := range cfg.Operations {
		if o.Name == "" {
			return nil, errors.NewInvalidConfigurationError("operation without a name")
		}

		if _, exists := c.operations[o.Name]; exists {
			return nil, errors.NewInvalidConfigurationError(fmt.Sprintf("operation %s is configured more than once", o.Name))
		}

		c.operations[o.Name] = o

		_, err := c.Compile(o.Name, nil)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *catalogImpl) Operations() []string {
	return slices.Sorted(maps.Keys(c.operations))
}

func (c *catalogImpl) Registry() *fragments.Registry {
	return c.registry
}

// Compile builds the named operation. Variables override the configured
// defaults. The result decodes to the raw data object of the response.
func (c *catalogImpl) Compile(name string, variables map[string]any) (*operations.Operation[map[string]any], error) {
	o, ok := c.operations[name]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no operation named %s", name))
	}

	vars := map[string]any{}
	for k, v := range o.Variables {
		vars[k] = normalize(v)
	}
	maps.Copy(vars, variables)

	op, err := operations.Build(c.registry, o.Template, vars, operations.Raw())
	if err != nil {
		return nil, fmt.Errorf("failed to compile operation %s: %w", name, err)
	}

	if op.Name != name {
		return nil, errors.NewInvalidConfigurationError(fmt.Sprintf("operation %s is configured with a template for %s", name, op.Name))
	}

	return op, nil
}

// normalize converts the map[interface{}]interface{} values produced by the
// yaml decoder into maps that can be encoded as json
func normalize(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = normalize(val)
		}
		return s
	default:
		return v
	}
}
