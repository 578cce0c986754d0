package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	lserrors "github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/diwise/lightspark-go/pkg/lightspark/objects"
)

func TestCatalogListsOperations(t *testing.T) {
	is, cat := setupCatalogTest(t)

	is.Equal(cat.Operations(), []string{"CurrentAccount", "GetNodeBalances"})
}

func TestCompileResolvesConfiguredAndBuiltinFragments(t *testing.T) {
	is, cat := setupCatalogTest(t)

	op, err := cat.Compile("GetNodeBalances", nil)
	is.NoErr(err)

	is.Equal(strings.Count(op.Query, "fragment NodeBalancesFragment on"), 1)
	is.Equal(strings.Count(op.Query, "fragment "+objects.BalancesFragment+" on"), 1)
	is.Equal(strings.Count(op.Query, "fragment "+objects.CurrencyAmountFragment+" on"), 1)
}

func TestCompileMergesVariables(t *testing.T) {
	is, cat := setupCatalogTest(t)

	op, err := cat.Compile("GetNodeBalances", map[string]any{"id": "LightsparkNodeWithOSK:1"})
	is.NoErr(err)

	is.Equal(op.Variables["id"], "LightsparkNodeWithOSK:1") // callers override defaults

	filter, ok := op.Variables["filter"].(map[string]any)
	is.True(ok) // defaults must be encodable as json
	is.Equal(filter["kinds"], []any{"OWNED", "AVAILABLE_TO_SEND"})
}

func TestCompileDecodesRawData(t *testing.T) {
	is, cat := setupCatalogTest(t)

	op, err := cat.Compile("CurrentAccount", nil)
	is.NoErr(err)

	data := map[string]any{"current_account": map[string]any{"id": "Account:1"}}

	result, err := op.Decode(data, nil)
	is.NoErr(err)
	is.Equal(*result, data)
}

func TestCatalogDoesNotChangeBaseRegistry(t *testing.T) {
	is, cat := setupCatalogTest(t)

	_, ok := cat.Registry().Lookup("NodeBalancesFragment")
	is.True(ok)

	_, ok = objects.Fragments.Lookup("NodeBalancesFragment")
	is.True(!ok)
}

func TestCompileUnknownOperation(t *testing.T) {
	is, cat := setupCatalogTest(t)

	_, err := cat.Compile("GetSomethingElse", nil)
	is.True(errors.Is(err, lserrors.ErrNotFound))
}

func TestInvalidCatalogs(t *testing.T) {
	is := is.New(t)

	_, err := New(&Config{Operations: []OperationConfig{{Template: "query A { a }"}}}, objects.Fragments)
	is.True(errors.Is(err, lserrors.ErrInvalidConfiguration)) // operation without a name

	_, err = New(&Config{Operations: []OperationConfig{
		{Name: "A", Template: "query A { a }"},
		{Name: "A", Template: "query A { a }"},
	}}, objects.Fragments)
	is.True(errors.Is(err, lserrors.ErrInvalidConfiguration)) // duplicate names

	_, err = New(&Config{Operations: []OperationConfig{{Name: "A", Template: "query B { b }"}}}, objects.Fragments)
	is.True(errors.Is(err, lserrors.ErrInvalidConfiguration)) // name does not match the template

	_, err = New(&Config{Operations: []OperationConfig{{Name: "A", Template: "query A { a { ...MissingFragment } }"}}}, objects.Fragments)
	is.True(errors.Is(err, lserrors.ErrComposition))

	_, err = New(&Config{Fragments: []FragmentConfig{
		{Name: objects.CurrencyAmountFragment, On: "CurrencyAmount", Selection: "original_value"},
	}}, objects.Fragments)
	is.True(errors.Is(err, lserrors.ErrComposition)) // builtin fragments can not be redefined
}

func setupCatalogTest(t *testing.T) (*is.I, Catalog) {
	is, config := setupConfigTest(t)

	cat, err := New(config, objects.Fragments)
	is.NoErr(err)

	return is, cat
}
