package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/lightspark-go/internal/pkg/application/catalog"
	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/graphql"
	"github.com/diwise/lightspark-go/pkg/lightspark/objects"
	"github.com/diwise/lightspark-go/pkg/lightspark/operations"
)

type builtin func(variables map[string]any) (operations.Request, error)

func request[T any](op *operations.Operation[T], err error) (operations.Request, error) {
	if err != nil {
		return operations.Request{}, err
	}
	return op.Request(), nil
}

func page(variables map[string]any) operations.Page {
	options := []operations.PageOption{}

	if first, ok := variables["first"].(float64); ok {
		options = append(options, operations.First(int64(first)))
	}
	if after, ok := variables["after"].(string); ok {
		options = append(options, operations.After(after))
	}

	return operations.NewPage(options...)
}

func required(variables map[string]any, name string) (string, error) {
	v, ok := variables[name]
	if !ok {
		return "", fmt.Errorf("missing required variable %s", name)
	}

	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("variable %s must be a non empty string, got %v", name, v)
	}

	return s, nil
}

func entity[T any](get func(string) *operations.Operation[T]) builtin {
	return func(v map[string]any) (operations.Request, error) {
		id, err := required(v, "id")
		if err != nil {
			return operations.Request{}, err
		}
		return get(id).Request(), nil
	}
}

func connection[T any](fetch func(string, operations.Page) (*operations.Operation[T], error)) builtin {
	return func(v map[string]any) (operations.Request, error) {
		id, err := required(v, "entity_id")
		if err != nil {
			return operations.Request{}, err
		}
		return request(fetch(id, page(v)))
	}
}

var builtins = map[string]builtin{
	"GetInvoice":           entity(graphql.GetInvoice),
	"GetWithdrawalRequest": entity(graphql.GetWithdrawalRequest),

	"FetchWithdrawalRequestToWithdrawalsConnection":                connection(graphql.WithdrawalRequestWithdrawals),
	"FetchWithdrawalRequestToChannelClosingTransactionsConnection": connection(graphql.WithdrawalRequestChannelClosingTransactions),
	"FetchWithdrawalRequestToChannelOpeningTransactionsConnection": connection(graphql.WithdrawalRequestChannelOpeningTransactions),
}

// compile writes the request envelope of an operation. Operations from the
// catalog take precedence over the built in ones.
func compile(w io.Writer, cat catalog.Catalog, name string, args []string) error {
	variables, err := parseVariables(args)
	if err != nil {
		return err
	}

	if slices.Contains(cat.Operations(), name) {
		op, err := cat.Compile(name, variables)
		if err != nil {
			return err
		}
		return writeJSON(w, op.Request())
	}

	b, ok := builtins[name]
	if !ok {
		return fmt.Errorf("unknown operation %s", name)
	}

	req, err := b(variables)
	if err != nil {
		return err
	}

	return writeJSON(w, req)
}

type decoder func(obj map[string]any, r *codec.Report) (map[string]any, error)

func reencode[T any](s *codec.Schema[T]) decoder {
	return func(obj map[string]any, r *codec.Report) (map[string]any, error) {
		t, err := s.Decode(obj, r)
		if err != nil {
			return nil, err
		}
		return s.ToJSON(t)
	}
}

var decoders = map[string]decoder{
	"Invoice":                   reencode(objects.InvoiceSchema),
	"InvoiceData":               reencode(objects.InvoiceDataSchema),
	"WithdrawalRequest":         reencode(objects.WithdrawalRequestSchema),
	"Withdrawal":                reencode(objects.WithdrawalSchema),
	"ChannelClosingTransaction": reencode(objects.ChannelClosingTransactionSchema),
	"ChannelOpeningTransaction": reencode(objects.ChannelOpeningTransactionSchema),
	"OutgoingPayment":           reencode(objects.OutgoingPaymentSchema),
	"GraphNode":                 reencode(objects.GraphNodeSchema),
	"CurrencyAmount":            reencode(objects.CurrencyAmountSchema),
	"Node": func(obj map[string]any, r *codec.Report) (map[string]any, error) {
		n, err := objects.Nodes.FromJSON(obj, r)
		if err != nil {
			return nil, err
		}
		return objects.Nodes.ToJSON(n)
	},
	objects.WithdrawalsConnectionSchema.Typename():                reencode(objects.WithdrawalsConnectionSchema),
	objects.ChannelClosingTransactionsConnectionSchema.Typename(): reencode(objects.ChannelClosingTransactionsConnectionSchema),
	objects.ChannelOpeningTransactionsConnectionSchema.Typename(): reencode(objects.ChannelOpeningTransactionsConnectionSchema),
}

// decodeFile decodes the object found by following keys from the root of the
// file and writes it back in its canonical wire form
func decodeFile(ctx context.Context, w io.Writer, typename, path string, keys []string) error {
	log := logging.GetFromContext(ctx)

	dec, ok := decoders[typename]
	if !ok {
		return fmt.Errorf("no decoder for type %s", typename)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	v, err := codec.ParseJSON(body)
	if err != nil {
		return err
	}

	for idx, key := range keys {
		obj, ok := v.(map[string]any)
		if !ok {
			return codec.ShapeError(keys[:idx], "object", v)
		}
		v = obj[key]
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return codec.ShapeError(keys, "object", v)
	}

	report := &codec.Report{}

	out, err := dec(obj, report)
	if err != nil {
		return err
	}

	for _, u := range report.Unknown {
		log.Warn("unknown value", "path", u.Path, "kind", u.Kind, "type", u.Type, "value", u.Value)
	}

	return writeJSON(w, out)
}
