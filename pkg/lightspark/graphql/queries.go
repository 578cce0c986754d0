// Package graphql contains the operations of the Lightspark API that the SDK
// knows how to build and decode.
package graphql

import (
	"github.com/diwise/lightspark-go/pkg/lightspark/objects"
	"github.com/diwise/lightspark-go/pkg/lightspark/operations"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

const getInvoiceQuery string = `
query GetInvoice($id: ID!) {
    entity(id: $id) {
        ... on Invoice {
            ...InvoiceFragment
        }
    }
}`

const getWithdrawalRequestQuery string = `
query GetWithdrawalRequest($id: ID!) {
    entity(id: $id) {
        ... on WithdrawalRequest {
            ...WithdrawalRequestFragment
        }
    }
}`

var getInvoice = operations.MustBuild(objects.Fragments, getInvoiceQuery, operations.EntityAt(objects.InvoiceSchema, "entity"))
var getWithdrawalRequest = operations.MustBuild(objects.Fragments, getWithdrawalRequestQuery, operations.EntityAt(objects.WithdrawalRequestSchema, "entity"))

// GetInvoice fetches an invoice by id. The result is nil if there is no such invoice.
func GetInvoice(id string) *operations.Operation[objects.Invoice] {
	return getInvoice.WithVariables(map[string]any{"id": id})
}

func GetWithdrawalRequest(id string) *operations.Operation[objects.WithdrawalRequest] {
	return getWithdrawalRequest.WithVariables(map[string]any{"id": id})
}

var withdrawalsConnection = operations.ConnectionSpec{
	Name:       "FetchWithdrawalRequestToWithdrawalsConnection",
	EntityType: "WithdrawalRequest",
	Field:      "withdrawals",
	Fragment:   objects.WithdrawalsConnectionFragment,
	Arguments:  []string{operations.ArgFirst},
}

var channelClosingTransactionsConnection = operations.ConnectionSpec{
	Name:       "FetchWithdrawalRequestToChannelClosingTransactionsConnection",
	EntityType: "WithdrawalRequest",
	Field:      "channel_closing_transactions",
	Fragment:   objects.ChannelClosingTransactionsConnectionFragment,
	Arguments:  []string{operations.ArgFirst, operations.ArgAfter},
}

var channelOpeningTransactionsConnection = operations.ConnectionSpec{
	Name:       "FetchWithdrawalRequestToChannelOpeningTransactionsConnection",
	EntityType: "WithdrawalRequest",
	Field:      "channel_opening_transactions",
	Fragment:   objects.ChannelOpeningTransactionsConnectionFragment,
	Arguments:  []string{operations.ArgFirst, operations.ArgAfter},
}

// WithdrawalRequestWithdrawals fetches the withdrawals made for a withdrawal
// request. The connection only supports a page size.
func WithdrawalRequestWithdrawals(withdrawalRequestID string, page operations.Page) (*operations.Operation[objects.WithdrawalsConnection], error) {
	return operations.ConnectionQuery(objects.Fragments, withdrawalsConnection, withdrawalRequestID, page, objects.WithdrawalsConnectionSchema)
}

func WithdrawalRequestChannelClosingTransactions(withdrawalRequestID string, page operations.Page) (*operations.Operation[objects.ChannelClosingTransactionsConnection], error) {
	return operations.ConnectionQuery(objects.Fragments, channelClosingTransactionsConnection, withdrawalRequestID, page, objects.ChannelClosingTransactionsConnectionSchema)
}

func WithdrawalRequestChannelOpeningTransactions(withdrawalRequestID string, page operations.Page) (*operations.Operation[objects.ChannelOpeningTransactionsConnection], error) {
	return operations.ConnectionQuery(objects.Fragments, channelOpeningTransactionsConnection, withdrawalRequestID, page, objects.ChannelOpeningTransactionsConnectionSchema)
}

// ChannelClosingTransactionsPages returns a page factory for
// WithdrawalRequestChannelClosingTransactions, suitable for paging through
// the whole connection.
func ChannelClosingTransactionsPages(withdrawalRequestID string, pageSize int64) func(cursor *string) (*operations.Operation[types.Connection[objects.ChannelClosingTransaction]], error) {
	return func(cursor *string) (*operations.Operation[types.Connection[objects.ChannelClosingTransaction]], error) {
		return WithdrawalRequestChannelClosingTransactions(withdrawalRequestID, pageAfter(pageSize, cursor))
	}
}

func ChannelOpeningTransactionsPages(withdrawalRequestID string, pageSize int64) func(cursor *string) (*operations.Operation[types.Connection[objects.ChannelOpeningTransaction]], error) {
	return func(cursor *string) (*operations.Operation[types.Connection[objects.ChannelOpeningTransaction]], error) {
		return WithdrawalRequestChannelOpeningTransactions(withdrawalRequestID, pageAfter(pageSize, cursor))
	}
}

func pageAfter(pageSize int64, cursor *string) operations.Page {
	options := []operations.PageOption{operations.First(pageSize)}
	if cursor != nil {
		options = append(options, operations.After(*cursor))
	}
	return operations.NewPage(options...)
}
