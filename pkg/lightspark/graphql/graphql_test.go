package graphql

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"

	"github.com/diwise/lightspark-go/pkg/lightspark/client"
	"github.com/diwise/lightspark-go/pkg/lightspark/objects"
	"github.com/diwise/lightspark-go/pkg/lightspark/operations"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

func TestGetInvoiceCarriesEveryFragmentOnce(t *testing.T) {
	is := is.New(t)

	op := GetInvoice("Invoice:1")

	is.Equal(op.Name, "GetInvoice")
	is.Equal(op.Type, operations.Query)
	is.Equal(op.Variables["id"], "Invoice:1")

	for _, name := range []string{
		objects.InvoiceFragment,
		objects.InvoiceDataFragment,
		objects.CurrencyAmountFragment,
		objects.NodeFragment,
		objects.GraphNodeFragment,
		objects.SecretFragment,
	} {
		is.Equal(strings.Count(op.Query, "fragment "+name+" on"), 1) // each fragment defined once
	}

	is.True(!strings.Contains(op.Query, "fragment "+objects.WithdrawalRequestFragment))
}

func TestGetInvoiceDoesNotShareVariables(t *testing.T) {
	is := is.New(t)

	a := GetInvoice("Invoice:a")
	b := GetInvoice("Invoice:b")

	is.Equal(a.Variables["id"], "Invoice:a")
	is.Equal(b.Variables["id"], "Invoice:b")
	is.Equal(a.Query, b.Query)
}

func TestPayInvoiceGeneratesIdempotencyKey(t *testing.T) {
	is := is.New(t)

	op, err := PayInvoice(objects.PayInvoiceInput{
		NodeID:           "LightsparkNodeWithOSK:1",
		EncodedInvoice:   "lnbc1u1pjq",
		TimeoutSecs:      60,
		MaximumFeesMsats: 1000,
	})
	is.NoErr(err)

	key, ok := op.Variables["idempotency_key"].(string)
	is.True(ok)

	_, err = uuid.Parse(key)
	is.NoErr(err) // generated keys are uuids

	_, hasTypename := op.Variables["__typename"]
	is.True(!hasTypename)

	_, hasAmount := op.Variables["amount_msats"]
	is.True(!hasAmount)
}

func TestPayInvoiceKeepsProvidedIdempotencyKey(t *testing.T) {
	is := is.New(t)

	key := "retry-1"

	op, err := PayInvoice(objects.PayInvoiceInput{
		NodeID:         "LightsparkNodeWithOSK:1",
		EncodedInvoice: "lnbc1u1pjq",
		IdempotencyKey: &key,
	})
	is.NoErr(err)
	is.Equal(op.Variables["idempotency_key"], "retry-1")
	is.Equal(op.Type, operations.Mutation)
}

func TestRequestWithdrawalVariables(t *testing.T) {
	is := is.New(t)

	op, err := RequestWithdrawal(objects.RequestWithdrawalInput{
		NodeID:         "LightsparkNodeWithOSK:1",
		BitcoinAddress: "bcrt1qxyz",
		AmountSats:     -1,
		WithdrawalMode: objects.WithdrawalModeWalletThenChannels,
	})
	is.NoErr(err)

	is.Equal(op.Variables["withdrawal_mode"], "WALLET_THEN_CHANNELS")
	is.True(op.Variables["idempotency_key"] != nil)
	is.True(strings.Contains(op.Query, "fragment "+objects.WithdrawalRequestFragment+" on WithdrawalRequest"))
}

func TestCreateInvoiceDecodesPayload(t *testing.T) {
	is := is.New(t)

	op, err := CreateInvoice(objects.CreateInvoiceInput{NodeID: "LightsparkNodeWithOSK:1", AmountMsats: 1000})
	is.NoErr(err)

	invoice, err := op.Decode(map[string]any{"create_invoice": map[string]any{"invoice": nil}}, nil)
	is.NoErr(err)
	is.True(invoice == nil)
}

func TestWithdrawalsOnlyAcceptsFirst(t *testing.T) {
	is := is.New(t)

	_, err := WithdrawalRequestWithdrawals("WithdrawalRequest:1", operations.NewPage(operations.First(10)))
	is.NoErr(err)

	_, err = WithdrawalRequestWithdrawals("WithdrawalRequest:1", operations.NewPage(operations.After("c")))
	is.True(err != nil)
}

func TestChannelClosingTransactionsPage(t *testing.T) {
	is := is.New(t)

	pages := ChannelClosingTransactionsPages("WithdrawalRequest:1", 25)

	op, err := pages(nil)
	is.NoErr(err)
	is.Equal(op.Variables["first"], int64(25))

	_, hasAfter := op.Variables["after"]
	is.True(!hasAfter)

	data := connectionData(is, "channel_closing_transactions", 50, 25, "cursor-25")

	page, err := op.Decode(data, nil)
	is.NoErr(err)
	is.Equal(page.Count, int64(50))
	is.Equal(len(page.Entities), 25)
	is.True(page.PageInfo.NextPage())
	is.Equal(*page.PageInfo.EndCursor, "cursor-25")
	is.Equal(page.Entities[24].ID, "ChannelClosingTransaction:24")

	cursor := "cursor-25"
	next, err := pages(&cursor)
	is.NoErr(err)
	is.Equal(next.Variables["after"], "cursor-25")
}

func connectionData(is *is.I, field string, count, size int, endCursor string) map[string]any {
	entities := []any{}

	for idx := range size {
		tx := objects.ChannelClosingTransaction{}
		tx.ID = fmt.Sprintf("ChannelClosingTransaction:%d", idx)
		tx.CreatedAt = time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
		tx.UpdatedAt = tx.CreatedAt
		tx.Status = objects.TransactionStatusSuccess
		tx.Amount = objects.CurrencyAmount{OriginalValue: 1, OriginalUnit: objects.CurrencyUnitSatoshi, PreferredCurrencyUnit: objects.CurrencyUnitSatoshi}
		tx.BlockHeight = int64(800000 + idx)
		tx.DestinationAddresses = []string{}

		obj, err := objects.ChannelClosingTransactionSchema.ToJSON(tx)
		is.NoErr(err)
		entities = append(entities, obj)
	}

	prefix := objects.ChannelClosingTransactionsConnectionSchema.Prefix()
	hasNext := count > size

	conn, err := objects.ChannelClosingTransactionsConnectionSchema.ToJSON(types.Connection[objects.ChannelClosingTransaction]{
		Count:    int64(count),
		PageInfo: &types.PageInfo{HasNextPage: &hasNext, EndCursor: &endCursor},
	})
	is.NoErr(err)
	conn[prefix+"_entities"] = entities

	return map[string]any{"entity": map[string]any{field: conn}}
}

type recordedRequest struct {
	name    string
	opType  string
	request operations.Request
}

type fakeClient struct {
	requests  []recordedRequest
	responses []map[string]any
}

func (f *fakeClient) ExecuteRaw(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	return f.ExecuteRequest(ctx, "", "", operations.Request{Query: query, Variables: variables})
}

func (f *fakeClient) ExecuteRequest(ctx context.Context, name, opType string, request operations.Request) (map[string]any, error) {
	f.requests = append(f.requests, recordedRequest{name: name, opType: opType, request: request})
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func TestOperationsRunAgainstAnyClient(t *testing.T) {
	is := is.New(t)

	fake := &fakeClient{responses: []map[string]any{{"entity": nil}}}

	invoice, err := client.Execute(context.Background(), fake, GetInvoice("Invoice:404"))
	is.NoErr(err)
	is.True(invoice == nil)

	is.Equal(len(fake.requests), 1)
	is.Equal(fake.requests[0].name, "GetInvoice")
	is.Equal(fake.requests[0].opType, operations.Query)
	is.Equal(fake.requests[0].request.Variables["id"], "Invoice:404")
}

func TestFetchAllChannelClosingTransactions(t *testing.T) {
	is := is.New(t)

	fake := &fakeClient{responses: []map[string]any{
		connectionData(is, "channel_closing_transactions", 50, 25, "cursor-25"),
		connectionData(is, "channel_closing_transactions", 25, 25, "cursor-50"), // has_next_page false
	}}

	seen := 0
	count, err := client.FetchAll[objects.ChannelClosingTransaction](context.Background(), fake, ChannelClosingTransactionsPages("WithdrawalRequest:1", 25), func(tx objects.ChannelClosingTransaction) {
		seen++
	})
	is.NoErr(err)
	is.Equal(count, 50)
	is.Equal(seen, 50)

	is.Equal(len(fake.requests), 2)
	_, hasAfter := fake.requests[0].request.Variables["after"]
	is.True(!hasAfter)
	is.Equal(fake.requests[1].request.Variables["after"], "cursor-25")
}
