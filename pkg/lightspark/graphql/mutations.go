package graphql

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/objects"
	"github.com/diwise/lightspark-go/pkg/lightspark/operations"
)

const createInvoiceMutation string = `
mutation CreateInvoice(
    $node_id: ID!
    $amount_msats: Long!
    $memo: String
    $invoice_type: InvoiceType
    $expiry_secs: Int
) {
    create_invoice(input: {
        node_id: $node_id
        amount_msats: $amount_msats
        memo: $memo
        invoice_type: $invoice_type
        expiry_secs: $expiry_secs
    }) {
        invoice {
            ...InvoiceFragment
        }
    }
}`

const payInvoiceMutation string = `
mutation PayInvoice(
    $node_id: ID!
    $encoded_invoice: String!
    $timeout_secs: Int!
    $maximum_fees_msats: Long!
    $amount_msats: Long
    $idempotency_key: String
) {
    pay_invoice(input: {
        node_id: $node_id
        encoded_invoice: $encoded_invoice
        timeout_secs: $timeout_secs
        maximum_fees_msats: $maximum_fees_msats
        amount_msats: $amount_msats
        idempotency_key: $idempotency_key
    }) {
        payment {
            ...OutgoingPaymentFragment
        }
    }
}`

const requestWithdrawalMutation string = `
mutation RequestWithdrawal(
    $node_id: ID!
    $bitcoin_address: String!
    $amount_sats: Long!
    $withdrawal_mode: WithdrawalMode!
    $idempotency_key: String
) {
    request_withdrawal(input: {
        node_id: $node_id
        bitcoin_address: $bitcoin_address
        amount_sats: $amount_sats
        withdrawal_mode: $withdrawal_mode
        idempotency_key: $idempotency_key
    }) {
        request {
            ...WithdrawalRequestFragment
        }
    }
}`

var createInvoice = operations.MustBuild(objects.Fragments, createInvoiceMutation, operations.EntityAt(objects.InvoiceSchema, "create_invoice", "invoice"))
var payInvoice = operations.MustBuild(objects.Fragments, payInvoiceMutation, operations.EntityAt(objects.OutgoingPaymentSchema, "pay_invoice", "payment"))
var requestWithdrawal = operations.MustBuild(objects.Fragments, requestWithdrawalMutation, operations.EntityAt(objects.WithdrawalRequestSchema, "request_withdrawal", "request"))

func CreateInvoice(input objects.CreateInvoiceInput) (*operations.Operation[objects.Invoice], error) {
	return bind(createInvoice, objects.CreateInvoiceInputSchema, input)
}

// PayInvoice pays a BOLT #11 invoice. An idempotency key is generated when
// the input has none, so that a retried request never pays twice.
func PayInvoice(input objects.PayInvoiceInput) (*operations.Operation[objects.OutgoingPayment], error) {
	if input.IdempotencyKey == nil {
		key := uuid.NewString()
		input.IdempotencyKey = &key
	}
	return bind(payInvoice, objects.PayInvoiceInputSchema, input)
}

func RequestWithdrawal(input objects.RequestWithdrawalInput) (*operations.Operation[objects.WithdrawalRequest], error) {
	if input.IdempotencyKey == nil {
		key := uuid.NewString()
		input.IdempotencyKey = &key
	}
	return bind(requestWithdrawal, objects.RequestWithdrawalInputSchema, input)
}

func bind[T, I any](op *operations.Operation[T], s *codec.Schema[I], input I) (*operations.Operation[T], error) {
	variables, err := s.ToJSON(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode variables for %s: %w", op.Name, err)
	}
	return op.WithVariables(variables), nil
}
