package objects

import (
	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
)

// Inputs are sent as operation variables. Their keys are the plain argument
// names and they carry no __typename.

type CreateInvoiceInput struct {
	NodeID      string
	AmountMsats int64
	Memo        *string
	InvoiceType *InvoiceType
	// ExpirySecs defaults to one day on the server
	ExpirySecs *int64
}

var CreateInvoiceInputSchema = codec.NewSchema("", "",
	codec.Required("node_id", codec.String, func(in *CreateInvoiceInput) *string { return &in.NodeID }),
	codec.Required("amount_msats", codec.Int, func(in *CreateInvoiceInput) *int64 { return &in.AmountMsats }),
	codec.Optional("memo", codec.String, func(in *CreateInvoiceInput) **string { return &in.Memo }),
	codec.Optional("invoice_type", InvoiceTypes, func(in *CreateInvoiceInput) **InvoiceType { return &in.InvoiceType }),
	codec.Optional("expiry_secs", codec.Int, func(in *CreateInvoiceInput) **int64 { return &in.ExpirySecs }),
)

type PayInvoiceInput struct {
	NodeID           string
	EncodedInvoice   string
	TimeoutSecs      int64
	MaximumFeesMsats int64
	// AmountMsats is only allowed for zero amount invoices
	AmountMsats    *int64
	IdempotencyKey *string
}

var PayInvoiceInputSchema = codec.NewSchema("", "",
	codec.Required("node_id", codec.String, func(in *PayInvoiceInput) *string { return &in.NodeID }),
	codec.Required("encoded_invoice", codec.String, func(in *PayInvoiceInput) *string { return &in.EncodedInvoice }),
	codec.Required("timeout_secs", codec.Int, func(in *PayInvoiceInput) *int64 { return &in.TimeoutSecs }),
	codec.Required("maximum_fees_msats", codec.Int, func(in *PayInvoiceInput) *int64 { return &in.MaximumFeesMsats }),
	codec.Optional("amount_msats", codec.Int, func(in *PayInvoiceInput) **int64 { return &in.AmountMsats }),
	codec.Optional("idempotency_key", codec.String, func(in *PayInvoiceInput) **string { return &in.IdempotencyKey }),
)

type RequestWithdrawalInput struct {
	NodeID         string
	BitcoinAddress string
	// AmountSats is -1 to withdraw everything
	AmountSats     int64
	WithdrawalMode WithdrawalMode
	IdempotencyKey *string
}

var RequestWithdrawalInputSchema = codec.NewSchema("", "",
	codec.Required("node_id", codec.String, func(in *RequestWithdrawalInput) *string { return &in.NodeID }),
	codec.Required("bitcoin_address", codec.String, func(in *RequestWithdrawalInput) *string { return &in.BitcoinAddress }),
	codec.Required("amount_sats", codec.Int, func(in *RequestWithdrawalInput) *int64 { return &in.AmountSats }),
	codec.Required("withdrawal_mode", WithdrawalModes, func(in *RequestWithdrawalInput) *WithdrawalMode { return &in.WithdrawalMode }),
	codec.Optional("idempotency_key", codec.String, func(in *RequestWithdrawalInput) **string { return &in.IdempotencyKey }),
)
