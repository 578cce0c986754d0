package objects

import (
	"time"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
)

// InvoiceData is the decoded content of a BOLT #11 payment request
type InvoiceData struct {
	EncodedPaymentRequest string
	BitcoinNetwork        BitcoinNetwork
	PaymentHash           string
	Amount                CurrencyAmount
	CreatedAt             time.Time
	ExpiresAt             time.Time
	Memo                  *string
	// Destination is the node that will receive the payment
	Destination Node
}

func (InvoiceData) Typename() string {
	return "InvoiceData"
}

func (d InvoiceData) MarshalJSON() ([]byte, error) {
	return InvoiceDataSchema.Marshal(d)
}

func (d *InvoiceData) UnmarshalJSON(body []byte) (err error) {
	*d, err = InvoiceDataSchema.Unmarshal(body)
	return
}

var InvoiceDataSchema = codec.NewSchema("InvoiceData", "invoice_data",
	codec.Required("encoded_payment_request", codec.String, func(d *InvoiceData) *string { return &d.EncodedPaymentRequest }),
	codec.Required("bitcoin_network", BitcoinNetworks, func(d *InvoiceData) *BitcoinNetwork { return &d.BitcoinNetwork }),
	codec.Required("payment_hash", codec.String, func(d *InvoiceData) *string { return &d.PaymentHash }),
	codec.Required("amount", CurrencyAmountSchema, func(d *InvoiceData) *CurrencyAmount { return &d.Amount }),
	codec.Required("created_at", codec.Time, func(d *InvoiceData) *time.Time { return &d.CreatedAt }),
	codec.Required("expires_at", codec.Time, func(d *InvoiceData) *time.Time { return &d.ExpiresAt }),
	codec.Optional("memo", codec.String, func(d *InvoiceData) **string { return &d.Memo }),
	codec.Required[InvoiceData, Node]("destination", Nodes, func(d *InvoiceData) *Node { return &d.Destination }),
)

const invoiceDataFragment = `
    __typename
    invoice_data_encoded_payment_request: encoded_payment_request
    invoice_data_bitcoin_network: bitcoin_network
    invoice_data_payment_hash: payment_hash
    invoice_data_amount: amount {
        ...CurrencyAmountFragment
    }
    invoice_data_created_at: created_at
    invoice_data_expires_at: expires_at
    invoice_data_memo: memo
    invoice_data_destination: destination {
        ...NodeFragment
    }`

// Invoice is a BOLT #11 invoice created by a Lightspark node
type Invoice struct {
	Base
	Data   InvoiceData
	Status PaymentRequestStatus
	// AmountPaid is the total amount that has been paid to the invoice so far
	AmountPaid *CurrencyAmount
}

func (Invoice) Typename() string {
	return "Invoice"
}

func (i Invoice) MarshalJSON() ([]byte, error) {
	return InvoiceSchema.Marshal(i)
}

func (i *Invoice) UnmarshalJSON(body []byte) (err error) {
	*i, err = InvoiceSchema.Unmarshal(body)
	return
}

var InvoiceSchema = codec.NewSchema("Invoice", "invoice",
	fields(
		entityFields[Invoice](),
		[]codec.Field[Invoice]{
			codec.Required("data", InvoiceDataSchema, func(i *Invoice) *InvoiceData { return &i.Data }),
			codec.Required("status", PaymentRequestStatuses, func(i *Invoice) *PaymentRequestStatus { return &i.Status }),
			codec.Optional("amount_paid", CurrencyAmountSchema, func(i *Invoice) **CurrencyAmount { return &i.AmountPaid }),
		},
	)...,
)

const invoiceFragment = `
    __typename
    invoice_id: id
    invoice_created_at: created_at
    invoice_updated_at: updated_at
    invoice_data: data {
        ...InvoiceDataFragment
    }
    invoice_status: status
    invoice_amount_paid: amount_paid {
        ...CurrencyAmountFragment
    }`
