package objects

import (
	"time"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

// OnChainTransaction holds the fields shared by transactions that are
// settled on the bitcoin blockchain
type OnChainTransaction struct {
	Base
	Status     TransactionStatus
	ResolvedAt *time.Time
	Amount     CurrencyAmount
	// TransactionHash is missing until the transaction has been broadcast
	TransactionHash      *string
	Fees                 *CurrencyAmount
	BlockHash            *string
	BlockHeight          int64
	DestinationAddresses []string
	NumConfirmations     *int64
}

func (tx *OnChainTransaction) onChain() *OnChainTransaction {
	return tx
}

type onChainTransaction interface {
	entity
	onChain() *OnChainTransaction
}

func onChainFields[T any, PT interface {
	*T
	onChainTransaction
}]() []codec.Field[T] {
	tx := func(t *T) *OnChainTransaction { return PT(t).onChain() }

	return fields(
		entityFields[T, PT](),
		[]codec.Field[T]{
			codec.Required("status", TransactionStatuses, func(t *T) *TransactionStatus { return &tx(t).Status }),
			codec.Optional("resolved_at", codec.Time, func(t *T) **time.Time { return &tx(t).ResolvedAt }),
			codec.Required("amount", CurrencyAmountSchema, func(t *T) *CurrencyAmount { return &tx(t).Amount }),
			codec.Optional("transaction_hash", codec.String, func(t *T) **string { return &tx(t).TransactionHash }),
			codec.Optional("fees", CurrencyAmountSchema, func(t *T) **CurrencyAmount { return &tx(t).Fees }),
			codec.Optional("block_hash", codec.String, func(t *T) **string { return &tx(t).BlockHash }),
			codec.Required("block_height", codec.Int, func(t *T) *int64 { return &tx(t).BlockHeight }),
			codec.Required("destination_addresses", codec.StringList, func(t *T) *[]string { return &tx(t).DestinationAddresses }),
			codec.Optional("num_confirmations", codec.Int, func(t *T) **int64 { return &tx(t).NumConfirmations }),
		},
	)
}

func onChainSelection(prefix string) string {
	return `
    __typename
    ` + prefix + `_id: id
    ` + prefix + `_created_at: created_at
    ` + prefix + `_updated_at: updated_at
    ` + prefix + `_status: status
    ` + prefix + `_resolved_at: resolved_at
    ` + prefix + `_amount: amount {
        ...CurrencyAmountFragment
    }
    ` + prefix + `_transaction_hash: transaction_hash
    ` + prefix + `_fees: fees {
        ...CurrencyAmountFragment
    }
    ` + prefix + `_block_hash: block_hash
    ` + prefix + `_block_height: block_height
    ` + prefix + `_destination_addresses: destination_addresses
    ` + prefix + `_num_confirmations: num_confirmations`
}

// Withdrawal moves funds from a node wallet to a bitcoin address
type Withdrawal struct {
	OnChainTransaction
	// Origin is the node the funds were withdrawn from
	Origin types.Ref
}

func (Withdrawal) Typename() string {
	return "Withdrawal"
}

func (w Withdrawal) MarshalJSON() ([]byte, error) {
	return WithdrawalSchema.Marshal(w)
}

func (w *Withdrawal) UnmarshalJSON(body []byte) (err error) {
	*w, err = WithdrawalSchema.Unmarshal(body)
	return
}

var WithdrawalSchema = codec.NewSchema("Withdrawal", "withdrawal",
	fields(
		onChainFields[Withdrawal](),
		[]codec.Field[Withdrawal]{
			codec.Required("origin", codec.Ref, func(w *Withdrawal) *types.Ref { return &w.Origin }),
		},
	)...,
)

// ChannelClosingTransaction is the on chain transaction closing a channel
type ChannelClosingTransaction struct {
	OnChainTransaction
	Channel *types.Ref
}

func (ChannelClosingTransaction) Typename() string {
	return "ChannelClosingTransaction"
}

func (tx ChannelClosingTransaction) MarshalJSON() ([]byte, error) {
	return ChannelClosingTransactionSchema.Marshal(tx)
}

func (tx *ChannelClosingTransaction) UnmarshalJSON(body []byte) (err error) {
	*tx, err = ChannelClosingTransactionSchema.Unmarshal(body)
	return
}

var ChannelClosingTransactionSchema = codec.NewSchema("ChannelClosingTransaction", "channel_closing_transaction",
	fields(
		onChainFields[ChannelClosingTransaction](),
		[]codec.Field[ChannelClosingTransaction]{
			codec.Optional("channel", codec.Ref, func(tx *ChannelClosingTransaction) **types.Ref { return &tx.Channel }),
		},
	)...,
)

// ChannelOpeningTransaction is the on chain transaction funding a channel
type ChannelOpeningTransaction struct {
	OnChainTransaction
	Channel *types.Ref
}

func (ChannelOpeningTransaction) Typename() string {
	return "ChannelOpeningTransaction"
}

func (tx ChannelOpeningTransaction) MarshalJSON() ([]byte, error) {
	return ChannelOpeningTransactionSchema.Marshal(tx)
}

func (tx *ChannelOpeningTransaction) UnmarshalJSON(body []byte) (err error) {
	*tx, err = ChannelOpeningTransactionSchema.Unmarshal(body)
	return
}

var ChannelOpeningTransactionSchema = codec.NewSchema("ChannelOpeningTransaction", "channel_opening_transaction",
	fields(
		onChainFields[ChannelOpeningTransaction](),
		[]codec.Field[ChannelOpeningTransaction]{
			codec.Optional("channel", codec.Ref, func(tx *ChannelOpeningTransaction) **types.Ref { return &tx.Channel }),
		},
	)...,
)

// OutgoingPayment is a lightning payment sent from a Lightspark node
type OutgoingPayment struct {
	Base
	Status          TransactionStatus
	ResolvedAt      *time.Time
	Amount          CurrencyAmount
	TransactionHash *string
	Origin          types.Ref
	Destination     *types.Ref
	Fees            *CurrencyAmount
	FailureReason   *PaymentFailureReason
	// PaymentPreimage proves the payment once it has succeeded
	PaymentPreimage *string
	IdempotencyKey  *string
}

func (OutgoingPayment) Typename() string {
	return "OutgoingPayment"
}

func (p OutgoingPayment) MarshalJSON() ([]byte, error) {
	return OutgoingPaymentSchema.Marshal(p)
}

func (p *OutgoingPayment) UnmarshalJSON(body []byte) (err error) {
	*p, err = OutgoingPaymentSchema.Unmarshal(body)
	return
}

var OutgoingPaymentSchema = codec.NewSchema("OutgoingPayment", "outgoing_payment",
	fields(
		entityFields[OutgoingPayment](),
		[]codec.Field[OutgoingPayment]{
			codec.Required("status", TransactionStatuses, func(p *OutgoingPayment) *TransactionStatus { return &p.Status }),
			codec.Optional("resolved_at", codec.Time, func(p *OutgoingPayment) **time.Time { return &p.ResolvedAt }),
			codec.Required("amount", CurrencyAmountSchema, func(p *OutgoingPayment) *CurrencyAmount { return &p.Amount }),
			codec.Optional("transaction_hash", codec.String, func(p *OutgoingPayment) **string { return &p.TransactionHash }),
			codec.Required("origin", codec.Ref, func(p *OutgoingPayment) *types.Ref { return &p.Origin }),
			codec.Optional("destination", codec.Ref, func(p *OutgoingPayment) **types.Ref { return &p.Destination }),
			codec.Optional("fees", CurrencyAmountSchema, func(p *OutgoingPayment) **CurrencyAmount { return &p.Fees }),
			codec.Optional("failure_reason", PaymentFailureReasons, func(p *OutgoingPayment) **PaymentFailureReason { return &p.FailureReason }),
			codec.Optional("payment_preimage", codec.String, func(p *OutgoingPayment) **string { return &p.PaymentPreimage }),
			codec.Optional("idempotency_key", codec.String, func(p *OutgoingPayment) **string { return &p.IdempotencyKey }),
		},
	)...,
)

const outgoingPaymentFragment = `
    __typename
    outgoing_payment_id: id
    outgoing_payment_created_at: created_at
    outgoing_payment_updated_at: updated_at
    outgoing_payment_status: status
    outgoing_payment_resolved_at: resolved_at
    outgoing_payment_amount: amount {
        ...CurrencyAmountFragment
    }
    outgoing_payment_transaction_hash: transaction_hash
    outgoing_payment_origin: origin {
        id
    }
    outgoing_payment_destination: destination {
        id
    }
    outgoing_payment_fees: fees {
        ...CurrencyAmountFragment
    }
    outgoing_payment_failure_reason: failure_reason
    outgoing_payment_payment_preimage: payment_preimage
    outgoing_payment_idempotency_key: idempotency_key`
