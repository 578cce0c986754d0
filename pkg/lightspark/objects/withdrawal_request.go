package objects

import (
	"time"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

// WithdrawalRequest is a request to move funds from a node to a bitcoin
// address on chain
type WithdrawalRequest struct {
	Base
	// RequestedAmount is -1 when everything should be withdrawn
	RequestedAmount CurrencyAmount
	// Deprecated: use RequestedAmount
	Amount CurrencyAmount
	// EstimatedAmount may be set when everything is withdrawn
	EstimatedAmount *CurrencyAmount
	AmountWithdrawn *CurrencyAmount
	TotalFees       *CurrencyAmount
	BitcoinAddress  string
	// Deprecated: funds are always withdrawn from channels
	WithdrawalMode WithdrawalMode
	Status         WithdrawalRequestStatus
	CompletedAt    *time.Time
	// Deprecated: use the withdrawals connection
	Withdrawal     *types.Ref
	IdempotencyKey *string
	Initiator      RequestInitiator
}

func (WithdrawalRequest) Typename() string {
	return "WithdrawalRequest"
}

func (wr WithdrawalRequest) MarshalJSON() ([]byte, error) {
	return WithdrawalRequestSchema.Marshal(wr)
}

func (wr *WithdrawalRequest) UnmarshalJSON(body []byte) (err error) {
	*wr, err = WithdrawalRequestSchema.Unmarshal(body)
	return
}

var WithdrawalRequestSchema = codec.NewSchema("WithdrawalRequest", "withdrawal_request",
	fields(
		entityFields[WithdrawalRequest](),
		[]codec.Field[WithdrawalRequest]{
			codec.Required("requested_amount", CurrencyAmountSchema, func(wr *WithdrawalRequest) *CurrencyAmount { return &wr.RequestedAmount }),
			codec.Required("amount", CurrencyAmountSchema, func(wr *WithdrawalRequest) *CurrencyAmount { return &wr.Amount }),
			codec.Optional("estimated_amount", CurrencyAmountSchema, func(wr *WithdrawalRequest) **CurrencyAmount { return &wr.EstimatedAmount }),
			codec.Optional("amount_withdrawn", CurrencyAmountSchema, func(wr *WithdrawalRequest) **CurrencyAmount { return &wr.AmountWithdrawn }),
			codec.Optional("total_fees", CurrencyAmountSchema, func(wr *WithdrawalRequest) **CurrencyAmount { return &wr.TotalFees }),
			codec.Required("bitcoin_address", codec.String, func(wr *WithdrawalRequest) *string { return &wr.BitcoinAddress }),
			codec.Required("withdrawal_mode", WithdrawalModes, func(wr *WithdrawalRequest) *WithdrawalMode { return &wr.WithdrawalMode }),
			codec.Required("status", WithdrawalRequestStatuses, func(wr *WithdrawalRequest) *WithdrawalRequestStatus { return &wr.Status }),
			codec.Optional("completed_at", codec.Time, func(wr *WithdrawalRequest) **time.Time { return &wr.CompletedAt }),
			codec.Optional("withdrawal", codec.Ref, func(wr *WithdrawalRequest) **types.Ref { return &wr.Withdrawal }),
			codec.Optional("idempotency_key", codec.String, func(wr *WithdrawalRequest) **string { return &wr.IdempotencyKey }),
			codec.Required("initiator", RequestInitiators, func(wr *WithdrawalRequest) *RequestInitiator { return &wr.Initiator }),
		},
	)...,
)

const withdrawalRequestFragment = `
    __typename
    withdrawal_request_id: id
    withdrawal_request_created_at: created_at
    withdrawal_request_updated_at: updated_at
    withdrawal_request_requested_amount: requested_amount {
        ...CurrencyAmountFragment
    }
    withdrawal_request_amount: amount {
        ...CurrencyAmountFragment
    }
    withdrawal_request_estimated_amount: estimated_amount {
        ...CurrencyAmountFragment
    }
    withdrawal_request_amount_withdrawn: amount_withdrawn {
        ...CurrencyAmountFragment
    }
    withdrawal_request_total_fees: total_fees {
        ...CurrencyAmountFragment
    }
    withdrawal_request_bitcoin_address: bitcoin_address
    withdrawal_request_withdrawal_mode: withdrawal_mode
    withdrawal_request_status: status
    withdrawal_request_completed_at: completed_at
    withdrawal_request_withdrawal: withdrawal {
        id
    }
    withdrawal_request_idempotency_key: idempotency_key
    withdrawal_request_initiator: initiator`
