package objects

import (
	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

var PageInfoSchema = codec.NewSchema("PageInfo", "page_info",
	codec.Optional("has_next_page", codec.Bool, func(pi *types.PageInfo) **bool { return &pi.HasNextPage }),
	codec.Optional("has_previous_page", codec.Bool, func(pi *types.PageInfo) **bool { return &pi.HasPreviousPage }),
	codec.Optional("start_cursor", codec.String, func(pi *types.PageInfo) **string { return &pi.StartCursor }),
	codec.Optional("end_cursor", codec.String, func(pi *types.PageInfo) **string { return &pi.EndCursor }),
)

const pageInfoFragment = `
    __typename
    page_info_has_next_page: has_next_page
    page_info_has_previous_page: has_previous_page
    page_info_start_cursor: start_cursor
    page_info_end_cursor: end_cursor`

// ConnectionSchema returns the schema of a connection type whose pages hold
// entities decoded with item. Connections without paging support only have
// a count and the entities. An empty prefix gives the bare envelope with
// count, page_info and entities keys.
func ConnectionSchema[E any](typename, prefix string, item codec.Codec[E], paged bool) *codec.Schema[types.Connection[E]] {
	fs := []codec.Field[types.Connection[E]]{
		codec.Required("count", codec.Int, func(c *types.Connection[E]) *int64 { return &c.Count }),
	}

	if paged {
		fs = append(fs, codec.Optional("page_info", PageInfoSchema, func(c *types.Connection[E]) **types.PageInfo { return &c.PageInfo }))
	}

	fs = append(fs, codec.Required("entities", codec.List(item), func(c *types.Connection[E]) *[]E { return &c.Entities }))

	return codec.NewSchema(typename, prefix, fs...)
}

type WithdrawalsConnection = types.Connection[Withdrawal]
type ChannelClosingTransactionsConnection = types.Connection[ChannelClosingTransaction]
type ChannelOpeningTransactionsConnection = types.Connection[ChannelOpeningTransaction]

var WithdrawalsConnectionSchema = ConnectionSchema[Withdrawal](
	"WithdrawalRequestToWithdrawalsConnection",
	"withdrawal_request_to_withdrawals_connection",
	WithdrawalSchema, false,
)

var ChannelClosingTransactionsConnectionSchema = ConnectionSchema[ChannelClosingTransaction](
	"WithdrawalRequestToChannelClosingTransactionsConnection",
	"withdrawal_request_to_channel_closing_transactions_connection",
	ChannelClosingTransactionSchema, true,
)

var ChannelOpeningTransactionsConnectionSchema = ConnectionSchema[ChannelOpeningTransaction](
	"WithdrawalRequestToChannelOpeningTransactionsConnection",
	"withdrawal_request_to_channel_opening_transactions_connection",
	ChannelOpeningTransactionSchema, true,
)

func connectionSelection(prefix, entityFragment string, paged bool) string {
	s := `
    __typename
    ` + prefix + `_count: count`

	if paged {
		s += `
    ` + prefix + `_page_info: page_info {
        ...PageInfoFragment
    }`
	}

	return s + `
    ` + prefix + `_entities: entities {
        ...` + entityFragment + `
    }`
}
