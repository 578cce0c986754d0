package objects

import (
	"github.com/diwise/lightspark-go/pkg/lightspark/fragments"
)

const (
	CurrencyAmountFragment                       string = "CurrencyAmountFragment"
	BlockchainBalanceFragment                    string = "BlockchainBalanceFragment"
	BalancesFragment                             string = "BalancesFragment"
	SecretFragment                               string = "SecretFragment"
	PageInfoFragment                             string = "PageInfoFragment"
	GraphNodeFragment                            string = "GraphNodeFragment"
	LightsparkNodeWithOSKFragment                string = "LightsparkNodeWithOSKFragment"
	LightsparkNodeWithRemoteSigningFragment      string = "LightsparkNodeWithRemoteSigningFragment"
	NodeFragment                                 string = "NodeFragment"
	InvoiceDataFragment                          string = "InvoiceDataFragment"
	InvoiceFragment                              string = "InvoiceFragment"
	WithdrawalRequestFragment                    string = "WithdrawalRequestFragment"
	WithdrawalFragment                           string = "WithdrawalFragment"
	ChannelClosingTransactionFragment            string = "ChannelClosingTransactionFragment"
	ChannelOpeningTransactionFragment            string = "ChannelOpeningTransactionFragment"
	OutgoingPaymentFragment                      string = "OutgoingPaymentFragment"
	WithdrawalsConnectionFragment                string = "WithdrawalRequestToWithdrawalsConnectionFragment"
	ChannelClosingTransactionsConnectionFragment string = "WithdrawalRequestToChannelClosingTransactionsConnectionFragment"
	ChannelOpeningTransactionsConnectionFragment string = "WithdrawalRequestToChannelOpeningTransactionsConnectionFragment"
)

const nodeFragment = `
    __typename
    ... on GraphNode {
        ...GraphNodeFragment
    }
    ... on LightsparkNodeWithOSK {
        ...LightsparkNodeWithOSKFragment
    }
    ... on LightsparkNodeWithRemoteSigning {
        ...LightsparkNodeWithRemoteSigningFragment
    }`

// Definitions holds the canonical fragment of every type in this package
var Definitions = []fragments.Definition{
	{Name: CurrencyAmountFragment, On: "CurrencyAmount", Selection: currencyAmountFragment},
	{Name: BlockchainBalanceFragment, On: "BlockchainBalance", Selection: blockchainBalanceFragment, DependsOn: []string{CurrencyAmountFragment}},
	{Name: BalancesFragment, On: "Balances", Selection: balancesFragment, DependsOn: []string{CurrencyAmountFragment}},
	{Name: SecretFragment, On: "Secret", Selection: secretFragment},
	{Name: PageInfoFragment, On: "PageInfo", Selection: pageInfoFragment},
	{Name: GraphNodeFragment, On: "GraphNode", Selection: nodeSelection(GraphNodeSchema.Prefix())},
	{
		Name: LightsparkNodeWithOSKFragment,
		On:   "LightsparkNodeWithOSK",
		Selection: lightsparkNodeSelection(LightsparkNodeWithOSKSchema.Prefix()) + `
    lightspark_node_with_o_s_k_encrypted_signing_private_key: encrypted_signing_private_key {
        ...SecretFragment
    }`,
		DependsOn: []string{CurrencyAmountFragment, BlockchainBalanceFragment, BalancesFragment, SecretFragment},
	},
	{
		Name:      LightsparkNodeWithRemoteSigningFragment,
		On:        "LightsparkNodeWithRemoteSigning",
		Selection: lightsparkNodeSelection(LightsparkNodeWithRemoteSigningSchema.Prefix()),
		DependsOn: []string{CurrencyAmountFragment, BlockchainBalanceFragment, BalancesFragment},
	},
	{
		Name:      NodeFragment,
		On:        "Node",
		Selection: nodeFragment,
		DependsOn: []string{GraphNodeFragment, LightsparkNodeWithOSKFragment, LightsparkNodeWithRemoteSigningFragment},
	},
	{Name: InvoiceDataFragment, On: "InvoiceData", Selection: invoiceDataFragment, DependsOn: []string{CurrencyAmountFragment, NodeFragment}},
	{Name: InvoiceFragment, On: "Invoice", Selection: invoiceFragment, DependsOn: []string{InvoiceDataFragment, CurrencyAmountFragment}},
	{Name: WithdrawalRequestFragment, On: "WithdrawalRequest", Selection: withdrawalRequestFragment, DependsOn: []string{CurrencyAmountFragment}},
	{
		Name: WithdrawalFragment,
		On:   "Withdrawal",
		Selection: onChainSelection(WithdrawalSchema.Prefix()) + `
    withdrawal_origin: origin {
        id
    }`,
		DependsOn: []string{CurrencyAmountFragment},
	},
	{
		Name: ChannelClosingTransactionFragment,
		On:   "ChannelClosingTransaction",
		Selection: onChainSelection(ChannelClosingTransactionSchema.Prefix()) + `
    channel_closing_transaction_channel: channel {
        id
    }`,
		DependsOn: []string{CurrencyAmountFragment},
	},
	{
		Name: ChannelOpeningTransactionFragment,
		On:   "ChannelOpeningTransaction",
		Selection: onChainSelection(ChannelOpeningTransactionSchema.Prefix()) + `
    channel_opening_transaction_channel: channel {
        id
    }`,
		DependsOn: []string{CurrencyAmountFragment},
	},
	{Name: OutgoingPaymentFragment, On: "OutgoingPayment", Selection: outgoingPaymentFragment, DependsOn: []string{CurrencyAmountFragment}},
	{
		Name:      WithdrawalsConnectionFragment,
		On:        WithdrawalsConnectionSchema.Typename(),
		Selection: connectionSelection(WithdrawalsConnectionSchema.Prefix(), WithdrawalFragment, false),
		DependsOn: []string{WithdrawalFragment},
	},
	{
		Name:      ChannelClosingTransactionsConnectionFragment,
		On:        ChannelClosingTransactionsConnectionSchema.Typename(),
		Selection: connectionSelection(ChannelClosingTransactionsConnectionSchema.Prefix(), ChannelClosingTransactionFragment, true),
		DependsOn: []string{PageInfoFragment, ChannelClosingTransactionFragment},
	},
	{
		Name:      ChannelOpeningTransactionsConnectionFragment,
		On:        ChannelOpeningTransactionsConnectionSchema.Typename(),
		Selection: connectionSelection(ChannelOpeningTransactionsConnectionSchema.Prefix(), ChannelOpeningTransactionFragment, true),
		DependsOn: []string{PageInfoFragment, ChannelOpeningTransactionFragment},
	},
}

// Fragments is the registry every operation of the SDK is built from. It is
// filled once at package initialization and only read after that.
var Fragments = fragments.MustNewRegistry(Definitions...)
