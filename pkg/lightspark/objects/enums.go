package objects

import (
	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
)

// Every enum has a FutureValue member. It is what a tag unknown to this
// version of the SDK decodes to.

type PaymentRequestStatus string

const (
	PaymentRequestStatusFutureValue PaymentRequestStatus = PaymentRequestStatus(codec.FutureValue)
	PaymentRequestStatusOpen        PaymentRequestStatus = "OPEN"
	PaymentRequestStatusClosed      PaymentRequestStatus = "CLOSED"
)

var PaymentRequestStatuses = codec.Enum("PaymentRequestStatus",
	PaymentRequestStatusOpen,
	PaymentRequestStatusClosed,
)

type BitcoinNetwork string

const (
	BitcoinNetworkFutureValue BitcoinNetwork = BitcoinNetwork(codec.FutureValue)
	BitcoinNetworkMainnet     BitcoinNetwork = "MAINNET"
	BitcoinNetworkRegtest     BitcoinNetwork = "REGTEST"
	BitcoinNetworkSignet      BitcoinNetwork = "SIGNET"
	BitcoinNetworkTestnet     BitcoinNetwork = "TESTNET"
)

var BitcoinNetworks = codec.Enum("BitcoinNetwork",
	BitcoinNetworkMainnet,
	BitcoinNetworkRegtest,
	BitcoinNetworkSignet,
	BitcoinNetworkTestnet,
)

type CurrencyUnit string

const (
	CurrencyUnitFutureValue  CurrencyUnit = CurrencyUnit(codec.FutureValue)
	CurrencyUnitBitcoin      CurrencyUnit = "BITCOIN"
	CurrencyUnitSatoshi      CurrencyUnit = "SATOSHI"
	CurrencyUnitMillisatoshi CurrencyUnit = "MILLISATOSHI"
	CurrencyUnitUSD          CurrencyUnit = "USD"
	CurrencyUnitMXN          CurrencyUnit = "MXN"
	CurrencyUnitPHP          CurrencyUnit = "PHP"
	CurrencyUnitEUR          CurrencyUnit = "EUR"
	CurrencyUnitGBP          CurrencyUnit = "GBP"
	CurrencyUnitINR          CurrencyUnit = "INR"
	CurrencyUnitNanobitcoin  CurrencyUnit = "NANOBITCOIN"
	CurrencyUnitMicrobitcoin CurrencyUnit = "MICROBITCOIN"
	CurrencyUnitMillibitcoin CurrencyUnit = "MILLIBITCOIN"
)

var CurrencyUnits = codec.Enum("CurrencyUnit",
	CurrencyUnitBitcoin,
	CurrencyUnitSatoshi,
	CurrencyUnitMillisatoshi,
	CurrencyUnitUSD,
	CurrencyUnitMXN,
	CurrencyUnitPHP,
	CurrencyUnitEUR,
	CurrencyUnitGBP,
	CurrencyUnitINR,
	CurrencyUnitNanobitcoin,
	CurrencyUnitMicrobitcoin,
	CurrencyUnitMillibitcoin,
)

type WithdrawalMode string

const (
	WithdrawalModeFutureValue        WithdrawalMode = WithdrawalMode(codec.FutureValue)
	WithdrawalModeWalletOnly         WithdrawalMode = "WALLET_ONLY"
	WithdrawalModeWalletThenChannels WithdrawalMode = "WALLET_THEN_CHANNELS"
)

var WithdrawalModes = codec.Enum("WithdrawalMode",
	WithdrawalModeWalletOnly,
	WithdrawalModeWalletThenChannels,
)

type WithdrawalRequestStatus string

const (
	WithdrawalRequestStatusFutureValue         WithdrawalRequestStatus = WithdrawalRequestStatus(codec.FutureValue)
	WithdrawalRequestStatusCreating            WithdrawalRequestStatus = "CREATING"
	WithdrawalRequestStatusCreated             WithdrawalRequestStatus = "CREATED"
	WithdrawalRequestStatusFailed              WithdrawalRequestStatus = "FAILED"
	WithdrawalRequestStatusInProgress          WithdrawalRequestStatus = "IN_PROGRESS"
	WithdrawalRequestStatusSuccessful          WithdrawalRequestStatus = "SUCCESSFUL"
	WithdrawalRequestStatusPartiallySuccessful WithdrawalRequestStatus = "PARTIALLY_SUCCESSFUL"
)

var WithdrawalRequestStatuses = codec.Enum("WithdrawalRequestStatus",
	WithdrawalRequestStatusCreating,
	WithdrawalRequestStatusCreated,
	WithdrawalRequestStatusFailed,
	WithdrawalRequestStatusInProgress,
	WithdrawalRequestStatusSuccessful,
	WithdrawalRequestStatusPartiallySuccessful,
)

type RequestInitiator string

const (
	RequestInitiatorFutureValue RequestInitiator = RequestInitiator(codec.FutureValue)
	RequestInitiatorCustomer    RequestInitiator = "CUSTOMER"
	RequestInitiatorLightspark  RequestInitiator = "LIGHTSPARK"
)

var RequestInitiators = codec.Enum("RequestInitiator",
	RequestInitiatorCustomer,
	RequestInitiatorLightspark,
)

type TransactionStatus string

const (
	TransactionStatusFutureValue TransactionStatus = TransactionStatus(codec.FutureValue)
	TransactionStatusSuccess     TransactionStatus = "SUCCESS"
	TransactionStatusFailed      TransactionStatus = "FAILED"
	TransactionStatusPending     TransactionStatus = "PENDING"
	TransactionStatusNotStarted  TransactionStatus = "NOT_STARTED"
	TransactionStatusCancelled   TransactionStatus = "CANCELLED"
)

var TransactionStatuses = codec.Enum("TransactionStatus",
	TransactionStatusSuccess,
	TransactionStatusFailed,
	TransactionStatusPending,
	TransactionStatusNotStarted,
	TransactionStatusCancelled,
)

type LightsparkNodeStatus string

const (
	LightsparkNodeStatusFutureValue    LightsparkNodeStatus = LightsparkNodeStatus(codec.FutureValue)
	LightsparkNodeStatusCreated        LightsparkNodeStatus = "CREATED"
	LightsparkNodeStatusDeployed       LightsparkNodeStatus = "DEPLOYED"
	LightsparkNodeStatusStarted        LightsparkNodeStatus = "STARTED"
	LightsparkNodeStatusSyncing        LightsparkNodeStatus = "SYNCING"
	LightsparkNodeStatusReady          LightsparkNodeStatus = "READY"
	LightsparkNodeStatusStopped        LightsparkNodeStatus = "STOPPED"
	LightsparkNodeStatusTerminated     LightsparkNodeStatus = "TERMINATED"
	LightsparkNodeStatusTerminating    LightsparkNodeStatus = "TERMINATING"
	LightsparkNodeStatusWalletLocked   LightsparkNodeStatus = "WALLET_LOCKED"
	LightsparkNodeStatusFailedToDeploy LightsparkNodeStatus = "FAILED_TO_DEPLOY"
)

var LightsparkNodeStatuses = codec.Enum("LightsparkNodeStatus",
	LightsparkNodeStatusCreated,
	LightsparkNodeStatusDeployed,
	LightsparkNodeStatusStarted,
	LightsparkNodeStatusSyncing,
	LightsparkNodeStatusReady,
	LightsparkNodeStatusStopped,
	LightsparkNodeStatusTerminated,
	LightsparkNodeStatusTerminating,
	LightsparkNodeStatusWalletLocked,
	LightsparkNodeStatusFailedToDeploy,
)

type InvoiceType string

const (
	InvoiceTypeFutureValue InvoiceType = InvoiceType(codec.FutureValue)
	InvoiceTypeStandard    InvoiceType = "STANDARD"
	InvoiceTypeAMP         InvoiceType = "AMP"
)

var InvoiceTypes = codec.Enum("InvoiceType",
	InvoiceTypeStandard,
	InvoiceTypeAMP,
)

type PaymentFailureReason string

const (
	PaymentFailureReasonFutureValue               PaymentFailureReason = PaymentFailureReason(codec.FutureValue)
	PaymentFailureReasonNone                      PaymentFailureReason = "NONE"
	PaymentFailureReasonTimeout                   PaymentFailureReason = "TIMEOUT"
	PaymentFailureReasonNoRoute                   PaymentFailureReason = "NO_ROUTE"
	PaymentFailureReasonError                     PaymentFailureReason = "ERROR"
	PaymentFailureReasonIncorrectPaymentDetails   PaymentFailureReason = "INCORRECT_PAYMENT_DETAILS"
	PaymentFailureReasonInsufficientBalance       PaymentFailureReason = "INSUFFICIENT_BALANCE"
	PaymentFailureReasonInvoiceAlreadyPaid        PaymentFailureReason = "INVOICE_ALREADY_PAID"
	PaymentFailureReasonSelfPayment               PaymentFailureReason = "SELF_PAYMENT"
	PaymentFailureReasonInvoiceExpired            PaymentFailureReason = "INVOICE_EXPIRED"
	PaymentFailureReasonRiskScreeningFailed       PaymentFailureReason = "RISK_SCREENING_FAILED"
	PaymentFailureReasonInsufficientBalanceOnNode PaymentFailureReason = "INSUFFICIENT_BALANCE_ON_SINGLE_PATH_INVOICE"
	PaymentFailureReasonInvoiceCancelled          PaymentFailureReason = "INVOICE_CANCELLED"
	PaymentFailureReasonInvoiceAlreadyPaidByPeer  PaymentFailureReason = "INVOICE_ALREADY_PAID_BY_PEER"
)

var PaymentFailureReasons = codec.Enum("PaymentFailureReason",
	PaymentFailureReasonNone,
	PaymentFailureReasonTimeout,
	PaymentFailureReasonNoRoute,
	PaymentFailureReasonError,
	PaymentFailureReasonIncorrectPaymentDetails,
	PaymentFailureReasonInsufficientBalance,
	PaymentFailureReasonInvoiceAlreadyPaid,
	PaymentFailureReasonSelfPayment,
	PaymentFailureReasonInvoiceExpired,
	PaymentFailureReasonRiskScreeningFailed,
	PaymentFailureReasonInsufficientBalanceOnNode,
	PaymentFailureReasonInvoiceCancelled,
	PaymentFailureReasonInvoiceAlreadyPaidByPeer,
)
