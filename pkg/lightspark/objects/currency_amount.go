package objects

import (
	"fmt"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
)

// CurrencyAmount is an amount of money in a given unit, together with its
// value in the preferred currency of the account. All five fields always
// travel together.
type CurrencyAmount struct {
	OriginalValue                 int64
	OriginalUnit                  CurrencyUnit
	PreferredCurrencyUnit         CurrencyUnit
	PreferredCurrencyValueRounded int64
	PreferredCurrencyValueApprox  float64
}

func (CurrencyAmount) Typename() string {
	return "CurrencyAmount"
}

var millisatoshisPerUnit = map[CurrencyUnit]int64{
	CurrencyUnitBitcoin:      100_000_000_000,
	CurrencyUnitMillibitcoin: 100_000_000,
	CurrencyUnitMicrobitcoin: 100_000,
	CurrencyUnitSatoshi:      1_000,
	CurrencyUnitNanobitcoin:  100,
	CurrencyUnitMillisatoshi: 1,
}

// Millisatoshis converts the original value to millisatoshis. Only bitcoin
// denominated amounts can be converted.
func (ca CurrencyAmount) Millisatoshis() (int64, error) {
	factor, ok := millisatoshisPerUnit[ca.OriginalUnit]
	if !ok {
		return 0, fmt.Errorf("cannot convert %s to millisatoshis", ca.OriginalUnit)
	}

	return ca.OriginalValue * factor, nil
}

func (ca CurrencyAmount) MarshalJSON() ([]byte, error) {
	return CurrencyAmountSchema.Marshal(ca)
}

func (ca *CurrencyAmount) UnmarshalJSON(body []byte) (err error) {
	*ca, err = CurrencyAmountSchema.Unmarshal(body)
	return
}

var CurrencyAmountSchema = codec.NewSchema("CurrencyAmount", "currency_amount",
	codec.Required("original_value", codec.Int, func(ca *CurrencyAmount) *int64 { return &ca.OriginalValue }),
	codec.Required("original_unit", CurrencyUnits, func(ca *CurrencyAmount) *CurrencyUnit { return &ca.OriginalUnit }),
	codec.Required("preferred_currency_unit", CurrencyUnits, func(ca *CurrencyAmount) *CurrencyUnit { return &ca.PreferredCurrencyUnit }),
	codec.Required("preferred_currency_value_rounded", codec.Int, func(ca *CurrencyAmount) *int64 { return &ca.PreferredCurrencyValueRounded }),
	codec.Required("preferred_currency_value_approx", codec.Float, func(ca *CurrencyAmount) *float64 { return &ca.PreferredCurrencyValueApprox }),
)

const currencyAmountFragment = `
    __typename
    currency_amount_original_value: original_value
    currency_amount_original_unit: original_unit
    currency_amount_preferred_currency_unit: preferred_currency_unit
    currency_amount_preferred_currency_value_rounded: preferred_currency_value_rounded
    currency_amount_preferred_currency_value_approx: preferred_currency_value_approx`

// BlockchainBalance is the on chain balance of a node. Every member may be
// missing while the node is syncing.
type BlockchainBalance struct {
	TotalBalance       *CurrencyAmount
	ConfirmedBalance   *CurrencyAmount
	UnconfirmedBalance *CurrencyAmount
	LockedBalance      *CurrencyAmount
	RequiredReserve    *CurrencyAmount
	AvailableBalance   *CurrencyAmount
}

func (BlockchainBalance) Typename() string {
	return "BlockchainBalance"
}

func (bb BlockchainBalance) MarshalJSON() ([]byte, error) {
	return BlockchainBalanceSchema.Marshal(bb)
}

func (bb *BlockchainBalance) UnmarshalJSON(body []byte) (err error) {
	*bb, err = BlockchainBalanceSchema.Unmarshal(body)
	return
}

var BlockchainBalanceSchema = codec.NewSchema("BlockchainBalance", "blockchain_balance",
	codec.Optional("total_balance", CurrencyAmountSchema, func(bb *BlockchainBalance) **CurrencyAmount { return &bb.TotalBalance }),
	codec.Optional("confirmed_balance", CurrencyAmountSchema, func(bb *BlockchainBalance) **CurrencyAmount { return &bb.ConfirmedBalance }),
	codec.Optional("unconfirmed_balance", CurrencyAmountSchema, func(bb *BlockchainBalance) **CurrencyAmount { return &bb.UnconfirmedBalance }),
	codec.Optional("locked_balance", CurrencyAmountSchema, func(bb *BlockchainBalance) **CurrencyAmount { return &bb.LockedBalance }),
	codec.Optional("required_reserve", CurrencyAmountSchema, func(bb *BlockchainBalance) **CurrencyAmount { return &bb.RequiredReserve }),
	codec.Optional("available_balance", CurrencyAmountSchema, func(bb *BlockchainBalance) **CurrencyAmount { return &bb.AvailableBalance }),
)

const blockchainBalanceFragment = `
    __typename
    blockchain_balance_total_balance: total_balance {
        ...CurrencyAmountFragment
    }
    blockchain_balance_confirmed_balance: confirmed_balance {
        ...CurrencyAmountFragment
    }
    blockchain_balance_unconfirmed_balance: unconfirmed_balance {
        ...CurrencyAmountFragment
    }
    blockchain_balance_locked_balance: locked_balance {
        ...CurrencyAmountFragment
    }
    blockchain_balance_required_reserve: required_reserve {
        ...CurrencyAmountFragment
    }
    blockchain_balance_available_balance: available_balance {
        ...CurrencyAmountFragment
    }`

// Balances breaks down the funds of a node by what they can be used for
type Balances struct {
	OwnedBalance               CurrencyAmount
	AvailableToSendBalance     CurrencyAmount
	AvailableToWithdrawBalance CurrencyAmount
}

func (Balances) Typename() string {
	return "Balances"
}

func (b Balances) MarshalJSON() ([]byte, error) {
	return BalancesSchema.Marshal(b)
}

func (b *Balances) UnmarshalJSON(body []byte) (err error) {
	*b, err = BalancesSchema.Unmarshal(body)
	return
}

var BalancesSchema = codec.NewSchema("Balances", "balances",
	codec.Required("owned_balance", CurrencyAmountSchema, func(b *Balances) *CurrencyAmount { return &b.OwnedBalance }),
	codec.Required("available_to_send_balance", CurrencyAmountSchema, func(b *Balances) *CurrencyAmount { return &b.AvailableToSendBalance }),
	codec.Required("available_to_withdraw_balance", CurrencyAmountSchema, func(b *Balances) *CurrencyAmount { return &b.AvailableToWithdrawBalance }),
)

const balancesFragment = `
    __typename
    balances_owned_balance: owned_balance {
        ...CurrencyAmountFragment
    }
    balances_available_to_send_balance: available_to_send_balance {
        ...CurrencyAmountFragment
    }
    balances_available_to_withdraw_balance: available_to_withdraw_balance {
        ...CurrencyAmountFragment
    }`

// Secret is an encrypted value together with the cipher used to encrypt it
type Secret struct {
	EncryptedValue string
	Cipher         string
}

func (Secret) Typename() string {
	return "Secret"
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return SecretSchema.Marshal(s)
}

func (s *Secret) UnmarshalJSON(body []byte) (err error) {
	*s, err = SecretSchema.Unmarshal(body)
	return
}

var SecretSchema = codec.NewSchema("Secret", "secret",
	codec.Required("encrypted_value", codec.String, func(s *Secret) *string { return &s.EncryptedValue }),
	codec.Required("cipher", codec.String, func(s *Secret) *string { return &s.Cipher }),
)

const secretFragment = `
    __typename
    secret_encrypted_value: encrypted_value
    secret_cipher: cipher`
