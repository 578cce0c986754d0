package objects

import (
	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

// Node is a lightning node. It is either a node of the public lightning
// graph or one of the kinds of node managed by Lightspark.
type Node interface {
	types.Entity
	Info() NodeInfo
}

// NodeInfo holds the fields shared by every kind of Node
type NodeInfo struct {
	Base
	Alias          *string
	BitcoinNetwork BitcoinNetwork
	Color          *string
	// Conductivity is a score from 0 to 10 of how well connected the node is
	Conductivity *int64
	DisplayName  string
	PublicKey    *string
}

func (ni NodeInfo) Info() NodeInfo {
	return ni
}

func (ni *NodeInfo) nodeInfo() *NodeInfo {
	return ni
}

type node interface {
	entity
	nodeInfo() *NodeInfo
}

func nodeFields[T any, PT interface {
	*T
	node
}]() []codec.Field[T] {
	return fields(
		entityFields[T, PT](),
		[]codec.Field[T]{
			codec.Optional("alias", codec.String, func(t *T) **string { return &PT(t).nodeInfo().Alias }),
			codec.Required("bitcoin_network", BitcoinNetworks, func(t *T) *BitcoinNetwork { return &PT(t).nodeInfo().BitcoinNetwork }),
			codec.Optional("color", codec.String, func(t *T) **string { return &PT(t).nodeInfo().Color }),
			codec.Optional("conductivity", codec.Int, func(t *T) **int64 { return &PT(t).nodeInfo().Conductivity }),
			codec.Required("display_name", codec.String, func(t *T) *string { return &PT(t).nodeInfo().DisplayName }),
			codec.Optional("public_key", codec.String, func(t *T) **string { return &PT(t).nodeInfo().PublicKey }),
		},
	)
}

// nodeSelection renders the aliased selection of the NodeInfo fields for
// the given wire prefix
func nodeSelection(prefix string) string {
	return `
    __typename
    ` + prefix + `_id: id
    ` + prefix + `_created_at: created_at
    ` + prefix + `_updated_at: updated_at
    ` + prefix + `_alias: alias
    ` + prefix + `_bitcoin_network: bitcoin_network
    ` + prefix + `_color: color
    ` + prefix + `_conductivity: conductivity
    ` + prefix + `_display_name: display_name
    ` + prefix + `_public_key: public_key`
}

// GraphNode is a node of the public lightning network graph
type GraphNode struct {
	NodeInfo
}

func (GraphNode) Typename() string {
	return "GraphNode"
}

func (gn GraphNode) MarshalJSON() ([]byte, error) {
	return GraphNodeSchema.Marshal(gn)
}

func (gn *GraphNode) UnmarshalJSON(body []byte) (err error) {
	*gn, err = GraphNodeSchema.Unmarshal(body)
	return
}

var GraphNodeSchema = codec.NewSchema("GraphNode", "graph_node", nodeFields[GraphNode]()...)

// LightsparkNode holds the fields shared by the nodes managed by Lightspark
type LightsparkNode struct {
	NodeInfo
	// Owner is the account that owns the node
	Owner                types.Ref
	Status               *LightsparkNodeStatus
	TotalBalance         *CurrencyAmount
	TotalLocalBalance    *CurrencyAmount
	LocalBalance         *CurrencyAmount
	RemoteBalance        *CurrencyAmount
	BlockchainBalance    *BlockchainBalance
	UmaPrescreeningUtxos []string
	Balances             *Balances
}

func (ln *LightsparkNode) lightsparkNode() *LightsparkNode {
	return ln
}

type managedNode interface {
	node
	lightsparkNode() *LightsparkNode
}

func lightsparkNodeFields[T any, PT interface {
	*T
	managedNode
}]() []codec.Field[T] {
	ln := func(t *T) *LightsparkNode { return PT(t).lightsparkNode() }

	return fields(
		nodeFields[T, PT](),
		[]codec.Field[T]{
			codec.Required("owner", codec.Ref, func(t *T) *types.Ref { return &ln(t).Owner }),
			codec.Optional("status", LightsparkNodeStatuses, func(t *T) **LightsparkNodeStatus { return &ln(t).Status }),
			codec.Optional("total_balance", CurrencyAmountSchema, func(t *T) **CurrencyAmount { return &ln(t).TotalBalance }),
			codec.Optional("total_local_balance", CurrencyAmountSchema, func(t *T) **CurrencyAmount { return &ln(t).TotalLocalBalance }),
			codec.Optional("local_balance", CurrencyAmountSchema, func(t *T) **CurrencyAmount { return &ln(t).LocalBalance }),
			codec.Optional("remote_balance", CurrencyAmountSchema, func(t *T) **CurrencyAmount { return &ln(t).RemoteBalance }),
			codec.Optional("blockchain_balance", BlockchainBalanceSchema, func(t *T) **BlockchainBalance { return &ln(t).BlockchainBalance }),
			codec.Required("uma_prescreening_utxos", codec.StringList, func(t *T) *[]string { return &ln(t).UmaPrescreeningUtxos }),
			codec.Optional("balances", BalancesSchema, func(t *T) **Balances { return &ln(t).Balances }),
		},
	)
}

func lightsparkNodeSelection(prefix string) string {
	return nodeSelection(prefix) + `
    ` + prefix + `_owner: owner {
        id
    }
    ` + prefix + `_status: status
    ` + prefix + `_total_balance: total_balance {
        ...CurrencyAmountFragment
    }
    ` + prefix + `_total_local_balance: total_local_balance {
        ...CurrencyAmountFragment
    }
    ` + prefix + `_local_balance: local_balance {
        ...CurrencyAmountFragment
    }
    ` + prefix + `_remote_balance: remote_balance {
        ...CurrencyAmountFragment
    }
    ` + prefix + `_blockchain_balance: blockchain_balance {
        ...BlockchainBalanceFragment
    }
    ` + prefix + `_uma_prescreening_utxos: uma_prescreening_utxos
    ` + prefix + `_balances: balances {
        ...BalancesFragment
    }`
}

// LightsparkNodeWithOSK is a node whose signing key is held encrypted by
// Lightspark and unlocked with the node password
type LightsparkNodeWithOSK struct {
	LightsparkNode
	EncryptedSigningPrivateKey *Secret
}

func (LightsparkNodeWithOSK) Typename() string {
	return "LightsparkNodeWithOSK"
}

func (n LightsparkNodeWithOSK) MarshalJSON() ([]byte, error) {
	return LightsparkNodeWithOSKSchema.Marshal(n)
}

func (n *LightsparkNodeWithOSK) UnmarshalJSON(body []byte) (err error) {
	*n, err = LightsparkNodeWithOSKSchema.Unmarshal(body)
	return
}

var LightsparkNodeWithOSKSchema = codec.NewSchema("LightsparkNodeWithOSK", "lightspark_node_with_o_s_k",
	fields(
		lightsparkNodeFields[LightsparkNodeWithOSK](),
		[]codec.Field[LightsparkNodeWithOSK]{
			codec.Optional("encrypted_signing_private_key", SecretSchema, func(n *LightsparkNodeWithOSK) **Secret { return &n.EncryptedSigningPrivateKey }),
		},
	)...,
)

// LightsparkNodeWithRemoteSigning is a node whose keys never leave the
// signer operated by the account owner
type LightsparkNodeWithRemoteSigning struct {
	LightsparkNode
}

func (LightsparkNodeWithRemoteSigning) Typename() string {
	return "LightsparkNodeWithRemoteSigning"
}

func (n LightsparkNodeWithRemoteSigning) MarshalJSON() ([]byte, error) {
	return LightsparkNodeWithRemoteSigningSchema.Marshal(n)
}

func (n *LightsparkNodeWithRemoteSigning) UnmarshalJSON(body []byte) (err error) {
	*n, err = LightsparkNodeWithRemoteSigningSchema.Unmarshal(body)
	return
}

var LightsparkNodeWithRemoteSigningSchema = codec.NewSchema("LightsparkNodeWithRemoteSigning", "lightspark_node_with_remote_signing",
	lightsparkNodeFields[LightsparkNodeWithRemoteSigning]()...,
)

// UnknownNode stands in for a kind of node this version of the SDK does not
// know. Only the type name is kept.
type UnknownNode struct {
	Type string
}

func (u UnknownNode) EntityID() string {
	return ""
}

func (u UnknownNode) Typename() string {
	return u.Type
}

func (u UnknownNode) Info() NodeInfo {
	return NodeInfo{}
}

var Nodes = codec.NewUnion("Node",
	func(typename string) Node { return UnknownNode{Type: typename} },
	codec.Variant[Node](GraphNodeSchema),
	codec.Variant[Node](LightsparkNodeWithOSKSchema),
	codec.Variant[Node](LightsparkNodeWithRemoteSigningSchema),
)
