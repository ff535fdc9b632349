package events

import "github.com/xbtasvs/polkaswap-pallet-erc20/protocol"

// An Event is a ledger notification. Each successful transition publishes
// exactly one event; failed transitions publish nothing.
type Event interface {
	isEvent()
}

func (Issued) isEvent()      {}
func (Transferred) isEvent() {}
func (Approval) isEvent()    {}
func (Minted) isEvent()      {}
func (Burned) isEvent()      {}

// Issued is published when a new asset is created.
type Issued struct {
	Asset  protocol.AssetID
	Issuer protocol.AccountID
	Amount protocol.Amount
}

// Transferred is published when balance moves between accounts, including by
// delegated transfer.
type Transferred struct {
	Asset  protocol.AssetID
	From   protocol.AccountID
	To     protocol.AccountID
	Amount protocol.Amount
}

// Approval is published when an owner sets a spender's allowance.
type Approval struct {
	Asset   protocol.AssetID
	Owner   protocol.AccountID
	Spender protocol.AccountID
	Amount  protocol.Amount
}

// Minted is published when supply is created for an existing asset.
type Minted struct {
	Asset   protocol.AssetID
	Account protocol.AccountID
	Amount  protocol.Amount
}

// Burned is published when supply is destroyed.
type Burned struct {
	Asset   protocol.AssetID
	Account protocol.AccountID
	Amount  protocol.Amount
}
