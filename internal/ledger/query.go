package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// TotalSupply returns the asset's outstanding supply. Unknown assets have a
// supply of zero.
func (e *Engine) TotalSupply(id protocol.AssetID) (protocol.Amount, error) {
	batch := e.store.Begin(nil, false)
	defer batch.Discard()
	return newState(batch).TotalSupply(id)
}

// BalanceOf returns the account's balance of the asset. Missing entries are
// zero.
func (e *Engine) BalanceOf(id protocol.AssetID, account protocol.AccountID) (protocol.Amount, error) {
	batch := e.store.Begin(nil, false)
	defer batch.Discard()
	return newState(batch).Balance(id, account)
}

// Allowance returns what the spender may currently move out of the owner's
// balance. Missing entries are zero.
func (e *Engine) Allowance(id protocol.AssetID, owner, spender protocol.AccountID) (protocol.Amount, error) {
	batch := e.store.Begin(nil, false)
	defer batch.Discard()
	return newState(batch).Allowance(id, owner, spender)
}

// AssetInfo returns the asset's metadata, or AssetNotExists if the ID was
// never issued.
func (e *Engine) AssetInfo(id protocol.AssetID) (*protocol.AssetInfo, error) {
	batch := e.store.Begin(nil, false)
	defer batch.Discard()

	info, err := newState(batch).AssetInfo(id)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, errors.AssetNotExists.WithFormat("asset %v has not been issued", id)
	}
	return info, nil
}
