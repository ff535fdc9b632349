package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// Approve sets the spender's allowance over the owner's balance to exactly
// amount. The set is absolute: re-approving overwrites, it does not
// accumulate. A zero amount is legal and revokes the allowance. Approve
// always succeeds.
func (e *Engine) Approve(id protocol.AssetID, owner, spender protocol.AccountID, amount protocol.Amount) error {
	batch := e.store.Begin(nil, true)
	defer batch.Discard()
	st := newState(batch)

	err := st.PutAllowance(id, owner, spender, amount)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	err = batch.Commit()
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	e.logger.Debug("Approved", "asset", id.String(), "owner", owner.String(), "spender", spender.String(), "amount", amount.String())
	e.publish(events.Approval{Asset: id, Owner: owner, Spender: spender, Amount: amount})
	return nil
}
