package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// Transfer moves amount from owner to target. The amount must be nonzero and
// the owner's balance must cover it. The asset ID is deliberately not checked
// for existence: balances of a never-issued asset are zero-valued entries and
// moving them succeeds like any other transfer.
func (e *Engine) Transfer(id protocol.AssetID, owner, target protocol.AccountID, amount protocol.Amount) error {
	batch := e.store.Begin(nil, true)
	defer batch.Discard()

	err := transfer(newState(batch), id, owner, target, amount)
	if err != nil {
		return err
	}

	err = batch.Commit()
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	e.logger.Debug("Transferred", "asset", id.String(), "from", owner.String(), "to", target.String(), "amount", amount.String())
	e.publish(events.Transferred{Asset: id, From: owner, To: target, Amount: amount})
	return nil
}

// transfer stages a balance movement on the state. All checks run before any
// write is staged. Debit is staged before credit, so a self-transfer credits
// the already-debited value and nets to identity even at the saturation
// boundary.
func transfer(st *stateDB, id protocol.AssetID, owner, target protocol.AccountID, amount protocol.Amount) error {
	ownerBalance, err := st.Balance(id, owner)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	if amount.IsZero() {
		return errors.AmountZero.WithFormat("cannot transfer zero of asset %v", id)
	}
	if ownerBalance < amount {
		return errors.BalanceLow.WithFormat("cannot transfer %v of asset %v: balance is %v", amount, id, ownerBalance)
	}

	err = st.PutBalance(id, owner, ownerBalance.SaturatingSub(amount))
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	targetBalance, err := st.Balance(id, target)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	err = st.PutBalance(id, target, targetBalance.SaturatingAdd(amount))
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	return nil
}
