package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// TransferFrom moves amount from owner to target on behalf of spender,
// consuming the spender's allowance. The allowance check, the transfer, and
// the allowance decrement are one atomic unit: if any step fails, neither the
// balances nor the allowance change.
func (e *Engine) TransferFrom(id protocol.AssetID, owner, spender, target protocol.AccountID, amount protocol.Amount) error {
	batch := e.store.Begin(nil, true)
	defer batch.Discard()
	st := newState(batch)

	allowance, err := st.Allowance(id, owner, spender)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	remaining, ok := allowance.CheckedSub(amount)
	if !ok {
		return errors.AllowanceLow.WithFormat("cannot transfer %v of asset %v: allowance is %v", amount, id, allowance)
	}

	// The allowance is decremented only after the transfer succeeds
	err = transfer(st, id, owner, target, amount)
	if err != nil {
		return err
	}

	err = st.PutAllowance(id, owner, spender, remaining)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	err = batch.Commit()
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	e.logger.Debug("Transferred (delegated)", "asset", id.String(), "from", owner.String(), "spender", spender.String(), "to", target.String(), "amount", amount.String())
	e.publish(events.Transferred{Asset: id, From: owner, To: target, Amount: amount})
	return nil
}
