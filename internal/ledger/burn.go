package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// Burn decreases the account's balance and the asset's total supply by
// amount. The asset must exist and the balance must cover the amount:
// burning more than held is rejected, not clamped. The supply decrement
// saturates at zero; the balance check is the real guard.
func (e *Engine) Burn(id protocol.AssetID, account protocol.AccountID, amount protocol.Amount) error {
	batch := e.store.Begin(nil, true)
	defer batch.Discard()
	st := newState(batch)

	info, err := st.AssetInfo(id)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	if info == nil {
		return errors.AssetNotExists.WithFormat("cannot burn asset %v: not issued", id)
	}

	balance, err := st.Balance(id, account)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	remaining, ok := balance.CheckedSub(amount)
	if !ok {
		return errors.BalanceLow.WithFormat("cannot burn %v of asset %v: balance is %v", amount, id, balance)
	}

	err = st.PutBalance(id, account, remaining)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	supply, err := st.TotalSupply(id)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	err = st.PutTotalSupply(id, supply.SaturatingSub(amount))
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	err = batch.Commit()
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	e.logger.Debug("Burned", "asset", id.String(), "account", account.String(), "amount", amount.String())
	e.publish(events.Burned{Asset: id, Account: account, Amount: amount})
	return nil
}
