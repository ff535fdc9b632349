package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// Mint increases the account's balance and the asset's total supply by
// amount. The asset must exist. Additions saturate at the numeric maximum
// instead of failing; a zero amount is a legal no-op.
func (e *Engine) Mint(id protocol.AssetID, account protocol.AccountID, amount protocol.Amount) error {
	batch := e.store.Begin(nil, true)
	defer batch.Discard()
	st := newState(batch)

	info, err := st.AssetInfo(id)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	if info == nil {
		return errors.AssetNotExists.WithFormat("cannot mint asset %v: not issued", id)
	}

	balance, err := st.Balance(id, account)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	err = st.PutBalance(id, account, balance.SaturatingAdd(amount))
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	supply, err := st.TotalSupply(id)
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}
	err = st.PutTotalSupply(id, supply.SaturatingAdd(amount))
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	err = batch.Commit()
	if err != nil {
		return errors.UnknownError.Wrap(err)
	}

	e.logger.Debug("Minted", "asset", id.String(), "account", account.String(), "amount", amount.String())
	e.publish(events.Minted{Asset: id, Account: account, Amount: amount})
	return nil
}
