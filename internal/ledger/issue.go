package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// Issue creates a new asset, crediting the initial supply to the issuer.
// Asset IDs are allocated sequentially and never reused. A zero initial
// supply is legal. Issue has no failure mode beyond storage errors.
func (e *Engine) Issue(issuer protocol.AccountID, initialSupply protocol.Amount, info protocol.AssetInfo) (protocol.AssetID, error) {
	batch := e.store.Begin(nil, true)
	defer batch.Discard()
	st := newState(batch)

	id, err := st.NextAssetID()
	if err != nil {
		return 0, errors.UnknownError.Wrap(err)
	}

	err = st.PutNextAssetID(id + 1)
	if err != nil {
		return 0, errors.UnknownError.Wrap(err)
	}
	err = st.PutAssetInfo(id, &info)
	if err != nil {
		return 0, errors.UnknownError.Wrap(err)
	}
	err = st.PutBalance(id, issuer, initialSupply)
	if err != nil {
		return 0, errors.UnknownError.Wrap(err)
	}
	err = st.PutTotalSupply(id, initialSupply)
	if err != nil {
		return 0, errors.UnknownError.Wrap(err)
	}

	err = batch.Commit()
	if err != nil {
		return 0, errors.UnknownError.Wrap(err)
	}

	e.logger.Debug("Issued asset", "asset", id.String(), "issuer", issuer.String(), "supply", initialSupply.String(), "symbol", info.SymbolString())
	e.publish(events.Issued{Asset: id, Issuer: issuer, Amount: initialSupply})
	return id, nil
}
