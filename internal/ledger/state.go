package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/types/record"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// Table names. Each logical table of the ledger is a key prefix in the
// underlying store.
const (
	tableAsset       = "Asset"
	tableTotalSupply = "TotalSupply"
	tableBalance     = "Balance"
	tableAllowance   = "Allowance"
	tableNextAssetID = "NextAssetID"
)

// stateDB is a typed view of the five ledger tables over a change set. All
// writes stay pending until the change set commits, so a transition that
// fails after staging writes still leaves the store untouched.
type stateDB struct {
	batch keyvalue.Store
}

func newState(batch keyvalue.Store) *stateDB {
	return &stateDB{batch}
}

func assetKey(id protocol.AssetID) *record.Key {
	return record.NewKey(tableAsset, id)
}

func totalSupplyKey(id protocol.AssetID) *record.Key {
	return record.NewKey(tableTotalSupply, id)
}

func balanceKey(id protocol.AssetID, account protocol.AccountID) *record.Key {
	return record.NewKey(tableBalance, id, account)
}

func allowanceKey(id protocol.AssetID, owner, spender protocol.AccountID) *record.Key {
	return record.NewKey(tableAllowance, id, owner, spender)
}

// getAmount loads an amount, treating a missing entry as zero. A zero entry
// is equivalent to an absent one.
func (s *stateDB) getAmount(key *record.Key) (protocol.Amount, error) {
	b, err := s.batch.Get(key)
	switch {
	case err == nil:
		var a protocol.Amount
		err = a.UnmarshalBinary(b)
		return a, errors.EncodingError.Wrap(err)
	case errors.Is(err, errors.NotFound):
		return 0, nil
	default:
		return 0, errors.UnknownError.Wrap(err)
	}
}

func (s *stateDB) putAmount(key *record.Key, a protocol.Amount) error {
	b, err := a.MarshalBinary()
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}
	return s.batch.Put(key, b)
}

// AssetInfo returns the asset's metadata, or nil if the asset was never
// issued.
func (s *stateDB) AssetInfo(id protocol.AssetID) (*protocol.AssetInfo, error) {
	b, err := s.batch.Get(assetKey(id))
	switch {
	case err == nil:
		info := new(protocol.AssetInfo)
		err = info.UnmarshalBinary(b)
		if err != nil {
			return nil, errors.EncodingError.Wrap(err)
		}
		return info, nil
	case errors.Is(err, errors.NotFound):
		return nil, nil
	default:
		return nil, errors.UnknownError.Wrap(err)
	}
}

func (s *stateDB) PutAssetInfo(id protocol.AssetID, info *protocol.AssetInfo) error {
	b, err := info.MarshalBinary()
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}
	return s.batch.Put(assetKey(id), b)
}

func (s *stateDB) TotalSupply(id protocol.AssetID) (protocol.Amount, error) {
	return s.getAmount(totalSupplyKey(id))
}

func (s *stateDB) PutTotalSupply(id protocol.AssetID, a protocol.Amount) error {
	return s.putAmount(totalSupplyKey(id), a)
}

func (s *stateDB) Balance(id protocol.AssetID, account protocol.AccountID) (protocol.Amount, error) {
	return s.getAmount(balanceKey(id, account))
}

func (s *stateDB) PutBalance(id protocol.AssetID, account protocol.AccountID, a protocol.Amount) error {
	return s.putAmount(balanceKey(id, account), a)
}

func (s *stateDB) Allowance(id protocol.AssetID, owner, spender protocol.AccountID) (protocol.Amount, error) {
	return s.getAmount(allowanceKey(id, owner, spender))
}

func (s *stateDB) PutAllowance(id protocol.AssetID, owner, spender protocol.AccountID, a protocol.Amount) error {
	return s.putAmount(allowanceKey(id, owner, spender), a)
}

// NextAssetID returns the next unallocated asset ID. The counter starts at
// zero and is bumped by one on each issuance; IDs are never reused.
func (s *stateDB) NextAssetID() (protocol.AssetID, error) {
	b, err := s.batch.Get(record.NewKey(tableNextAssetID))
	switch {
	case err == nil:
		id, err := protocol.AssetIDFromBytes(b)
		return id, errors.EncodingError.Wrap(err)
	case errors.Is(err, errors.NotFound):
		return 0, nil
	default:
		return 0, errors.UnknownError.Wrap(err)
	}
}

func (s *stateDB) PutNextAssetID(id protocol.AssetID) error {
	return s.batch.Put(record.NewKey(tableNextAssetID), id.Bytes())
}
