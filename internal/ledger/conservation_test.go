package ledger

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue/memory"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

// snapshot captures the exact stored state of the database.
func snapshot(t *testing.T, db *memory.Database) map[[32]byte]string {
	t.Helper()
	entries, err := db.Export()
	require.NoError(t, err)
	m := make(map[[32]byte]string, len(entries))
	for _, e := range entries {
		m[e.Key.Hash()] = string(e.Value)
	}
	return m
}

// requireConserved checks that the total supply of the asset equals the sum
// of the given accounts' balances.
func requireConserved(t *testing.T, e *Engine, id protocol.AssetID, accounts []protocol.AccountID) {
	t.Helper()
	var sum protocol.Amount
	for _, account := range accounts {
		balance, err := e.BalanceOf(id, account)
		require.NoError(t, err)
		sum += balance
	}
	supply, err := e.TotalSupply(id)
	require.NoError(t, err)
	require.Equal(t, supply, sum, "total supply must equal the sum of balances")
}

// TestIdempotentFailure verifies that a failing call leaves every table
// byte-identical to its pre-call state.
func TestIdempotentFailure(t *testing.T) {
	engine, db, seen := setup(t)

	id, err := engine.Issue(alice, 100, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)
	require.NoError(t, engine.Approve(id, alice, charlie, 500))

	before := snapshot(t, db)
	eventsBefore := len(*seen)

	require.ErrorIs(t, engine.Transfer(id, alice, bob, 0), errors.AmountZero)
	require.ErrorIs(t, engine.Transfer(id, alice, bob, 101), errors.BalanceLow)
	require.ErrorIs(t, engine.TransferFrom(id, alice, charlie, dave, 501), errors.AllowanceLow)
	require.ErrorIs(t, engine.TransferFrom(id, alice, charlie, dave, 200), errors.BalanceLow)
	require.ErrorIs(t, engine.Mint(99, alice, 1), errors.AssetNotExists)
	require.ErrorIs(t, engine.Burn(99, alice, 1), errors.AssetNotExists)
	require.ErrorIs(t, engine.Burn(id, alice, 101), errors.BalanceLow)

	require.Equal(t, before, snapshot(t, db), "failed calls must not mutate state")
	require.Len(t, *seen, eventsBefore, "failed calls must not emit events")
}

// TestConservation runs a random sequence of transitions, including failing
// ones, and checks the conservation invariant after every call.
func TestConservation(t *testing.T) {
	engine, _, _ := setup(t)
	rng := rand.New(rand.NewSource(42))

	accounts := []protocol.AccountID{alice, bob, charlie, dave}
	pick := func() protocol.AccountID { return accounts[rng.Intn(len(accounts))] }

	var assets []protocol.AssetID
	id, err := engine.Issue(alice, 1_000_000, protocol.NewAssetInfo("seed", "SEED", 6))
	require.NoError(t, err)
	assets = append(assets, id)

	for i := 0; i < 1000; i++ {
		asset := assets[rng.Intn(len(assets))]
		amount := protocol.Amount(rng.Intn(2000)) // zero included on purpose

		switch rng.Intn(7) {
		case 0:
			id, err := engine.Issue(pick(), amount, protocol.NewAssetInfo("rand", "RND", 2))
			require.NoError(t, err)
			assets = append(assets, id)
		case 1:
			err := engine.Transfer(asset, pick(), pick(), amount)
			if err != nil {
				require.True(t,
					errors.Is(err, errors.AmountZero) || errors.Is(err, errors.BalanceLow),
					"unexpected error: %v", err)
			}
		case 2:
			require.NoError(t, engine.Approve(asset, pick(), pick(), amount))
		case 3:
			err := engine.TransferFrom(asset, pick(), pick(), pick(), amount)
			if err != nil {
				require.True(t,
					errors.Is(err, errors.AmountZero) ||
						errors.Is(err, errors.BalanceLow) ||
						errors.Is(err, errors.AllowanceLow),
					"unexpected error: %v", err)
			}
		case 4:
			require.NoError(t, engine.Mint(asset, pick(), amount))
		case 5:
			err := engine.Burn(asset, pick(), amount)
			if err != nil {
				require.ErrorIs(t, err, errors.BalanceLow)
			}
		case 6:
			// Transitions against a never-issued asset
			unknown := protocol.AssetID(1000 + uint64(rng.Intn(10)))
			require.ErrorIs(t, engine.Mint(unknown, pick(), 1), errors.AssetNotExists)
			require.ErrorIs(t, engine.Burn(unknown, pick(), 1), errors.AssetNotExists)
		}

		requireConserved(t, engine, asset, accounts)

		// Full sweep periodically and at the end
		if i%100 == 99 || i == 999 {
			for _, a := range assets {
				requireConserved(t, engine, a, accounts)
			}
		}
	}
}
