package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue/memory"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/protocol"
)

var (
	alice   = protocol.AccountIDFromSeed("alice")
	bob     = protocol.AccountIDFromSeed("bob")
	charlie = protocol.AccountIDFromSeed("charlie")
	dave    = protocol.AccountIDFromSeed("dave")
)

func setup(t *testing.T) (*Engine, *memory.Database, *[]events.Event) {
	t.Helper()
	db := memory.New(nil)
	bus := events.NewBus(nil)
	var seen []events.Event
	events.SubscribeSync(bus, func(e events.Event) { seen = append(seen, e) })
	engine := New(db, WithEvents(bus))
	return engine, db, &seen
}

func requireBalance(t *testing.T, e *Engine, id protocol.AssetID, account protocol.AccountID, expect protocol.Amount) {
	t.Helper()
	balance, err := e.BalanceOf(id, account)
	require.NoError(t, err)
	require.Equal(t, expect, balance)
}

func requireSupply(t *testing.T, e *Engine, id protocol.AssetID, expect protocol.Amount) {
	t.Helper()
	supply, err := e.TotalSupply(id)
	require.NoError(t, err)
	require.Equal(t, expect, supply)
}

func requireAllowance(t *testing.T, e *Engine, id protocol.AssetID, owner, spender protocol.AccountID, expect protocol.Amount) {
	t.Helper()
	allowance, err := e.Allowance(id, owner, spender)
	require.NoError(t, err)
	require.Equal(t, expect, allowance)
}

func TestIssue(t *testing.T) {
	engine, _, seen := setup(t)

	info := protocol.NewAssetInfo("Polkaswap Token", "PSWAP", 12)
	id, err := engine.Issue(alice, 1000, info)
	require.NoError(t, err)
	require.Equal(t, protocol.AssetID(0), id)

	requireBalance(t, engine, id, alice, 1000)
	requireSupply(t, engine, id, 1000)

	got, err := engine.AssetInfo(id)
	require.NoError(t, err)
	require.True(t, got.Equal(&info))
	require.Equal(t, "PSWAP", got.SymbolString())

	require.Equal(t, []events.Event{events.Issued{Asset: id, Issuer: alice, Amount: 1000}}, *seen)
}

func TestIssueAllocatesSequentialIDs(t *testing.T) {
	engine, _, _ := setup(t)

	for i := 0; i < 5; i++ {
		id, err := engine.Issue(alice, protocol.Amount(i), protocol.NewAssetInfo("asset", "AST", 0))
		require.NoError(t, err)
		require.Equal(t, protocol.AssetID(i), id)
	}
}

func TestIssueZeroSupply(t *testing.T) {
	engine, _, _ := setup(t)

	// Creating a zero-supply asset is legal
	id, err := engine.Issue(alice, 0, protocol.NewAssetInfo("empty", "NIL", 0))
	require.NoError(t, err)

	requireBalance(t, engine, id, alice, 0)
	requireSupply(t, engine, id, 0)

	_, err = engine.AssetInfo(id)
	require.NoError(t, err)
}

func TestTransfer(t *testing.T) {
	engine, _, seen := setup(t)

	id, err := engine.Issue(alice, 1000, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)

	require.NoError(t, engine.Transfer(id, alice, bob, 400))
	requireBalance(t, engine, id, alice, 600)
	requireBalance(t, engine, id, bob, 400)

	// Insufficient balance fails and mutates nothing
	err = engine.Transfer(id, alice, bob, 700)
	require.ErrorIs(t, err, errors.BalanceLow)
	requireBalance(t, engine, id, alice, 600)
	requireBalance(t, engine, id, bob, 400)

	require.Equal(t, []events.Event{
		events.Issued{Asset: id, Issuer: alice, Amount: 1000},
		events.Transferred{Asset: id, From: alice, To: bob, Amount: 400},
	}, *seen)
}

func TestTransferZeroAmount(t *testing.T) {
	engine, _, seen := setup(t)

	id, err := engine.Issue(alice, 1000, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)

	err = engine.Transfer(id, alice, bob, 0)
	require.ErrorIs(t, err, errors.AmountZero)
	requireBalance(t, engine, id, alice, 1000)
	require.Len(t, *seen, 1) // just the issue
}

func TestTransferUnknownAsset(t *testing.T) {
	engine, _, _ := setup(t)

	// Transfer does not check asset existence. An unknown asset has zero
	// balances, so any nonzero transfer fails with BalanceLow, not
	// AssetNotExists.
	err := engine.Transfer(99, alice, bob, 1)
	require.ErrorIs(t, err, errors.BalanceLow)
}

func TestSelfTransfer(t *testing.T) {
	engine, _, _ := setup(t)

	id, err := engine.Issue(alice, 1000, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)

	// Self-transfer is not special-cased; debit before credit nets to
	// identity
	require.NoError(t, engine.Transfer(id, alice, alice, 400))
	requireBalance(t, engine, id, alice, 1000)
	requireSupply(t, engine, id, 1000)
}

func TestSelfTransferAtSaturationBoundary(t *testing.T) {
	engine, _, _ := setup(t)

	id, err := engine.Issue(alice, protocol.MaxAmount, protocol.NewAssetInfo("max", "MAX", 0))
	require.NoError(t, err)

	// Debit is staged first, so the credit cannot saturate past the
	// original value
	require.NoError(t, engine.Transfer(id, alice, alice, protocol.MaxAmount))
	requireBalance(t, engine, id, alice, protocol.MaxAmount)
	requireSupply(t, engine, id, protocol.MaxAmount)
}

func TestApprove(t *testing.T) {
	engine, _, seen := setup(t)

	id, err := engine.Issue(alice, 1000, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)

	require.NoError(t, engine.Approve(id, alice, charlie, 300))
	requireAllowance(t, engine, id, alice, charlie, 300)

	// Approve overwrites, it does not accumulate
	require.NoError(t, engine.Approve(id, alice, charlie, 120))
	requireAllowance(t, engine, id, alice, charlie, 120)

	// Zero revokes
	require.NoError(t, engine.Approve(id, alice, charlie, 0))
	requireAllowance(t, engine, id, alice, charlie, 0)

	require.Equal(t, []events.Event{
		events.Issued{Asset: id, Issuer: alice, Amount: 1000},
		events.Approval{Asset: id, Owner: alice, Spender: charlie, Amount: 300},
		events.Approval{Asset: id, Owner: alice, Spender: charlie, Amount: 120},
		events.Approval{Asset: id, Owner: alice, Spender: charlie, Amount: 0},
	}, *seen)
}

func TestTransferFrom(t *testing.T) {
	engine, _, seen := setup(t)

	id, err := engine.Issue(alice, 1000, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)
	require.NoError(t, engine.Transfer(id, alice, bob, 400))

	require.NoError(t, engine.Approve(id, alice, charlie, 300))
	require.NoError(t, engine.TransferFrom(id, alice, charlie, dave, 300))

	requireAllowance(t, engine, id, alice, charlie, 0)
	requireBalance(t, engine, id, alice, 300)
	requireBalance(t, engine, id, dave, 300)

	// Allowance is exhausted
	err = engine.TransferFrom(id, alice, charlie, dave, 1)
	require.ErrorIs(t, err, errors.AllowanceLow)

	require.Equal(t, events.Transferred{Asset: id, From: alice, To: dave, Amount: 300}, (*seen)[len(*seen)-1])
}

func TestTransferFromPartial(t *testing.T) {
	engine, _, _ := setup(t)

	id, err := engine.Issue(alice, 1000, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)

	require.NoError(t, engine.Approve(id, alice, charlie, 300))
	require.NoError(t, engine.TransferFrom(id, alice, charlie, dave, 100))

	// The allowance decreases by exactly the transferred amount
	requireAllowance(t, engine, id, alice, charlie, 200)
	requireBalance(t, engine, id, alice, 900)
	requireBalance(t, engine, id, dave, 100)
}

func TestTransferFromFailedTransferKeepsAllowance(t *testing.T) {
	engine, _, seen := setup(t)

	id, err := engine.Issue(alice, 100, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)

	// Allowance exceeds the balance: the allowance check passes but the
	// inner transfer fails, so the allowance must be untouched
	require.NoError(t, engine.Approve(id, alice, charlie, 500))
	err = engine.TransferFrom(id, alice, charlie, dave, 200)
	require.ErrorIs(t, err, errors.BalanceLow)

	requireAllowance(t, engine, id, alice, charlie, 500)
	requireBalance(t, engine, id, alice, 100)
	requireBalance(t, engine, id, dave, 0)

	// A zero-amount delegated transfer is rejected by the inner transfer
	err = engine.TransferFrom(id, alice, charlie, dave, 0)
	require.ErrorIs(t, err, errors.AmountZero)
	requireAllowance(t, engine, id, alice, charlie, 500)

	require.Len(t, *seen, 2) // issue + approve, no transfer events
}

func TestMint(t *testing.T) {
	engine, _, seen := setup(t)

	id, err := engine.Issue(alice, 1000, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)

	require.NoError(t, engine.Mint(id, bob, 50))
	requireBalance(t, engine, id, bob, 50)
	requireSupply(t, engine, id, 1050)

	// Zero-amount mint is a legal no-op
	require.NoError(t, engine.Mint(id, bob, 0))
	requireBalance(t, engine, id, bob, 50)
	requireSupply(t, engine, id, 1050)

	// Unknown asset
	err = engine.Mint(99, alice, 50)
	require.ErrorIs(t, err, errors.AssetNotExists)

	require.Equal(t, []events.Event{
		events.Issued{Asset: id, Issuer: alice, Amount: 1000},
		events.Minted{Asset: id, Account: bob, Amount: 50},
		events.Minted{Asset: id, Account: bob, Amount: 0},
	}, *seen)
}

func TestMintSaturates(t *testing.T) {
	engine, _, _ := setup(t)

	id, err := engine.Issue(alice, protocol.MaxAmount-10, protocol.NewAssetInfo("max", "MAX", 0))
	require.NoError(t, err)

	// Additions saturate at the numeric maximum instead of failing
	require.NoError(t, engine.Mint(id, alice, 100))
	requireBalance(t, engine, id, alice, protocol.MaxAmount)
	requireSupply(t, engine, id, protocol.MaxAmount)
}

func TestBurn(t *testing.T) {
	engine, _, seen := setup(t)

	id, err := engine.Issue(alice, 1000, protocol.NewAssetInfo("token", "TOK", 8))
	require.NoError(t, err)

	require.NoError(t, engine.Burn(id, alice, 250))
	requireBalance(t, engine, id, alice, 750)
	requireSupply(t, engine, id, 750)

	// Burning more than held is rejected, not clamped
	err = engine.Burn(id, alice, 751)
	require.ErrorIs(t, err, errors.BalanceLow)
	requireBalance(t, engine, id, alice, 750)
	requireSupply(t, engine, id, 750)

	// Zero-amount burn is legal
	require.NoError(t, engine.Burn(id, alice, 0))

	// Unknown asset
	err = engine.Burn(99, alice, 1)
	require.ErrorIs(t, err, errors.AssetNotExists)

	require.Equal(t, []events.Event{
		events.Issued{Asset: id, Issuer: alice, Amount: 1000},
		events.Burned{Asset: id, Account: alice, Amount: 250},
		events.Burned{Asset: id, Account: alice, Amount: 0},
	}, *seen)
}

func TestAssetInfoUnknown(t *testing.T) {
	engine, _, _ := setup(t)

	_, err := engine.AssetInfo(12)
	require.ErrorIs(t, err, errors.AssetNotExists)
}

func TestQueriesDefaultToZero(t *testing.T) {
	engine, _, _ := setup(t)

	requireBalance(t, engine, 7, alice, 0)
	requireSupply(t, engine, 7, 0)
	requireAllowance(t, engine, 7, alice, bob, 0)
}
