// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountSaturation(t *testing.T) {
	require.Equal(t, Amount(30), Amount(10).SaturatingAdd(20))
	require.Equal(t, MaxAmount, MaxAmount.SaturatingAdd(1))
	require.Equal(t, MaxAmount, (MaxAmount - 5).SaturatingAdd(100))

	require.Equal(t, Amount(5), Amount(10).SaturatingSub(5))
	require.Equal(t, Amount(0), Amount(5).SaturatingSub(10))
}

func TestAmountCheckedSub(t *testing.T) {
	diff, ok := Amount(10).CheckedSub(3)
	require.True(t, ok)
	require.Equal(t, Amount(7), diff)

	_, ok = Amount(3).CheckedSub(10)
	require.False(t, ok)

	diff, ok = Amount(3).CheckedSub(3)
	require.True(t, ok)
	require.True(t, diff.IsZero())
}

func TestAssetInfoRoundTrip(t *testing.T) {
	info := NewAssetInfo("Polkaswap Token", "PSWAP", 12)
	require.Equal(t, "Polkaswap Token", info.NameString())
	require.Equal(t, "PSWAP", info.SymbolString())

	b, err := info.MarshalBinary()
	require.NoError(t, err)

	var got AssetInfo
	require.NoError(t, got.UnmarshalBinary(b))
	require.True(t, got.Equal(&info))

	require.Error(t, got.UnmarshalBinary(b[:10]))
}

func TestAssetInfoTruncation(t *testing.T) {
	// Over-long values are truncated to the fixed field sizes
	info := NewAssetInfo("this name is definitely too long", "SYMBOLIC!", 0)
	require.Equal(t, "this name is def", info.NameString())
	require.Equal(t, "SYMBOLIC", info.SymbolString())
}

func TestAccountID(t *testing.T) {
	a := AccountIDFromSeed("alice")
	require.Equal(t, a, AccountIDFromSeed("alice"))
	require.NotEqual(t, a, AccountIDFromSeed("bob"))

	parsed, err := ParseAccountID(a.String())
	require.NoError(t, err)
	require.Equal(t, a, parsed)

	_, err = ParseAccountID("zz")
	require.Error(t, err)
	_, err = ParseAccountID("abcd")
	require.Error(t, err)
}

func TestAssetIDBytes(t *testing.T) {
	id := AssetID(42)
	got, err := AssetIDFromBytes(id.Bytes())
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = AssetIDFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}
