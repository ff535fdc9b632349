// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
)

// AssetID identifies one fungible asset. IDs are allocated sequentially at
// issuance, starting at zero, and are never reused.
type AssetID uint64

// Bytes returns the ID as an 8-byte big endian value, for use as a record key
// part.
func (id AssetID) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(id))
	return b[:]
}

func (id AssetID) String() string { return fmt.Sprint(uint64(id)) }

// AssetIDFromBytes parses an 8-byte big endian asset ID.
func AssetIDFromBytes(b []byte) (AssetID, error) {
	if len(b) != 8 {
		return 0, errors.EncodingError.WithFormat("invalid asset ID length: want 8, got %d", len(b))
	}
	return AssetID(binary.BigEndian.Uint64(b)), nil
}

// AccountID identifies an account. The ledger receives account IDs already
// resolved by the caller.
type AccountID [32]byte

// Bytes returns the account ID as a byte slice, for use as a record key part.
func (a AccountID) Bytes() []byte { return a[:] }

func (a AccountID) String() string { return hex.EncodeToString(a[:]) }

// AccountIDFromSeed derives an account ID from an arbitrary seed string.
// Deterministic; intended for tests and tooling.
func AccountIDFromSeed(seed string) AccountID {
	return sha256.Sum256([]byte(seed))
}

// ParseAccountID parses a 64-character hex account ID.
func ParseAccountID(s string) (AccountID, error) {
	var a AccountID
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, errors.EncodingError.WithFormat("invalid account ID: %w", err)
	}
	if len(b) != len(a) {
		return a, errors.EncodingError.WithFormat("invalid account ID length: want %d, got %d", len(a), len(b))
	}
	copy(a[:], b)
	return a, nil
}

const (
	// AssetNameLength is the fixed length of an asset name.
	AssetNameLength = 16
	// AssetSymbolLength is the fixed length of an asset symbol.
	AssetSymbolLength = 8

	assetInfoLength = AssetNameLength + AssetSymbolLength + 1
)

// AssetInfo is the metadata of an asset. Created once at issuance and
// immutable thereafter.
type AssetInfo struct {
	Name     [AssetNameLength]byte
	Symbol   [AssetSymbolLength]byte
	Decimals uint8
}

// NewAssetInfo builds an AssetInfo from strings. Values longer than the fixed
// field sizes are truncated; shorter values are zero padded.
func NewAssetInfo(name, symbol string, decimals uint8) AssetInfo {
	var info AssetInfo
	copy(info.Name[:], name)
	copy(info.Symbol[:], symbol)
	info.Decimals = decimals
	return info
}

// NameString returns the name with zero padding removed.
func (a *AssetInfo) NameString() string {
	return string(bytes.TrimRight(a.Name[:], "\x00"))
}

// SymbolString returns the symbol with zero padding removed.
func (a *AssetInfo) SymbolString() string {
	return string(bytes.TrimRight(a.Symbol[:], "\x00"))
}

func (a *AssetInfo) Equal(b *AssetInfo) bool {
	return a.Name == b.Name && a.Symbol == b.Symbol && a.Decimals == b.Decimals
}

// MarshalBinary marshals the info as a fixed 25-byte record.
func (a *AssetInfo) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, assetInfoLength)
	b = append(b, a.Name[:]...)
	b = append(b, a.Symbol[:]...)
	b = append(b, a.Decimals)
	return b, nil
}

// UnmarshalBinary unmarshals the info from its fixed 25-byte record.
func (a *AssetInfo) UnmarshalBinary(b []byte) error {
	if len(b) != assetInfoLength {
		return errors.EncodingError.WithFormat("invalid asset info length: want %d, got %d", assetInfoLength, len(b))
	}
	copy(a.Name[:], b[:AssetNameLength])
	copy(a.Symbol[:], b[AssetNameLength:AssetNameLength+AssetSymbolLength])
	a.Decimals = b[assetInfoLength-1]
	return nil
}
