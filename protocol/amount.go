// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
)

// Amount is a quantity of a single asset, in minimum units.
type Amount uint64

// MaxAmount is the largest representable amount. Saturating additions clamp
// here instead of wrapping.
const MaxAmount Amount = math.MaxUint64

// SaturatingAdd returns a + b, clamped at MaxAmount.
func (a Amount) SaturatingAdd(b Amount) Amount {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		return MaxAmount
	}
	return Amount(sum)
}

// SaturatingSub returns a - b, clamped at zero.
func (a Amount) SaturatingSub(b Amount) Amount {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0
	}
	return Amount(diff)
}

// CheckedSub returns a - b and true, or zero and false if the subtraction
// would underflow.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		return 0, false
	}
	return Amount(diff), true
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool { return a == 0 }

func (a Amount) String() string { return fmt.Sprint(uint64(a)) }

// MarshalBinary marshals the amount as 8 big endian bytes.
func (a Amount) MarshalBinary() ([]byte, error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(a))
	return b[:], nil
}

// UnmarshalBinary unmarshals the amount from 8 big endian bytes.
func (a *Amount) UnmarshalBinary(b []byte) error {
	if len(b) != 8 {
		return errors.EncodingError.WithFormat("invalid amount length: want 8, got %d", len(b))
	}
	*a = Amount(binary.BigEndian.Uint64(b))
	return nil
}
