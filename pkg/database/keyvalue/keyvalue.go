// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keyvalue

import (
	"fmt"

	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/types/record"
)

// A Store reads and writes key-value entries.
type Store interface {
	// Get loads a value.
	Get(*record.Key) ([]byte, error)

	// Put stores a value.
	Put(*record.Key, []byte) error

	// Delete deletes a key-value entry.
	Delete(*record.Key) error

	// ForEach iterates over each key-value entry.
	ForEach(func(*record.Key, []byte) error) error
}

// ChangeSet is a key-value change set.
type ChangeSet interface {
	Store
	Beginner

	// Commit commits pending changes.
	Commit() error

	// Discard discards pending changes.
	Discard()
}

// A Beginner can begin key-value change sets.
type Beginner interface {
	// Begin begins a transaction or sub-transaction with a prefix applied to keys.
	Begin(prefix *record.Key, writable bool) ChangeSet
}

// NotFoundError is returned when a key is not present in the store.
type NotFoundError record.Key

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v not found", (*record.Key)(e))
}

// Is returns true for [errors.NotFound].
func (e *NotFoundError) Is(target error) bool {
	return target == errors.NotFound
}
