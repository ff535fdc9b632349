// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package kvtest

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/types/record"
)

func BenchmarkCommit(b *testing.B, open Opener) {
	// Populate
	db := openDb(b, open)

	batch := db.Begin(nil, true)
	defer batch.Discard()

	for i := 0; i < b.N; i++ {
		err := batch.Put(record.NewKey("answer", i), []byte(fmt.Sprintf("%x this much data ", i)))
		require.NoError(b, err, "Put")
	}

	// Commit
	b.ResetTimer()
	require.NoError(b, batch.Commit())
}

func BenchmarkReadRandom(b *testing.B, open Opener) {
	const N = 10000

	// Populate
	db := openDb(b, open)

	batch := db.Begin(nil, true)
	defer batch.Discard()
	for i := 0; i < N; i++ {
		err := batch.Put(record.NewKey("answer", i), []byte(fmt.Sprintf("%x this much data ", i)))
		require.NoError(b, err, "Put")
	}
	require.NoError(b, batch.Commit())

	// Read random keys
	batch = db.Begin(nil, false)
	defer batch.Discard()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := batch.Get(record.NewKey("answer", rand.Intn(N)))
		require.NoError(b, err, "Get")
	}
}
