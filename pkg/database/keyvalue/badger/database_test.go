// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger

import (
	"testing"

	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue/kvtest"
)

func open(t testing.TB) kvtest.Opener {
	path := t.TempDir()
	return func() (keyvalue.Beginner, error) {
		return New(path)
	}
}

func TestSuite(t *testing.T) {
	kvtest.TestSuite(t, open(t))
}

func TestIsolation(t *testing.T) {
	kvtest.TestIsolation(t, open(t))
}

func BenchmarkCommit(b *testing.B) {
	kvtest.BenchmarkCommit(b, open(b))
}

func BenchmarkReadRandom(b *testing.B) {
	kvtest.BenchmarkReadRandom(b, open(b))
}
