// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package bolt

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue/memory"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/types/record"
	bolt "go.etcd.io/bbolt"
)

var bucket = []byte("data")

type Database struct {
	bolt *bolt.DB
}

var _ keyvalue.Beginner = (*Database)(nil)

func Open(filepath string) (*Database, error) {
	d := new(Database)
	var err error
	d.bolt, err = bolt.Open(filepath, 0600, nil)
	if err != nil {
		return nil, err
	}

	// Create the bucket up front so reads don't have to special-case a
	// missing bucket
	err = d.bolt.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		_ = d.bolt.Close()
		return nil, err
	}

	return d, nil
}

func (d *Database) key(key *record.Key) []byte {
	h := key.Hash()
	return h[:]
}

// Begin begins a change set.
func (d *Database) Begin(prefix *record.Key, writable bool) keyvalue.ChangeSet {
	// Use a read-only transaction for reading
	rd, err := d.bolt.Begin(false)

	discard := func() {
		if rd != nil {
			_ = rd.Rollback()
		}
	}

	get := func(key *record.Key) ([]byte, error) {
		return d.get(rd, err, key)
	}

	var commit memory.CommitFunc
	if writable {
		commit = func(entries map[[32]byte]memory.Entry) error {
			return d.commit(rd, entries)
		}
	}

	forEach := func(fn func(*record.Key, []byte) error) error {
		return d.forEach(rd, err, fn)
	}

	// The memory changeset caches entries in a map so Get will see values
	// updated with Put, regardless of the underlying transaction and write
	// batch behavior
	return memory.NewChangeSet(memory.ChangeSetOptions{
		Prefix:  prefix,
		Get:     get,
		Commit:  commit,
		ForEach: forEach,
		Discard: discard,
	})
}

func (d *Database) get(txn *bolt.Tx, err error, key *record.Key) ([]byte, error) {
	if err != nil {
		return nil, err
	}

	v := txn.Bucket(bucket).Get(d.key(key))
	if v == nil {
		return nil, (*keyvalue.NotFoundError)(key)
	}

	u := make([]byte, len(v))
	copy(u, v)
	return u, nil
}

func (d *Database) commit(rd *bolt.Tx, entries map[[32]byte]memory.Entry) error {
	// Discard the read transaction to unlock the database
	if rd != nil {
		_ = rd.Rollback()
	}

	return d.bolt.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		for _, e := range entries {
			var err error
			if e.Delete {
				err = b.Delete(d.key(e.Key))
			} else {
				err = b.Put(d.key(e.Key), e.Value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *Database) forEach(txn *bolt.Tx, err error, fn func(*record.Key, []byte) error) error {
	if err != nil {
		return err
	}

	return txn.Bucket(bucket).ForEach(func(k, v []byte) error {
		key := record.KeyFromHash(record.KeyHash(k))

		u := make([]byte, len(v))
		copy(u, v)
		return fn(key, u)
	})
}

func (d *Database) Close() error {
	return d.bolt.Close()
}
