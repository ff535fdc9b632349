// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memory

import (
	"sync"

	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/types/record"
)

// An Entry is a pending write: a value, or a deletion.
type Entry struct {
	Key    *record.Key
	Value  []byte
	Delete bool
}

type GetFunc func(*record.Key) ([]byte, error)
type CommitFunc func(map[[32]byte]Entry) error
type ForEachFunc func(func(*record.Key, []byte) error) error

type ChangeSetOptions struct {
	Prefix  *record.Key
	Get     GetFunc
	Commit  CommitFunc
	ForEach ForEachFunc
	Discard func()
}

// ChangeSet caches entries in a map so Get sees values updated with Put,
// regardless of the underlying transaction and write batch behavior. Nothing
// reaches the underlying database until Commit.
type ChangeSet struct {
	opts    ChangeSetOptions
	mu      sync.RWMutex
	entries map[[32]byte]Entry
}

var _ keyvalue.ChangeSet = (*ChangeSet)(nil)

func NewChangeSet(opts ChangeSetOptions) *ChangeSet {
	return &ChangeSet{opts: opts}
}

func (c *ChangeSet) key(key *record.Key) *record.Key {
	return c.opts.Prefix.AppendKey(key)
}

func (c *ChangeSet) Get(key *record.Key) ([]byte, error) {
	key = c.key(key)

	c.mu.RLock()
	entry, ok := c.entries[key.Hash()]
	c.mu.RUnlock()
	if ok {
		if entry.Delete {
			return nil, (*keyvalue.NotFoundError)(key)
		}
		return entry.Value, nil
	}

	if c.opts.Get == nil {
		return nil, (*keyvalue.NotFoundError)(key)
	}
	return c.opts.Get(key)
}

func (c *ChangeSet) Put(key *record.Key, value []byte) error {
	if c.opts.Commit == nil {
		return errors.NotReady.With("change set is not writable")
	}

	key = c.key(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = map[[32]byte]Entry{}
	}
	c.entries[key.Hash()] = Entry{Key: key, Value: value}
	return nil
}

func (c *ChangeSet) Delete(key *record.Key) error {
	if c.opts.Commit == nil {
		return errors.NotReady.With("change set is not writable")
	}

	key = c.key(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = map[[32]byte]Entry{}
	}
	c.entries[key.Hash()] = Entry{Key: key, Delete: true}
	return nil
}

func (c *ChangeSet) ForEach(fn func(*record.Key, []byte) error) error {
	c.mu.RLock()
	pending := make(map[[32]byte]Entry, len(c.entries))
	for h, e := range c.entries {
		pending[h] = e
	}
	c.mu.RUnlock()

	for _, e := range pending {
		if e.Delete {
			continue
		}
		err := fn(e.Key, e.Value)
		if err != nil {
			return err
		}
	}

	if c.opts.ForEach == nil {
		return nil
	}
	return c.opts.ForEach(func(key *record.Key, value []byte) error {
		// Skip entries shadowed by a pending write
		if _, ok := pending[key.Hash()]; ok {
			return nil
		}
		return fn(key, value)
	})
}

// Begin begins a sub-change set. Committing the sub-change set stages its
// entries in the parent; discarding the parent discards them.
func (c *ChangeSet) Begin(prefix *record.Key, writable bool) keyvalue.ChangeSet {
	opts := ChangeSetOptions{
		Prefix:  prefix,
		Get:     c.Get,
		ForEach: c.ForEach,
	}
	if writable {
		opts.Commit = func(entries map[[32]byte]Entry) error {
			for _, e := range entries {
				var err error
				if e.Delete {
					err = c.Delete(e.Key)
				} else {
					err = c.Put(e.Key, e.Value)
				}
				if err != nil {
					return err
				}
			}
			return nil
		}
	}
	return NewChangeSet(opts)
}

// Commit applies pending changes in a single call to the underlying store.
// Either every entry lands or none does.
func (c *ChangeSet) Commit() error {
	c.mu.Lock()
	entries := c.entries
	c.entries = nil
	c.mu.Unlock()

	if c.opts.Commit == nil {
		return errors.NotReady.With("change set is not writable")
	}
	if len(entries) == 0 {
		return nil
	}
	return c.opts.Commit(entries)
}

// Discard drops pending changes.
func (c *ChangeSet) Discard() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()

	if c.opts.Discard != nil {
		c.opts.Discard()
	}
}
