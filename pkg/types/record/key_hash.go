// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package record

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

const KeyHashLength = 32

type KeyHash [KeyHashLength]byte

// String hex encodes the key hash.
func (k KeyHash) String() string {
	return fmt.Sprintf("%X", k[:])
}

// MarshalJSON is implemented for JSON-based logging
func (k KeyHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Append hashes each value into the key hash, building a hash chain.
func (k KeyHash) Append(key ...interface{}) KeyHash {
	for _, key := range key {
		bytes := keyBytes(key)
		b := make([]byte, KeyHashLength+len(bytes))
		copy(b, k[:])
		copy(b[KeyHashLength:], bytes)
		k = sha256.Sum256(b)
	}
	return k
}

func keyBytes(v interface{}) []byte {
	switch v := v.(type) {
	case nil:
		return []byte{}
	case []byte:
		return v
	case [32]byte:
		return v[:]
	case *[32]byte:
		return v[:]
	case KeyHash:
		return v[:]
	case string:
		return []byte(v)
	case interface{ Bytes() []byte }:
		return v.Bytes()
	case uint:
		return encodeUint(uint64(v))
	case uint8:
		return encodeUint(uint64(v))
	case uint16:
		return encodeUint(uint64(v))
	case uint32:
		return encodeUint(uint64(v))
	case uint64:
		return encodeUint(v)
	case int:
		return encodeInt(int64(v))
	case int64:
		return encodeInt(v)
	default:
		panic(fmt.Errorf("cannot use %T as a key part", v))
	}
}

func encodeUint(v uint64) []byte {
	var buf [16]byte
	n := binary.PutUvarint(buf[:], v)
	return buf[:n]
}

func encodeInt(v int64) []byte {
	var buf [16]byte
	n := binary.PutVarint(buf[:], v)
	return buf[:n]
}
