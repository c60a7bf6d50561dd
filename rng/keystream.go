/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rng

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/salsa20"
)

var _ rand.Source64 = (*KeySource)(nil)

// keyStreamChunk is the number of keystream bytes generated per nonce.
const keyStreamChunk = 512

// KeySource is a deterministic rand.Source64 whose output is the
// salsa20 keystream of a 32-byte key. Two KeySource instances built
// from the same key produce identical sequences, which makes sampling
// reproducible across runs and machines independently of math/rand's
// generator.
type KeySource struct {
	key   [32]byte
	nonce uint64
	buf   []byte
	off   int
}

// NewKeySource returns a KeySource producing the keystream of key.
func NewKeySource(key *[32]byte) *KeySource {
	s := &KeySource{key: *key}
	s.refill()
	return s
}

func (s *KeySource) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.nonce)
	s.nonce++

	if s.buf == nil {
		s.buf = make([]byte, keyStreamChunk)
	} else {
		for i := range s.buf {
			s.buf[i] = 0
		}
	}
	// XOR-ing a zero buffer with the keystream leaves the keystream.
	salsa20.XORKeyStream(s.buf, s.buf, nonce[:], &s.key)
	s.off = 0
}

// Uint64 returns the next 8 keystream bytes as an integer.
func (s *KeySource) Uint64() uint64 {
	if s.off+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}

// Int63 implements rand.Source.
func (s *KeySource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed restarts the source with a key expanded from seed. The expansion
// runs seed through one salsa20 block so that nearby seeds do not yield
// nearby keys.
func (s *KeySource) Seed(seed int64) {
	var seedKey [32]byte
	binary.LittleEndian.PutUint64(seedKey[:8], uint64(seed))

	var key [32]byte
	var nonce [8]byte
	salsa20.XORKeyStream(key[:], key[:], nonce[:], &seedKey)

	s.key = key
	s.nonce = 0
	s.buf = nil
	s.refill()
}
