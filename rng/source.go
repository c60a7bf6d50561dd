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
	"math/rand"
	"sync"
)

var _ rand.Source64 = (*LockedSource64)(nil)

// LockedSource64 wraps a rand.Source with a mutex so a single Rand can
// be shared between goroutines. Samplers built on an unlocked source
// must otherwise be confined to one goroutine.
type LockedSource64 struct {
	mu  sync.Mutex
	src rand.Source
	s64 rand.Source64
}

// NewLockedSource64 returns a LockedSource64 guarding src.
func NewLockedSource64(src rand.Source) *LockedSource64 {
	ls := &LockedSource64{src: src}
	ls.setS64()
	return ls
}

func (ls *LockedSource64) setS64() {
	if s64, ok := ls.src.(rand.Source64); ok {
		ls.s64 = s64
		return
	}
	// *rand.Rand implements rand.Source64 over any source by calling
	// Int63 twice per Uint64.
	ls.s64 = rand.New(ls.src)
}

// Int63 calls the underlying source's Int63 with the lock held.
func (ls *LockedSource64) Int63() (n int64) {
	ls.mu.Lock()
	n = ls.src.Int63()
	ls.mu.Unlock()
	return
}

// Uint64 calls the underlying source's Uint64 with the lock held.
func (ls *LockedSource64) Uint64() (n uint64) {
	ls.mu.Lock()
	n = ls.s64.Uint64()
	ls.mu.Unlock()
	return
}

// Seed reseeds the underlying source with the lock held.
func (ls *LockedSource64) Seed(seed int64) {
	ls.mu.Lock()
	ls.src.Seed(seed)
	ls.setS64()
	ls.mu.Unlock()
}
