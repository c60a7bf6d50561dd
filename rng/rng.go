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

// Package rng provides the seedable random source consumed by all
// sampling operations in this library.
//
// A Rand created with the same seed produces the same sequence of
// values for the same sequence of calls, which makes every sampler
// built on top of it reproducible.
package rng

import (
	"math/rand"
)

// Rand is a seedable pseudo-random source. It embeds *math/rand.Rand,
// so all of its draw methods (Float64, Intn, NormFloat64, ...) are
// available directly, extended with half-open range draws.
//
// A Rand returned by New is not safe for concurrent use; either confine
// one instance per goroutine or construct it with NewLocked.
type Rand struct {
	*rand.Rand
}

// New returns a Rand seeded with the given seed.
func New(seed int64) *Rand {
	return NewSource(rand.NewSource(seed))
}

// NewLocked returns a Rand seeded with the given seed and backed by a
// LockedSource64, making it safe for concurrent use.
func NewLocked(seed int64) *Rand {
	return NewSource(NewLockedSource64(rand.NewSource(seed)))
}

// NewSource returns a Rand drawing from the provided source.
func NewSource(src rand.Source) *Rand {
	return &Rand{Rand: rand.New(src)}
}

// Float64Range returns a uniform float64 from the interval [low, high).
func (r *Rand) Float64Range(low, high float64) float64 {
	return low + r.Float64()*(high-low)
}

// Float32Range returns a uniform float32 from the interval [low, high).
func (r *Rand) Float32Range(low, high float32) float32 {
	return low + r.Float32()*(high-low)
}

// IntRange returns a uniform int from the interval [low, high).
// When low == high it returns low.
func (r *Rand) IntRange(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.Intn(high-low)
}

// Int63Range returns a uniform int64 from the interval [low, high).
// When low == high it returns low. The width high - low must not
// overflow int64.
func (r *Rand) Int63Range(low, high int64) int64 {
	if high <= low {
		return low
	}
	return low + r.Int63n(high-low)
}
