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

package sample

import (
	"github.com/fentec-project/gorand/rng"
)

// UniformRange samples random values from the interval [low, high).
type UniformRange struct {
	r    *rng.Rand
	low  float64
	high float64
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformRange(r *rng.Rand, low, high float64) *UniformRange {
	return &UniformRange{
		r:    r,
		low:  low,
		high: high,
	}
}

// Sample samples a random value from the interval [low, high).
func (u *UniformRange) Sample() float64 {
	return u.r.Float64Range(u.low, u.high)
}

// NewUniform returns an instance of the UniformRange sampler over the
// interval [0, high). It accepts an upper bound on the sampled values.
func NewUniform(r *rng.Rand, high float64) *UniformRange {
	return NewUniformRange(r, 0, high)
}

// UniformIntRange samples random integers from the interval [low, high).
type UniformIntRange struct {
	r    *rng.Rand
	low  int64
	high int64
}

// NewUniformIntRange returns an instance of the UniformIntRange sampler.
// The draw is integer-native, so no precision is lost for bounds that a
// float64 cannot represent exactly.
func NewUniformIntRange(r *rng.Rand, low, high int64) *UniformIntRange {
	return &UniformIntRange{
		r:    r,
		low:  low,
		high: high,
	}
}

// Sample samples a random integer from the interval [low, high).
func (u *UniformIntRange) Sample() int64 {
	return u.r.Int63Range(u.low, u.high)
}

// NewBit returns a sampler of single random bits (value 0 or 1).
func NewBit(r *rng.Rand) *UniformIntRange {
	return NewUniformIntRange(r, 0, 2)
}
