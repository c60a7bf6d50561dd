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

// Package data provides a vector of samples together with the summary
// statistics used to inspect sampler output.
package data

import (
	"math"

	"github.com/fentec-project/gorand/rng"
	"github.com/fentec-project/gorand/sample"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance with random elements
// sampled by the provided sample.Sampler.
func NewRandomVector(len int, sampler sample.Sampler) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return NewVector(vec)
}

// NewRandomDetVector returns a new Vector instance with elements drawn
// uniformly from [low, high) by a deterministic pseudo-random
// generator. The key determines the generator, so equal keys yield
// equal vectors.
func NewRandomDetVector(len int, low, high float64, key *[32]byte) Vector {
	r := rng.NewSource(rng.NewKeySource(key))

	return NewRandomVector(len, sample.NewUniformRange(r, low, high))
}

// NewConstantVector returns a new Vector instance with all elements
// set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Mean returns the arithmetic mean of the entries. The mean of an
// empty vector is NaN.
func (v Vector) Mean() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c
	}

	return sum / float64(len(v))
}

// Var returns the population variance of the entries. The variance of
// an empty vector is NaN.
func (v Vector) Var() float64 {
	mean := v.Mean()
	sum := 0.0
	for _, c := range v {
		d := c - mean
		sum += d * d
	}

	return sum / float64(len(v))
}

// Min returns the smallest entry. The minimum of an empty vector is
// +Inf.
func (v Vector) Min() float64 {
	min := math.Inf(1)
	for _, c := range v {
		if c < min {
			min = c
		}
	}

	return min
}

// Max returns the largest entry. The maximum of an empty vector is
// -Inf.
func (v Vector) Max() float64 {
	max := math.Inf(-1)
	for _, c := range v {
		if c > max {
			max = c
		}
	}

	return max
}
