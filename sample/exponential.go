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
	"math"

	"github.com/fentec-project/gorand/rng"
)

// Exponential samples random values from the exponential distribution
// with rate lambda, via inversion of the CDF. Lambda must be nonzero;
// a zero rate produces Inf values.
type Exponential struct {
	r      *rng.Rand
	lambda float64
}

// NewExponential returns an instance of the Exponential sampler.
func NewExponential(r *rng.Rand, lambda float64) *Exponential {
	return &Exponential{
		r:      r,
		lambda: lambda,
	}
}

// Sample samples a value from the exponential distribution.
func (e *Exponential) Sample() float64 {
	return -math.Log(1-e.r.Float64()) / e.lambda
}
