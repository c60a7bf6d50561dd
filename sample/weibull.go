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

// Weibull samples random values from the Weibull distribution with
// scale alpha and shape beta, via inversion of the CDF.
type Weibull struct {
	r     *rng.Rand
	alpha float64
	beta  float64
}

// NewWeibull returns an instance of the Weibull sampler.
func NewWeibull(r *rng.Rand, alpha, beta float64) *Weibull {
	return &Weibull{
		r:     r,
		alpha: alpha,
		beta:  beta,
	}
}

// Sample samples a value from the Weibull distribution.
func (w *Weibull) Sample() float64 {
	return w.alpha * math.Pow(-math.Log(1-w.r.Float64()), 1/w.beta)
}
