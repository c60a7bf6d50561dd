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

// Pareto samples random values from the Pareto distribution with shape
// alpha and scale 1, via inversion of the CDF.
type Pareto struct {
	r     *rng.Rand
	alpha float64
}

// NewPareto returns an instance of the Pareto sampler.
func NewPareto(r *rng.Rand, alpha float64) *Pareto {
	return &Pareto{
		r:     r,
		alpha: alpha,
	}
}

// Sample samples a value from the Pareto distribution.
func (p *Pareto) Sample() float64 {
	return 1 / math.Pow(1-p.r.Float64(), 1/p.alpha)
}
