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

// Normal samples random values from the Normal (Gaussian) probability
// distribution with mean mu and standard deviation sigma.
type Normal struct {
	r     *rng.Rand
	mu    float64
	sigma float64
}

// NewNormal returns an instance of the Normal sampler.
func NewNormal(r *rng.Rand, mu, sigma float64) *Normal {
	return &Normal{
		r:     r,
		mu:    mu,
		sigma: sigma,
	}
}

// Sample samples a value from the Normal distribution by scaling and
// shifting a standard normal draw.
func (n *Normal) Sample() float64 {
	return n.mu + n.sigma*n.r.NormFloat64()
}
