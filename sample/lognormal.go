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

// LogNormal samples random values whose logarithm follows the Normal
// distribution with mean mu and standard deviation sigma.
type LogNormal struct {
	*Normal
}

// NewLogNormal returns an instance of the LogNormal sampler.
func NewLogNormal(r *rng.Rand, mu, sigma float64) *LogNormal {
	return &LogNormal{
		Normal: NewNormal(r, mu, sigma),
	}
}

// Sample samples a value from the log-normal distribution.
func (l *LogNormal) Sample() float64 {
	return math.Exp(l.Normal.Sample())
}
