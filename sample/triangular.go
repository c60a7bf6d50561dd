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

	"github.com/pkg/errors"

	"github.com/fentec-project/gorand/rng"
)

// Triangular samples random values from the triangular distribution on
// [low, high] with the given mode, via the piecewise inverse of the CDF.
type Triangular struct {
	r    *rng.Rand
	low  float64
	high float64
	mode float64
}

// NewTriangular returns an instance of the Triangular sampler. The
// bounds must satisfy low <= mode <= high and low < high, otherwise
// ErrInvalidBounds is returned.
func NewTriangular(r *rng.Rand, low, high, mode float64) (*Triangular, error) {
	if mode < low || mode > high || low >= high {
		return nil, errors.Wrapf(ErrInvalidBounds,
			"triangular bounds low=%v high=%v mode=%v", low, high, mode)
	}

	return &Triangular{
		r:    r,
		low:  low,
		high: high,
		mode: mode,
	}, nil
}

// Sample samples a value from the triangular distribution. When mode
// equals low the left branch has probability zero, and symmetrically
// for mode equal to high.
func (t *Triangular) Sample() float64 {
	u := t.r.Float64()
	if u < (t.mode-t.low)/(t.high-t.low) {
		return t.low + math.Sqrt(u*(t.high-t.low)*(t.mode-t.low))
	}
	return t.high - math.Sqrt((1-u)*(t.high-t.low)*(t.high-t.mode))
}
