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

// Shuffle permutes xs in place. Every permutation is equally likely.
func Shuffle[T any](r *rng.Rand, xs []T) {
	r.Rand.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}

// Shuffled returns a shuffled copy of xs, leaving xs unchanged.
func Shuffled[T any](r *rng.Rand, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	Shuffle(r, out)
	return out
}
