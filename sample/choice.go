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

// Choice returns one element of xs chosen uniformly at random.
// It returns ErrEmptyInput if xs is empty.
func Choice[T any](r *rng.Rand, xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}

	return xs[r.Intn(len(xs))], nil
}

// ChoiceFunc returns one element chosen uniformly at random from the
// stream produced by next, which yields elements until it reports
// false. The stream is consumed in a single pass with constant memory
// and without knowing its length in advance: the i-th element replaces
// the current pick with probability 1/i. It returns ErrEmptyInput if
// the stream yields no elements.
func ChoiceFunc[T any](r *rng.Rand, next func() (T, bool)) (T, error) {
	pick, ok := next()
	if !ok {
		var zero T
		return zero, ErrEmptyInput
	}

	for i := int64(2); ; i++ {
		x, ok := next()
		if !ok {
			return pick, nil
		}
		if r.Int63n(i) == 0 {
			pick = x
		}
	}
}
