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

package sample_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentec-project/gorand/rng"
	"github.com/fentec-project/gorand/sample"
)

// sliceStream returns an iterator function yielding the elements of xs
// in order, the shape the streaming samplers consume.
func sliceStream[T any](xs []T) func() (T, bool) {
	i := 0
	return func() (T, bool) {
		if i >= len(xs) {
			var zero T
			return zero, false
		}
		x := xs[i]
		i++
		return x, true
	}
}

func TestChoice(t *testing.T) {
	r := rng.New(1)
	words := []string{"hello", "world", "how", "are", "you"}

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		w, err := sample.Choice(r, words)
		require.NoError(t, err)
		counts[w]++
	}

	for _, w := range words {
		// expected count is 200 per element
		assert.True(t, counts[w] > 120 && counts[w] < 280,
			"element %q chosen %d times, far from uniform", w, counts[w])
	}
}

func TestChoice_Empty(t *testing.T) {
	_, err := sample.Choice(rng.New(1), []int{})
	assert.True(t, errors.Is(err, sample.ErrEmptyInput))
}

func TestChoiceFunc(t *testing.T) {
	r := rng.New(2)
	xs := []int{10, 20, 30, 40}

	counts := make(map[int]int)
	for i := 0; i < 1000; i++ {
		x, err := sample.ChoiceFunc(r, sliceStream(xs))
		require.NoError(t, err)
		counts[x]++
	}

	for _, x := range xs {
		// expected count is 250 per element
		assert.True(t, counts[x] > 160 && counts[x] < 340,
			"element %d chosen %d times, far from uniform", x, counts[x])
	}
}

func TestChoiceFunc_SingleElement(t *testing.T) {
	x, err := sample.ChoiceFunc(rng.New(1), sliceStream([]int{7}))
	require.NoError(t, err)
	assert.Equal(t, 7, x)
}

func TestChoiceFunc_Empty(t *testing.T) {
	_, err := sample.ChoiceFunc(rng.New(1), sliceStream([]int{}))
	assert.True(t, errors.Is(err, sample.ErrEmptyInput))
}
