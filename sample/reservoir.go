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
	"github.com/pkg/errors"

	"github.com/fentec-project/gorand/rng"
)

// Reservoir selects a uniformly random subset of k elements from a
// stream of unknown length in a single pass with O(k) memory
// (Algorithm R). Elements are pushed one at a time with Add; the
// sampled subset is read with Result once the stream ends.
type Reservoir[T any] struct {
	r    *rng.Rand
	k    int
	seen int64
	buf  []T
}

// NewReservoir returns a reservoir holding a sample of size k.
// It returns ErrNegativeSize if k is negative.
func NewReservoir[T any](r *rng.Rand, k int) (*Reservoir[T], error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "reservoir size %d", k)
	}

	return &Reservoir[T]{
		r:   r,
		k:   k,
		buf: make([]T, 0, k),
	}, nil
}

// Add offers the next stream element to the reservoir. The first k
// elements seed the reservoir in order; the element at 1-based
// position i > k overwrites a uniformly chosen slot with probability
// k/i, which keeps every k-subset of the elements seen so far equally
// likely.
func (s *Reservoir[T]) Add(x T) {
	s.seen++
	if len(s.buf) < s.k {
		s.buf = append(s.buf, x)
		return
	}
	if s.k == 0 {
		return
	}
	if j := s.r.Int63n(s.seen); j < int64(s.k) {
		s.buf[j] = x
	}
}

// Seen returns the number of elements offered so far.
func (s *Reservoir[T]) Seen() int64 {
	return s.seen
}

// Result returns the sampled subset, in reservoir insertion order
// rather than stream order. It returns ErrSampleTooLarge if the stream
// ended before k elements were offered.
func (s *Reservoir[T]) Result() ([]T, error) {
	if len(s.buf) < s.k {
		return nil, errors.Wrapf(ErrSampleTooLarge,
			"%d elements requested, %d seen", s.k, s.seen)
	}

	return s.buf, nil
}

// SampleFunc selects a uniformly random subset of k elements, without
// replacement, from the stream produced by next. The stream is
// consumed in a single pass with O(k) memory. It returns ErrEmptyInput
// if the stream is empty and k > 0, and ErrSampleTooLarge if the
// stream holds fewer than k elements.
func SampleFunc[T any](r *rng.Rand, next func() (T, bool), k int) ([]T, error) {
	res, err := NewReservoir[T](r, k)
	if err != nil {
		return nil, err
	}

	for {
		x, ok := next()
		if !ok {
			break
		}
		res.Add(x)
	}

	if res.seen == 0 && k > 0 {
		return nil, ErrEmptyInput
	}

	return res.Result()
}

// Sample selects a uniformly random subset of k elements of xs,
// without replacement. The result holds k distinct positions of xs in
// reservoir insertion order. A request with k = 0 yields an empty
// result even for an empty xs.
func Sample[T any](r *rng.Rand, xs []T, k int) ([]T, error) {
	if k > len(xs) && len(xs) > 0 {
		return nil, errors.Wrapf(ErrSampleTooLarge,
			"%d elements requested from population of %d", k, len(xs))
	}

	i := 0
	return SampleFunc(r, func() (T, bool) {
		if i >= len(xs) {
			var zero T
			return zero, false
		}
		x := xs[i]
		i++
		return x, true
	}, k)
}

// SampleReplace draws k elements of xs independently and uniformly,
// with replacement. It returns ErrNegativeSize if k is negative and
// ErrEmptyInput if xs is empty and k > 0.
func SampleReplace[T any](r *rng.Rand, xs []T, k int) ([]T, error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "sample size %d", k)
	}
	if len(xs) == 0 {
		if k > 0 {
			return nil, ErrEmptyInput
		}
		return []T{}, nil
	}

	out := make([]T, k)
	for i := range out {
		out[i] = xs[r.Intn(len(xs))]
	}

	return out, nil
}

// SampleReplaceFunc draws k independent uniform elements, with
// replacement, from the stream produced by next. It runs k
// reservoir-of-1 samples simultaneously: every slot starts at the
// first element and is replaced by the i-th element with probability
// 1/i, so the stream is traversed exactly once with O(k) memory.
func SampleReplaceFunc[T any](r *rng.Rand, next func() (T, bool), k int) ([]T, error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "sample size %d", k)
	}

	first, ok := next()
	if !ok {
		if k > 0 {
			return nil, ErrEmptyInput
		}
		return []T{}, nil
	}

	out := make([]T, k)
	for j := range out {
		out[j] = first
	}

	for i := int64(2); ; i++ {
		x, ok := next()
		if !ok {
			break
		}
		for j := range out {
			if r.Int63n(i) == 0 {
				out[j] = x
			}
		}
	}

	return out, nil
}
