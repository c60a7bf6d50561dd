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
)

// Errors returned by the collection samplers and the distribution
// constructors. Match them with errors.Is; wrapped variants carry the
// offending values.
var (
	// ErrEmptyInput is returned when an operation needs at least one
	// element but the population contains none.
	ErrEmptyInput = errors.New("population contains no elements")

	// ErrNegativeSize is returned when a negative sample size is
	// requested.
	ErrNegativeSize = errors.New("sample size is negative")

	// ErrSampleTooLarge is returned when a sample without replacement
	// is requested with a size larger than the population.
	ErrSampleTooLarge = errors.New("sample size larger than population")

	// ErrInvalidBounds is returned when distribution bounds are not of
	// the proper form.
	ErrInvalidBounds = errors.New("distribution bounds are not of the proper form")
)
