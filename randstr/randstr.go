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

// Package randstr generates random strings over character alphabets.
// Characters are drawn independently and uniformly from the chosen
// alphabet, with replacement.
package randstr

import (
	"github.com/pkg/errors"

	"github.com/fentec-project/gorand/rng"
)

const (
	digits    = "0123456789"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercase = "abcdefghijklmnopqrstuvwxyz"
)

// Predefined alphabets for Generate.
var (
	// Numeric contains the decimal digits.
	Numeric = []rune(digits)

	// Alphabetic contains the upper and lower case ASCII letters.
	Alphabetic = []rune(uppercase + lowercase)

	// Alphanumeric contains the ASCII letters and decimal digits.
	Alphanumeric = []rune(uppercase + lowercase + digits)

	// ASCII contains the printable ASCII characters, space through
	// tilde.
	ASCII = asciiRunes()
)

func asciiRunes() []rune {
	rs := make([]rune, 0, '~'-' '+1)
	for c := ' '; c <= '~'; c++ {
		rs = append(rs, c)
	}
	return rs
}

// Errors returned by Generate.
var (
	// ErrNegativeLength is returned when a negative string length is
	// requested.
	ErrNegativeLength = errors.New("string length is negative")

	// ErrEmptyAlphabet is returned when a string of positive length is
	// requested over an alphabet with no characters.
	ErrEmptyAlphabet = errors.New("alphabet contains no characters")
)

// Generate returns a string of exactly n characters, each chosen
// independently and uniformly from alphabet. A nil alphabet selects
// the default alphabet of all Unicode scalar values (surrogates
// excluded); a non-nil empty alphabet with n > 0 is ErrEmptyAlphabet.
// A length of zero always yields the empty string.
func Generate(r *rng.Rand, n int, alphabet []rune) (string, error) {
	if n < 0 {
		return "", errors.Wrapf(ErrNegativeLength, "length %d", n)
	}
	if n == 0 {
		return "", nil
	}
	if alphabet == nil {
		return anyRunes(r, n), nil
	}
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}

	rs := make([]rune, n)
	for i := range rs {
		rs[i] = alphabet[r.Intn(len(alphabet))]
	}

	return string(rs), nil
}

// anyRunes draws n uniform Unicode scalar values. The surrogate block
// is cut out of the draw range so every character is a valid rune.
func anyRunes(r *rng.Rand, n int) string {
	const (
		surrogateMin = 0xD800
		surrogateLen = 0xE000 - surrogateMin
		scalarCount  = 0x110000 - surrogateLen
	)

	rs := make([]rune, n)
	for i := range rs {
		c := rune(r.Intn(scalarCount))
		if c >= surrogateMin {
			c += surrogateLen
		}
		rs[i] = c
	}

	return string(rs)
}

// Numerics returns a string of n random decimal digits. A length
// n <= 0 yields the empty string.
func Numerics(r *rng.Rand, n int) string {
	s, _ := Generate(r, n, Numeric)
	return s
}

// Alphabetics returns a string of n random ASCII letters. A length
// n <= 0 yields the empty string.
func Alphabetics(r *rng.Rand, n int) string {
	s, _ := Generate(r, n, Alphabetic)
	return s
}

// Alphanumerics returns a string of n random ASCII letters and digits.
// A length n <= 0 yields the empty string.
func Alphanumerics(r *rng.Rand, n int) string {
	s, _ := Generate(r, n, Alphanumeric)
	return s
}

// ASCIIs returns a string of n random printable ASCII characters.
// A length n <= 0 yields the empty string.
func ASCIIs(r *rng.Rand, n int) string {
	s, _ := Generate(r, n, ASCII)
	return s
}
