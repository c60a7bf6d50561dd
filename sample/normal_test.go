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

	"github.com/stretchr/testify/assert"

	"github.com/fentec-project/gorand/data"
	"github.com/fentec-project/gorand/rng"
	"github.com/fentec-project/gorand/sample"
)

func TestSample_Normal(t *testing.T) {
	c := sample.NewNormal(rng.New(1), 0, 10)
	vec := data.NewRandomVector(10000, c)

	me := vec.Mean()
	v := vec.Var()
	// me should be around 0 and v should be around 100
	assert.True(t, me < 0.5, "mean value of the normal distribution is too big")
	assert.True(t, me > -0.5, "mean value of the normal distribution is too small")
	assert.True(t, v < 110, "variance of the normal distribution is too big")
	assert.True(t, v > 90, "variance of the normal distribution is too small")
}

func TestSample_NormalShifted(t *testing.T) {
	c := sample.NewNormal(rng.New(2), 5, 2)
	vec := data.NewRandomVector(10000, c)

	me := vec.Mean()
	v := vec.Var()
	assert.True(t, me > 4.9 && me < 5.1,
		"mean value of the shifted normal distribution is off")
	assert.True(t, v > 3.6 && v < 4.4,
		"variance of the shifted normal distribution is off")
}

func TestSample_LogNormal(t *testing.T) {
	c := sample.NewLogNormal(rng.New(3), 0, 0.5)
	vec := data.NewRandomVector(10000, c)

	assert.True(t, vec.Min() > 0, "log-normal samples must be positive")

	me := vec.Mean()
	// the mean of LogNormal(0, 0.5) is exp(0.125), around 1.133
	assert.True(t, me > 1.05 && me < 1.22,
		"mean value of the log-normal distribution is off")
}
