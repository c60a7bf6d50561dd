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

package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fentec-project/gorand/data"
	"github.com/fentec-project/gorand/rng"
	"github.com/fentec-project/gorand/sample"
)

func TestVector_NewRandomVector(t *testing.T) {
	u := sample.NewUniformRange(rng.New(1), 2, 4)
	v := data.NewRandomVector(1000, u)

	assert.Len(t, []float64(v), 1000)
	assert.True(t, v.Min() >= 2, "element below sampler lower bound")
	assert.True(t, v.Max() < 4, "element at or above sampler upper bound")
}

func TestVector_NewRandomDetVector(t *testing.T) {
	key := [32]byte{1, 2, 3}
	v1 := data.NewRandomDetVector(100, 0, 1, &key)
	v2 := data.NewRandomDetVector(100, 0, 1, &key)

	assert.Equal(t, v1, v2, "same key should reproduce the same vector")
	assert.True(t, v1.Min() >= 0 && v1.Max() < 1)

	otherKey := [32]byte{4, 5, 6}
	v3 := data.NewRandomDetVector(100, 0, 1, &otherKey)
	assert.NotEqual(t, v1, v3, "different keys should give different vectors")
}

func TestVector_NewConstantVector(t *testing.T) {
	v := data.NewConstantVector(5, 3.5)

	assert.Equal(t, data.NewVector([]float64{3.5, 3.5, 3.5, 3.5, 3.5}), v)
	assert.Equal(t, 3.5, v.Mean())
	assert.Equal(t, 0.0, v.Var())
}

func TestVector_Copy(t *testing.T) {
	v := data.NewVector([]float64{1, 2, 3})
	w := v.Copy()
	w[0] = 9

	assert.Equal(t, 1.0, v[0], "copy must not share storage")
}

func TestVector_Statistics(t *testing.T) {
	v := data.NewVector([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 5.0, v.Mean())
	assert.Equal(t, 4.0, v.Var())
	assert.Equal(t, 2.0, v.Min())
	assert.Equal(t, 9.0, v.Max())
}
