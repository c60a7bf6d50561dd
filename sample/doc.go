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

// Package sample includes samplers for sampling random values
// from different probability distributions, and samplers for
// choosing random elements from finite collections and streams.
//
// Package sample provides the Sampler interface along with
// implementations of this interface for the uniform, normal,
// log-normal, exponential, Pareto, Weibull and triangular
// distributions. Every sampler draws from an explicit *rng.Rand,
// so a fixed seed reproduces a fixed sequence of samples.
//
// The collection samplers select elements from slices and from
// streams of unknown length. Streams are consumed in a single pass
// with memory proportional to the requested sample size, using
// reservoir sampling.
package sample
