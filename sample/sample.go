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

// Sampler is the interface implemented by all continuous distribution
// samplers. Sample never fails for a sampler obtained from one of the
// constructors in this package; parameter validation happens at
// construction time.
type Sampler interface {
	Sample() float64
}

// IntSampler is the interface implemented by integer-valued samplers.
type IntSampler interface {
	Sample() int64
}
