// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rescale

import (
	stdmath "math"

	"github.com/ajroetker/go-rescale/hwy"
)

// BaseMinMax returns the minimum and maximum of v in a single pass, skipping
// NaN elements. ok is false when v has no non-NaN element.
//
// Example:
//
//	lo, hi, ok := BaseMinMax([]float32{3, 1, NaN, 5})  // 1, 5, true
func BaseMinMax[T hwy.Floats](v []T) (lo, hi T, ok bool) {
	lo = T(stdmath.Inf(1))
	hi = T(stdmath.Inf(-1))
	if len(v) == 0 {
		return lo, hi, false
	}

	minVec := hwy.Set(lo)
	maxVec := hwy.Set(hi)
	lanes := minVec.NumLanes()

	// hwy.Min/Max return the second operand for NaN lanes of the first, so
	// loading the data as the first operand drops NaN without a mask.
	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		va := hwy.Load(v[i:])
		minVec = hwy.Min(va, minVec)
		maxVec = hwy.Max(va, maxVec)
	}

	lo = hwy.ReduceMin(minVec)
	hi = hwy.ReduceMax(maxVec)

	// Tail; NaN fails both comparisons.
	for ; i < len(v); i++ {
		if v[i] < lo {
			lo = v[i]
		}
		if v[i] > hi {
			hi = v[i]
		}
	}

	// Only reachable when every element was NaN.
	if lo > hi {
		return lo, hi, false
	}
	return lo, hi, true
}
