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

import "github.com/ajroetker/go-rescale/hwy"

// BaseCountInRange counts the elements of v inside the inclusive window
// [lo, hi] and, among those, the ones that are >= threshold. NaN elements
// fail every comparison and are never counted.
//
// Example:
//
//	in, above := BaseCountInRange([]float64{1, 2, 3, 4, 5}, 2, 4, 3)  // 3, 2
func BaseCountInRange[T hwy.Floats](v []T, lo, hi, threshold T) (inRange, atOrAbove int) {
	if len(v) == 0 {
		return 0, 0
	}

	loVec := hwy.Set(lo)
	hiVec := hwy.Set(hi)
	threshVec := hwy.Set(threshold)
	lanes := loVec.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		va := hwy.Load(v[i:])
		in := hwy.MaskAnd(hwy.GreaterEqual(va, loVec), hwy.LessEqual(va, hiVec))
		inRange += in.CountTrue()
		atOrAbove += hwy.MaskAnd(in, hwy.GreaterEqual(va, threshVec)).CountTrue()
	}

	// Tail: masked-out lanes load as zero, which may fall inside the window,
	// so every comparison is ANDed with the tail mask.
	if remaining := len(v) - i; remaining > 0 {
		tail := hwy.TailMask[T](remaining)
		va := hwy.MaskLoad(tail, v[i:])
		in := hwy.MaskAnd(tail, hwy.MaskAnd(hwy.GreaterEqual(va, loVec), hwy.LessEqual(va, hiVec)))
		inRange += in.CountTrue()
		atOrAbove += hwy.MaskAnd(in, hwy.GreaterEqual(va, threshVec)).CountTrue()
	}

	return inRange, atOrAbove
}
