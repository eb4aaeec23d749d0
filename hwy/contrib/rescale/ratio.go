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
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-rescale/hwy"
)

// ThresholdRatio returns the fraction of the values of a inside the window
// [start, end] that are >= threshold. The window is inclusive on both ends
// and defaults to the data range; set it with WithMin / WithMax / WithRange.
//
// The threshold is required: NaN returns ErrInvalidArgument. An empty window
// (empty input, start > end, or no value inside) returns ErrEmptyRange.
//
// Example:
//
//	a, _ := FromSlice([]float64{1, 2, 3, 4, 5})
//	r, _ := ThresholdRatio(a, 3)                      // 0.6
//	r, _ = ThresholdRatio(a, 3, WithRange(2, 4))      // 0.666...
func ThresholdRatio[T hwy.Lanes](a *Array[T], threshold T, opts ...Option) (float64, error) {
	return ThresholdRatioSlice(a.data, threshold, opts...)
}

// ThresholdRatioSlice is ThresholdRatio over a flat slice. Element types
// other than float32 and float64 are promoted to float64.
func ThresholdRatioSlice[T hwy.Lanes](values []T, threshold T, opts ...Option) (float64, error) {
	switch v := any(values).(type) {
	case []float32:
		return thresholdRatio(v, any(threshold).(float32), opts)
	case []float64:
		return thresholdRatio(v, any(threshold).(float64), opts)
	default:
		return thresholdRatio(promote(values), float64(threshold), opts)
	}
}

func thresholdRatio[T hwy.Floats](values []T, threshold T, opts []Option) (float64, error) {
	if stdmath.IsNaN(float64(threshold)) {
		return 0, fmt.Errorf("%w: threshold is required", ErrInvalidArgument)
	}

	lo, hi, err := resolve(values, newBounds(opts))
	if err != nil {
		return 0, err
	}

	inRange, atOrAbove := countInRange(values, lo, hi, threshold)
	if inRange == 0 {
		return 0, fmt.Errorf("%w: no values in [%v, %v]", ErrEmptyRange, lo, hi)
	}
	return float64(atOrAbove) / float64(inRange), nil
}
