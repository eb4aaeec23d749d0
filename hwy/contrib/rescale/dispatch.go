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

// Dispatch function variables.
// These are initialized to the base (pure Go) kernels and may be replaced by
// target-specific implementations in init().
var (
	// MinMaxFloat32 returns the min and max of v, skipping NaN.
	MinMaxFloat32 func(v []float32) (lo, hi float32, ok bool)

	// MinMaxFloat64 returns the min and max of v, skipping NaN.
	MinMaxFloat64 func(v []float64) (lo, hi float64, ok bool)

	// RescaleFloat32Uint8 maps src from [lo, hi] onto [0, 255].
	RescaleFloat32Uint8 func(src []float32, dst []uint8, lo, hi float32)

	// RescaleFloat32Uint16 maps src from [lo, hi] onto [0, 65535].
	RescaleFloat32Uint16 func(src []float32, dst []uint16, lo, hi float32)

	// RescaleFloat64Uint8 maps src from [lo, hi] onto [0, 255].
	RescaleFloat64Uint8 func(src []float64, dst []uint8, lo, hi float64)

	// RescaleFloat64Uint16 maps src from [lo, hi] onto [0, 65535].
	RescaleFloat64Uint16 func(src []float64, dst []uint16, lo, hi float64)

	// CountInRangeFloat32 counts values in [lo, hi] and those >= threshold.
	CountInRangeFloat32 func(v []float32, lo, hi, threshold float32) (inRange, atOrAbove int)

	// CountInRangeFloat64 counts values in [lo, hi] and those >= threshold.
	CountInRangeFloat64 func(v []float64, lo, hi, threshold float64) (inRange, atOrAbove int)
)

func init() {
	MinMaxFloat32 = BaseMinMax[float32]
	MinMaxFloat64 = BaseMinMax[float64]

	RescaleFloat32Uint8 = baseRescaleFull[float32, uint8]
	RescaleFloat32Uint16 = baseRescaleFull[float32, uint16]
	RescaleFloat64Uint8 = baseRescaleFull[float64, uint8]
	RescaleFloat64Uint16 = baseRescaleFull[float64, uint16]

	CountInRangeFloat32 = BaseCountInRange[float32]
	CountInRangeFloat64 = BaseCountInRange[float64]
}

// baseRescaleFull is BaseRescale with the scale fixed to the range of U.
func baseRescaleFull[T hwy.Floats, U Target](src []T, dst []U, lo, hi T) {
	BaseRescale(src, dst, lo, hi, fullScale[T, U]())
}

// minMax routes to the dispatched kernel for the element type of v.
// Named float types fall back to the base kernel.
func minMax[T hwy.Floats](v []T) (lo, hi T, ok bool) {
	switch s := any(v).(type) {
	case []float32:
		l, h, found := MinMaxFloat32(s)
		return T(l), T(h), found
	case []float64:
		l, h, found := MinMaxFloat64(s)
		return T(l), T(h), found
	default:
		return BaseMinMax(v)
	}
}

func rescaleInto[T hwy.Floats, U Target](src []T, dst []U, lo, hi T) {
	switch s := any(src).(type) {
	case []float32:
		switch d := any(dst).(type) {
		case []uint8:
			RescaleFloat32Uint8(s, d, float32(lo), float32(hi))
			return
		case []uint16:
			RescaleFloat32Uint16(s, d, float32(lo), float32(hi))
			return
		}
	case []float64:
		switch d := any(dst).(type) {
		case []uint8:
			RescaleFloat64Uint8(s, d, float64(lo), float64(hi))
			return
		case []uint16:
			RescaleFloat64Uint16(s, d, float64(lo), float64(hi))
			return
		}
	}
	baseRescaleFull(src, dst, lo, hi)
}

func countInRange[T hwy.Floats](v []T, lo, hi, threshold T) (inRange, atOrAbove int) {
	switch s := any(v).(type) {
	case []float32:
		return CountInRangeFloat32(s, float32(lo), float32(hi), float32(threshold))
	case []float64:
		return CountInRangeFloat64(s, float64(lo), float64(hi), float64(threshold))
	default:
		return BaseCountInRange(v, lo, hi, threshold)
	}
}
