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

// Target is the set of output element types for rescaling.
type Target interface {
	~uint8 | ~uint16
}

// fullScale returns the largest value of U as a T: 255 or 65535.
func fullScale[T hwy.Floats, U Target]() T {
	return T(^U(0))
}

// BaseRescale maps src onto [0, scale] and truncates into dst:
//
//	dst[i] = U(clamp(((src[i] - lo) / (hi - lo)) * scale, 0, scale))
//
// The division is done before the multiplication so src[i] == hi yields
// exactly scale. NaN elements yield 0. The caller guarantees hi != lo.
// Uses the minimum of len(dst) and len(src) as the effective length.
func BaseRescale[T hwy.Floats, U Target](src []T, dst []U, lo, hi, scale T) {
	n := min(len(src), len(dst))
	if n == 0 {
		return
	}

	span := hi - lo
	loVec := hwy.Set(lo)
	spanVec := hwy.Set(span)
	scaleVec := hwy.Set(scale)
	zeroVec := hwy.Zero[T]()
	lanes := zeroVec.NumLanes()

	buf := make([]T, lanes)

	i := 0
	for ; i+lanes <= n; i += lanes {
		v := hwy.Load(src[i:])
		scaled := hwy.Mul(hwy.Div(hwy.Sub(v, loVec), spanVec), scaleVec)

		// Saturate; Max puts zero in NaN lanes.
		clamped := hwy.Min(hwy.Max(scaled, zeroVec), scaleVec)

		// Narrow T -> U lane by lane, truncating toward zero.
		hwy.Store(clamped, buf)
		for j := range lanes {
			dst[i+j] = U(buf[j])
		}
	}

	for ; i < n; i++ {
		dst[i] = rescaleScalar[U](src[i], lo, span, scale)
	}
}

func rescaleScalar[U Target, T hwy.Floats](x, lo, span, scale T) U {
	y := ((x - lo) / span) * scale
	switch {
	case y >= scale:
		return U(scale)
	case y > 0:
		return U(y)
	default:
		// Negative, zero or NaN.
		return 0
	}
}
