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

// MinMax returns the minimum and maximum of v in a single pass. NaN elements
// are skipped. It returns ErrEmptyRange if v has no non-NaN element.
func MinMax[T hwy.Floats](v []T) (lo, hi T, err error) {
	lo, hi, ok := minMax(v)
	if !ok {
		return 0, 0, fmt.Errorf("%w: no values to derive bounds from (%d elements)", ErrEmptyRange, len(v))
	}
	return lo, hi, nil
}

// ToUint8 rescales a onto [0, 255]. The result has the shape of a.
//
// float32 and float64 data is rescaled in its own precision. Any other
// element type, integers included, is promoted to float64 first.
//
// Example:
//
//	a, _ := FromSlice([]float32{0, 50, 100})
//	u8, _ := ToUint8(a)  // [0, 127, 255]
func ToUint8[T hwy.Lanes](a *Array[T], opts ...Option) (*Array[uint8], error) {
	return toTarget[uint8](a, opts)
}

// ToUint16 rescales a onto [0, 65535]. The result has the shape of a.
func ToUint16[T hwy.Lanes](a *Array[T], opts ...Option) (*Array[uint16], error) {
	return toTarget[uint16](a, opts)
}

// Uint8Into rescales src onto [0, 255] into dst, which must be at least as
// long as src.
func Uint8Into[T hwy.Lanes](dst []uint8, src []T, opts ...Option) error {
	return rescaleSlice(dst, src, opts)
}

// Uint16Into rescales src onto [0, 65535] into dst, which must be at least as
// long as src.
func Uint16Into[T hwy.Lanes](dst []uint16, src []T, opts ...Option) error {
	return rescaleSlice(dst, src, opts)
}

func toTarget[U Target, T hwy.Lanes](a *Array[T], opts []Option) (*Array[U], error) {
	out := like[U](a)
	if err := rescaleSlice(out.data, a.data, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func rescaleSlice[U Target, T hwy.Lanes](dst []U, src []T, opts []Option) error {
	if len(dst) < len(src) {
		return fmt.Errorf("%w: dst has %d elements, src has %d", ErrShapeMismatch, len(dst), len(src))
	}
	switch s := any(src).(type) {
	case []float32:
		return rescaleFloats(dst, s, opts)
	case []float64:
		return rescaleFloats(dst, s, opts)
	default:
		return rescaleFloats(dst, promote(src), opts)
	}
}

func rescaleFloats[U Target, T hwy.Floats](dst []U, src []T, opts []Option) error {
	lo, hi, err := resolve(src, newBounds(opts))
	if err != nil {
		return err
	}

	span := hi - lo
	if span == 0 {
		return fmt.Errorf("%w: min and max are both %v", ErrZeroSpan, lo)
	}
	if s := float64(span); stdmath.IsNaN(s) || stdmath.IsInf(s, 0) {
		return fmt.Errorf("%w: min=%v max=%v", ErrNonFiniteRange, lo, hi)
	}

	rescaleInto(src, dst[:len(src)], lo, hi)
	return nil
}
