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

// Array is a fixed-size, row-major, multi-dimensional array stored in a
// flat slice. The last dimension varies fastest.
type Array[T hwy.Lanes] struct {
	data  []T
	shape []int
}

// NewArray creates a zero-filled array with the given shape.
// No shape creates an empty 1-D array. It panics if a dimension is negative
// or the element count overflows int.
func NewArray[T hwy.Lanes](shape ...int) *Array[T] {
	if len(shape) == 0 {
		shape = []int{0}
	}
	size := shapeSize(shape)
	if size < 0 {
		panic(fmt.Sprintf("rescale: invalid shape %v", shape))
	}
	return &Array[T]{
		data:  make([]T, size),
		shape: append([]int(nil), shape...),
	}
}

// FromSlice wraps data in an array without copying. With no shape the array
// is 1-D of length len(data).
func FromSlice[T hwy.Lanes](data []T, shape ...int) (*Array[T], error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	if size := shapeSize(shape); size != len(data) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrShapeMismatch, len(data), shape)
	}
	return &Array[T]{
		data:  data,
		shape: append([]int(nil), shape...),
	}, nil
}

// shapeSize returns the element count for shape, or -1 if any dimension is
// negative or the product overflows int.
func shapeSize(shape []int) int {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return -1
		}
		if d != 0 && size > stdmath.MaxInt/d {
			return -1
		}
		size *= d
	}
	return size
}

// Shape returns a copy of the array dimensions.
func (a *Array[T]) Shape() []int {
	return append([]int(nil), a.shape...)
}

// NDim returns the number of dimensions.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns the flat, row-major backing slice.
func (a *Array[T]) Data() []T {
	return a.data
}

// Flatten returns a 1-D copy of the elements in row-major order.
func (a *Array[T]) Flatten() []T {
	return append([]T(nil), a.data...)
}

// At returns the element at the given index. It panics if the index has the
// wrong rank or is out of bounds.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.offset(idx)]
}

// Set stores value at the given index. It panics like At.
func (a *Array[T]) Set(value T, idx ...int) {
	a.data[a.offset(idx)] = value
}

func (a *Array[T]) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("rescale: index %v has rank %d, array has rank %d", idx, len(idx), len(a.shape)))
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= a.shape[axis] {
			panic(fmt.Sprintf("rescale: index %v out of bounds for shape %v", idx, a.shape))
		}
		off = off*a.shape[axis] + i
	}
	return off
}

// like creates a zero-filled array of element type U with the shape of a.
func like[U, T hwy.Lanes](a *Array[T]) *Array[U] {
	return &Array[U]{
		data:  make([]U, len(a.data)),
		shape: append([]int(nil), a.shape...),
	}
}
