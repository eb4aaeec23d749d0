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

	"gonum.org/v1/gonum/mat"
)

// FromDense copies a gonum matrix into a 2-D array of shape [rows, cols].
func FromDense(m mat.Matrix) *Array[float64] {
	rows, cols := m.Dims()
	a := NewArray[float64](rows, cols)
	if rows == 0 || cols == 0 {
		return a
	}
	dst := mat.NewDense(rows, cols, a.data)
	dst.Copy(m)
	return a
}

// ToDense returns a gonum matrix sharing the backing data of a 2-D array.
func ToDense(a *Array[float64]) (*mat.Dense, error) {
	if a.NDim() != 2 {
		return nil, fmt.Errorf("%w: ToDense needs a 2-D array, got shape %v", ErrShapeMismatch, a.shape)
	}
	rows, cols := a.shape[0], a.shape[1]
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: gonum matrices cannot have zero dimensions, got shape %v", ErrShapeMismatch, a.shape)
	}
	return mat.NewDense(rows, cols, a.data), nil
}
