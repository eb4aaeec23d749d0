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
	"errors"
	stdmath "math"
	"testing"
)

func TestNewArray(t *testing.T) {
	a := NewArray[float32](2, 3)
	if a.Len() != 6 || a.NDim() != 2 {
		t.Fatalf("got len %d ndim %d, want 6, 2", a.Len(), a.NDim())
	}
	a.Set(7, 1, 2)
	if a.Data()[5] != 7 || a.At(1, 2) != 7 {
		t.Errorf("Set/At: data %v", a.Data())
	}

	empty := NewArray[uint8]()
	if empty.Len() != 0 || empty.NDim() != 1 {
		t.Errorf("empty: got len %d ndim %d", empty.Len(), empty.NDim())
	}
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	a, err := FromSlice(data, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if a.At(2, 0) != 5 {
		t.Errorf("At(2, 0) = %v, want 5", a.At(2, 0))
	}

	flat, _ := FromSlice(data)
	if s := flat.Shape(); len(s) != 1 || s[0] != 6 {
		t.Errorf("default shape: got %v, want [6]", s)
	}

	if _, err := FromSlice(data, 4, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("mismatch: got %v, want ErrShapeMismatch", err)
	}
	if _, err := FromSlice(data, -2, -3); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("negative dims: got %v, want ErrShapeMismatch", err)
	}
	if _, err := FromSlice[float64](nil, stdmath.MaxInt, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("overflowing shape: got %v, want ErrShapeMismatch", err)
	}
	if _, err := FromSlice[float64](nil, stdmath.MaxInt/2+1, 2, 0); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("overflow before a zero dimension: got %v, want ErrShapeMismatch", err)
	}
}

func TestShapeSize(t *testing.T) {
	tests := []struct {
		shape []int
		want  int
	}{
		{[]int{}, 1},
		{[]int{2, 3, 4}, 24},
		{[]int{5, 0}, 0},
		{[]int{0, stdmath.MaxInt}, 0},
		{[]int{stdmath.MaxInt, 1}, stdmath.MaxInt},
		{[]int{stdmath.MaxInt, 2}, -1},
		{[]int{1 << 20, 1 << 20, 1 << 20, 1 << 20}, -1},
		{[]int{3, -1}, -1},
	}
	for _, tt := range tests {
		if got := shapeSize(tt.shape); got != tt.want {
			t.Errorf("shapeSize(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestArrayCopies(t *testing.T) {
	a, _ := FromSlice([]float32{1, 2, 3, 4}, 2, 2)

	shape := a.Shape()
	shape[0] = 100
	if a.Shape()[0] != 2 {
		t.Error("Shape() exposed internal state")
	}

	flat := a.Flatten()
	flat[0] = 100
	if a.At(0, 0) != 1 {
		t.Error("Flatten() shares backing data")
	}
}

func TestArrayPanics(t *testing.T) {
	a := NewArray[float32](2, 2)
	tests := []struct {
		name string
		fn   func()
	}{
		{"negative dimension", func() { NewArray[float32](2, -1) }},
		{"overflowing shape", func() { NewArray[float32](stdmath.MaxInt, 2) }},
		{"wrong rank", func() { a.At(1) }},
		{"out of bounds", func() { a.At(0, 2) }},
		{"negative index", func() { a.Set(1, -1, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
