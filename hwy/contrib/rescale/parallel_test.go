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
	"sync/atomic"
	"testing"

	"github.com/ajroetker/go-rescale/hwy/contrib/workerpool"
)

// The functions keep no state, so a pool may fan them out over many arrays.
func TestConcurrentCalls(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const numArrays = 64
	inputs := make([]*Array[float32], numArrays)
	for k := range inputs {
		a := NewArray[float32](8, 9)
		for i := range a.Data() {
			a.Data()[i] = float32((i*31 + k*7) % 113)
		}
		inputs[k] = a
	}

	want := make([]*Array[uint8], numArrays)
	wantRatio := make([]float64, numArrays)
	for k, a := range inputs {
		want[k], _ = ToUint8(a)
		wantRatio[k], _ = ThresholdRatio(a, 50)
	}

	got := make([]*Array[uint8], numArrays)
	gotRatio := make([]float64, numArrays)
	errs := make([]error, numArrays)
	pool.ParallelForAtomic(numArrays, func(k int) {
		got[k], errs[k] = ToUint8(inputs[k])
		if errs[k] == nil {
			gotRatio[k], errs[k] = ThresholdRatio(inputs[k], 50)
		}
	})

	for k := range numArrays {
		if errs[k] != nil {
			t.Fatalf("array %d: %v", k, errs[k])
		}
		if gotRatio[k] != wantRatio[k] {
			t.Errorf("array %d: ratio %v, want %v", k, gotRatio[k], wantRatio[k])
		}
		for i, w := range want[k].Data() {
			if got[k].Data()[i] != w {
				t.Fatalf("array %d index %d: got %d, want %d", k, i, got[k].Data()[i], w)
			}
		}
	}
}

// One large frame split across the pool gives the same bytes as a single
// call once the bounds are resolved up front.
func TestChunkedRescaleMatchesWhole(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, n := range []int{2, 7, 1000, 4099} {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32((i*37)%1021) - 300.5
		}
		src[0] = -400
		a, _ := FromSlice(src)

		want, err := ToUint8(a)
		if err != nil {
			t.Fatalf("n=%d: ToUint8: %v", n, err)
		}

		lo, hi, err := MinMax(src)
		if err != nil {
			t.Fatal(err)
		}
		got := make([]uint8, n)
		var failed atomic.Bool
		pool.ParallelFor(n, func(start, end int) {
			if err := Uint8Into(got[start:end], src[start:end], WithRange(float64(lo), float64(hi))); err != nil {
				failed.Store(true)
			}
		})
		if failed.Load() {
			t.Fatalf("n=%d: chunked Uint8Into failed", n)
		}
		for i, w := range want.Data() {
			if got[i] != w {
				t.Fatalf("n=%d index %d: chunked %d, whole %d", n, i, got[i], w)
			}
		}
	}
}
