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

package hwy

// TailMask creates a mask with the first count lanes active.
// Use it with MaskLoad to process the remainder of a slice whose length is
// not a multiple of the vector width:
//
//	lanes := hwy.MaxLanes[float32]()
//	if rem := len(data) % lanes; rem > 0 {
//		mask := hwy.TailMask[float32](rem)
//		v := hwy.MaskLoad(mask, data[len(data)-rem:])
//		// lanes >= rem are zero; AND comparisons with mask before counting.
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	count = max(0, min(count, maxLanes))

	bits := make([]bool, maxLanes)
	for i := range count {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}
