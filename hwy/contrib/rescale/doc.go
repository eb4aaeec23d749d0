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

// Package rescale maps numeric arrays onto 8-bit and 16-bit unsigned
// integer ranges and measures how much of a value window meets a threshold.
//
// float32 and float64 inputs are processed in their own precision. Integer
// and named element types are promoted to float64 first, so a uint16 frame
// can be rescaled directly.
//
// # Rescaling
//
// ToUint8 and ToUint16 apply the linear map
//
//	out[i] = trunc(((x[i] - min) / (max - min)) * scale)
//
// with scale 255 or 65535. The division happens before the multiplication so
// that max maps to exactly scale. Values outside [min, max] saturate to
// [0, scale] and NaN maps to 0. The output has the same shape as the input.
//
// # Threshold ratio
//
// ThresholdRatio flattens the input, keeps the values in the inclusive window
// [start, end] and returns the fraction of them that are >= threshold.
//
// # Bounds
//
// Bounds are optional. Without WithMin / WithMax the minimum and maximum of
// the data are used, computed in a single pass:
//
//	img, _ := rescale.FromSlice(pixels, 480, 640)
//	u8, err := rescale.ToUint8(img)                                     // data range
//	u16, err := rescale.ToUint16(img, rescale.WithRange(0, 4095))       // 12-bit sensor
//	ratio, err := rescale.ThresholdRatio(img, 0.5, rescale.WithMin(0)) // window [0, max]
//
// # Errors
//
// Degenerate ranges are reported, never turned into Inf or NaN results:
// ErrZeroSpan when min == max, ErrEmptyRange when no value falls in the
// window. Both match ErrDivisionByZero with errors.Is. A NaN threshold is
// ErrInvalidArgument.
//
// All functions are synchronous, never mutate their input and keep no state,
// so they may be called concurrently.
package rescale
