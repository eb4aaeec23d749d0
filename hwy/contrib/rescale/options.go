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

// Option sets one end of the value range. For ToUint8 / ToUint16 it is the
// range mapped onto [0, scale]; for ThresholdRatio it is the window of
// values that are counted.
type Option func(*bounds)

type bounds struct {
	lo, hi       float64
	hasLo, hasHi bool
}

// WithMin fixes the lower bound instead of using the data minimum.
func WithMin(v float64) Option {
	return func(b *bounds) {
		b.lo, b.hasLo = v, true
	}
}

// WithMax fixes the upper bound instead of using the data maximum.
func WithMax(v float64) Option {
	return func(b *bounds) {
		b.hi, b.hasHi = v, true
	}
}

// WithRange fixes both bounds.
func WithRange(lo, hi float64) Option {
	return func(b *bounds) {
		WithMin(lo)(b)
		WithMax(hi)(b)
	}
}

func newBounds(opts []Option) bounds {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// resolve fills in the unset bounds from the data. The data is only scanned
// when at least one bound is missing.
func resolve[T hwy.Floats](v []T, b bounds) (lo, hi T, err error) {
	if !b.hasLo || !b.hasHi {
		lo, hi, err = MinMax(v)
		if err != nil {
			return 0, 0, err
		}
	}
	if b.hasLo {
		lo = T(b.lo)
	}
	if b.hasHi {
		hi = T(b.hi)
	}
	return lo, hi, nil
}
