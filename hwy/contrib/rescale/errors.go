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

import "errors"

var (
	// ErrInvalidArgument is returned when a required argument is missing,
	// e.g. a NaN threshold.
	ErrInvalidArgument = errors.New("rescale: invalid argument")

	// ErrDivisionByZero is the root of the degenerate range errors. Match it
	// with errors.Is to catch both ErrEmptyRange and ErrZeroSpan.
	ErrDivisionByZero = errors.New("rescale: division by zero")

	// ErrEmptyRange is returned when no element falls inside the value window
	// (or the input is empty and a bound has to be derived from it).
	ErrEmptyRange error = &spanError{"rescale: empty range"}

	// ErrZeroSpan is returned when the resolved rescale bounds are equal.
	ErrZeroSpan error = &spanError{"rescale: zero span"}

	// ErrNonFiniteRange is returned when a resolved bound or span is NaN or
	// infinite.
	ErrNonFiniteRange = errors.New("rescale: non-finite range")

	// ErrShapeMismatch is returned when data length and shape disagree.
	ErrShapeMismatch = errors.New("rescale: shape mismatch")
)

// spanError is a degenerate-range error that unwraps to ErrDivisionByZero.
type spanError struct {
	msg string
}

func (e *spanError) Error() string { return e.msg }

func (e *spanError) Unwrap() error { return ErrDivisionByZero }
