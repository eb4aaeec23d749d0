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

package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-rescale/hwy/contrib/rescale"
	"github.com/ajroetker/go-rescale/hwy/contrib/workerpool"
)

const (
	modeUint8  = "uint8"
	modeUint16 = "uint16"
	modeRatio  = "ratio"

	stdinName = "-"
)

var modes = []string{modeUint8, modeUint16, modeRatio}

// config holds the parsed command line. NaN bounds mean "derive from data".
type config struct {
	Mode      string
	Min, Max  float64
	Threshold float64
	Shape     []int
}

func (c config) validate() error {
	switch c.Mode {
	case modeUint8, modeUint16:
	case modeRatio:
		if math.IsNaN(c.Threshold) {
			return fmt.Errorf("-threshold is required with -mode %s", modeRatio)
		}
	default:
		return fmt.Errorf("unknown -mode %q (want one of %s)", c.Mode, strings.Join(modes, ", "))
	}
	return nil
}

func (c config) options() []rescale.Option {
	var opts []rescale.Option
	if !math.IsNaN(c.Min) {
		opts = append(opts, rescale.WithMin(c.Min))
	}
	if !math.IsNaN(c.Max) {
		opts = append(opts, rescale.WithMax(c.Max))
	}
	return opts
}

// parseShape parses "4,4,3". An empty string returns nil.
func parseShape(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	shape := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid -shape %q: dimension %q", s, p)
		}
		shape[i] = d
	}
	return shape, nil
}

// checkInputs rejects more than one "-": stdin can only be read once.
func checkInputs(inputs []string) error {
	stdin := 0
	for _, name := range inputs {
		if name == stdinName {
			stdin++
		}
	}
	if stdin > 1 {
		return fmt.Errorf("stdin (%q) given %d times, it can be read only once", stdinName, stdin)
	}
	return nil
}

type result struct {
	Name   string
	Shape  []int
	Output []byte
	Err    error
}

// run processes every input on a worker pool and returns results in input
// order.
func run(cfg config, inputs []string, numWorkers int) []result {
	results := make([]result, len(inputs))
	pool := workerpool.New(numWorkers)
	defer pool.Close()

	pool.ParallelForAtomic(len(inputs), func(i int) {
		name := inputs[i]
		results[i] = processFile(cfg, name)
	})
	return results
}

func processFile(cfg config, name string) result {
	r := result{Name: name}
	var in io.Reader = os.Stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			r.Err = err
			return r
		}
		defer f.Close()
		in = f
	}

	arr, err := readArray(in, cfg.Shape)
	if err != nil {
		r.Err = err
		return r
	}
	r.Shape = arr.Shape()
	r.Output, r.Err = process(cfg, arr)
	return r
}

// readArray parses CSV numbers. Without a shape the array is rows x columns;
// every row must have the same number of fields.
func readArray(in io.Reader, shape []int) (*rescale.Array[float64], error) {
	cr := csv.NewReader(in)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	if shape != nil {
		cr.FieldsPerRecord = -1
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	var data []float64
	for row, rec := range records {
		for col, field := range rec {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", row+1, col+1, err)
			}
			data = append(data, x)
		}
	}

	if shape == nil {
		cols := 0
		if len(records) > 0 {
			cols = len(records[0])
		}
		shape = []int{len(records), cols}
	}
	return rescale.FromSlice(data, shape...)
}

// process applies cfg.Mode to arr and renders the result. Rescaled arrays are
// written as CSV with the last dimension as columns; ratios as a single line.
func process(cfg config, arr *rescale.Array[float64]) ([]byte, error) {
	var buf bytes.Buffer
	switch cfg.Mode {
	case modeUint8:
		out, err := rescale.ToUint8(arr, cfg.options()...)
		if err != nil {
			return nil, err
		}
		if err := writeCSV(&buf, out.Data(), out.Shape()); err != nil {
			return nil, err
		}
	case modeUint16:
		out, err := rescale.ToUint16(arr, cfg.options()...)
		if err != nil {
			return nil, err
		}
		if err := writeCSV(&buf, out.Data(), out.Shape()); err != nil {
			return nil, err
		}
	case modeRatio:
		ratio, err := rescale.ThresholdRatio(arr, cfg.Threshold, cfg.options()...)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%s\n", strconv.FormatFloat(ratio, 'g', -1, 64))
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	return buf.Bytes(), nil
}

func writeCSV[U uint8 | uint16](w io.Writer, data []U, shape []int) error {
	if len(data) == 0 {
		return nil
	}
	cols := shape[len(shape)-1]
	cw := csv.NewWriter(w)
	record := make([]string, cols)
	for start := 0; start < len(data); start += cols {
		for j, x := range data[start : start+cols] {
			record[j] = strconv.FormatUint(uint64(x), 10)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
