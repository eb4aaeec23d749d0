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

// Command rescale maps numeric CSV data onto uint8 or uint16 ranges, or
// reports the fraction of values at or above a threshold.
//
// Usage:
//
//	rescale -mode uint8 frame.csv                  # bounds derived from data
//	rescale -mode uint16 -min 0 -max 4095 a.csv b.csv
//	rescale -mode ratio -threshold 0.5 -min 0 -max 1 scores.csv
//	cat frame.csv | rescale -mode uint8 -shape 4,4,3
//
// Each input file is one array. Rows of the CSV are rows of the array unless
// -shape is given, in which case the values are read row-major into that
// shape. Files are processed concurrently and written to stdout in argument
// order. With no file arguments, stdin is read.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ajroetker/go-rescale/hwy"
)

var (
	mode      = flag.String("mode", modeUint8, "Output mode: "+strings.Join(modes, ", "))
	minVal    = flag.Float64("min", math.NaN(), "Lower bound of the input range (default: minimum of the data)")
	maxVal    = flag.Float64("max", math.NaN(), "Upper bound of the input range (default: maximum of the data)")
	threshold = flag.Float64("threshold", math.NaN(), "Threshold for -mode ratio (required in that mode)")
	workers   = flag.Int("workers", 0, "Number of files processed in parallel (default: GOMAXPROCS)")
	shapeFlag = flag.String("shape", "", "Comma-separated array shape, e.g. 4,4,3 (default: CSV rows x columns)")
	verbose   = flag.Bool("v", false, "Print dispatch and per-file details to stderr")
)

func main() {
	flag.Parse()

	shape, err := parseShape(*shapeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := config{
		Mode:      *mode,
		Min:       *minVal,
		Max:       *maxVal,
		Threshold: *threshold,
		Shape:     shape,
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}
	if err := checkInputs(inputs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "SIMD Level: %s, Width: %d bytes\n", hwy.CurrentName(), hwy.CurrentWidth())
	}

	results := run(cfg, inputs, *workers)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", r.Name, r.Err)
			failed++
			continue
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "%s: shape %v\n", r.Name, r.Shape)
		}
		if len(results) > 1 {
			fmt.Printf("# %s\n", r.Name)
		}
		os.Stdout.Write(r.Output)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
