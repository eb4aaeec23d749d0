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
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ajroetker/go-rescale/hwy/contrib/rescale"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"6", []int{6}, false},
		{"4,4,3", []int{4, 4, 3}, false},
		{"2, 0", []int{2, 0}, false},
		{"2,x", nil, true},
		{"2,-1", nil, true},
	}
	for _, tt := range tests {
		got, err := parseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCheckInputs(t *testing.T) {
	tests := []struct {
		inputs  []string
		wantErr bool
	}{
		{[]string{"-"}, false},
		{[]string{"a.csv", "b.csv"}, false},
		{[]string{"a.csv", "-", "b.csv"}, false},
		{[]string{"-", "-"}, true},
		{[]string{"-", "a.csv", "-"}, true},
	}
	for _, tt := range tests {
		if err := checkInputs(tt.inputs); (err != nil) != tt.wantErr {
			t.Errorf("checkInputs(%v) = %v, wantErr %v", tt.inputs, err, tt.wantErr)
		}
	}
}

func TestValidate(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name    string
		cfg     config
		wantErr bool
	}{
		{"uint8", config{Mode: modeUint8, Threshold: nan}, false},
		{"uint16", config{Mode: modeUint16, Threshold: nan}, false},
		{"ratio with threshold", config{Mode: modeRatio, Threshold: 3}, false},
		{"ratio without threshold", config{Mode: modeRatio, Threshold: nan}, true},
		{"unknown", config{Mode: "int8"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	nan := math.NaN()
	if n := len(config{Min: nan, Max: nan}.options()); n != 0 {
		t.Errorf("unset bounds produced %d options", n)
	}
	if n := len(config{Min: 0, Max: nan}.options()); n != 1 {
		t.Errorf("one bound produced %d options", n)
	}
	if n := len(config{Min: 0, Max: 1}.options()); n != 2 {
		t.Errorf("two bounds produced %d options", n)
	}
}

func TestReadArray(t *testing.T) {
	in := "0, 50, 100\n# comment\n25,75,100\n"
	arr, err := readArray(strings.NewReader(in), nil)
	if err != nil {
		t.Fatalf("readArray: %v", err)
	}
	if !reflect.DeepEqual(arr.Shape(), []int{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", arr.Shape())
	}
	if got := arr.At(1, 1); got != 75 {
		t.Errorf("At(1, 1) = %v, want 75", got)
	}

	arr, err = readArray(strings.NewReader("1,2,3\n4,5,6,7,8,9,10,11,12\n"), []int{2, 2, 3})
	if err != nil {
		t.Fatalf("readArray with shape: %v", err)
	}
	if got := arr.At(1, 0, 2); got != 9 {
		t.Errorf("At(1, 0, 2) = %v, want 9", got)
	}

	if _, err := readArray(strings.NewReader("1,2\n3\n"), nil); err == nil {
		t.Error("ragged rows without -shape should fail")
	}
	if _, err := readArray(strings.NewReader("1,abc\n"), nil); err == nil {
		t.Error("non-numeric field should fail")
	}
	if _, err := readArray(strings.NewReader("1,2,3\n"), []int{2, 2}); !errors.Is(err, rescale.ErrShapeMismatch) {
		t.Errorf("wrong shape: got %v, want ErrShapeMismatch", err)
	}
}

func TestProcess(t *testing.T) {
	nan := math.NaN()
	data := []float64{0, 50, 100, 25, 75, 100}
	arr, err := rescale.FromSlice(data, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  config
		want string
	}{
		{"uint8", config{Mode: modeUint8, Min: nan, Max: nan}, "0,127,255\n63,191,255\n"},
		{"uint16", config{Mode: modeUint16, Min: nan, Max: nan}, "0,32767,65535\n16383,49151,65535\n"},
		{"uint8 fixed bounds", config{Mode: modeUint8, Min: 0, Max: 200}, "0,63,127\n31,95,127\n"},
		{"ratio", config{Mode: modeRatio, Min: nan, Max: nan, Threshold: 75}, "0.5\n"},
		{"ratio window", config{Mode: modeRatio, Min: 25, Max: 75, Threshold: 50}, "0.6666666666666666\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := process(tt.cfg, arr)
			if err != nil {
				t.Fatalf("process: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	empty, _ := rescale.FromSlice([]float64{}, 0, 0)
	if _, err := process(config{Mode: modeUint8, Min: nan, Max: nan}, empty); !errors.Is(err, rescale.ErrEmptyRange) {
		t.Errorf("empty input: got %v, want ErrEmptyRange", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.csv":   "10,50,100\n",
		"b.csv":   "1,2,3\n4,5,6\n",
		"bad.csv": "1,x\n",
	}
	var inputs []string
	for _, name := range []string{"a.csv", "b.csv", "bad.csv", "missing.csv"} {
		path := filepath.Join(dir, name)
		if content, ok := files[name]; ok {
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		inputs = append(inputs, path)
	}

	nan := math.NaN()
	cfg := config{Mode: modeRatio, Min: nan, Max: nan, Threshold: 3}
	results := run(cfg, inputs, 3)
	if len(results) != len(inputs) {
		t.Fatalf("got %d results, want %d", len(results), len(inputs))
	}
	for i, r := range results {
		if r.Name != inputs[i] {
			t.Errorf("results[%d].Name = %q, want %q", i, r.Name, inputs[i])
		}
	}

	if results[0].Err != nil || string(results[0].Output) != "1\n" {
		t.Errorf("a.csv: got %q, %v", results[0].Output, results[0].Err)
	}
	if results[1].Err != nil || string(results[1].Output) != "0.6666666666666666\n" {
		t.Errorf("b.csv: got %q, %v", results[1].Output, results[1].Err)
	}
	if !reflect.DeepEqual(results[1].Shape, []int{2, 3}) {
		t.Errorf("b.csv: shape %v, want [2 3]", results[1].Shape)
	}
	if results[2].Err == nil {
		t.Error("bad.csv: expected parse error")
	}
	if results[3].Err == nil {
		t.Error("missing.csv: expected open error")
	}
}
