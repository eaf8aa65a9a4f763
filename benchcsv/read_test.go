// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
)

func TestReadTiming(t *testing.T) {
	check := func(data string, want *Timing) {
		t.Helper()
		got, err := ReadTiming(strings.NewReader(data), "test")
		if err != nil {
			t.Fatalf("parsing failed: %s", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}

	// The raw q field becomes n = (q+1)/2.
	check("7,1.25,1.1,1.4,3.0\n", &Timing{
		N:       []int{4},
		Time:    []float64{1.25},
		ErrLow:  []float64{1.1},
		ErrHigh: []float64{1.4},
		Keys:    []float64{3.0},
	})

	// Multiple records and field padding.
	check("99, 0.31, 0.22, 0.47, 2.1\n199,1.42,1.05,1.9,2.4\n", &Timing{
		N:       []int{50, 100},
		Time:    []float64{0.31, 1.42},
		ErrLow:  []float64{0.22, 1.05},
		ErrHigh: []float64{0.47, 1.9},
		Keys:    []float64{2.1, 2.4},
	})

	// Empty input is not a parse error.
	check("", new(Timing))
}

func TestReadTimingErrors(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{"7,1.25,1.1,1.4\n", `test:1: got 4 fields, want 5`},
		{"7,1.25,1.1,1.4,3.0,9\n", `test:1: got 6 fields, want 5`},
		{"7,1.25,1.1,1.4,3.0\nx,1,1,1,1\n", `test:2: malformed problem size "x"`},
		{"7.5,1.25,1.1,1.4,3.0\n", `test:1: malformed problem size "7.5"`},
		{"7,1.25,oops,1.4,3.0\n", `test:1: malformed value "oops"`},
		{"7,1.25,1.1,1.4,\n", `test:1: malformed value ""`},
		// There is no comment syntax and no header.
		{"# a comment line\n7,1.25,1.1,1.4,3.0\n", `test:1: got 1 fields, want 5`},
		{"# q,time,errlow,errhigh,keys\n", `test:1: malformed problem size "# q"`},
		// Blank lines are records too, and fail to parse.
		{"7,1.25,1.1,1.4,3.0\n\n9,1.5,1.2,1.8,3.1\n", `test:2: got 1 fields, want 5`},
		{"7,1.25,1.1,1.4,3.0\n\n", `test:2: got 1 fields, want 5`},
	}
	for _, test := range tests {
		_, err := ReadTiming(strings.NewReader(test.data), "test")
		if err == nil {
			t.Errorf("%q: got success, want error %s", test.data, test.want)
			continue
		}
		if err.Error() != test.want {
			t.Errorf("%q: got error %s, want error %s", test.data, err, test.want)
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: error is %T, want *SyntaxError", test.data, err)
		}
	}
}

func TestReadCandKeys(t *testing.T) {
	check := func(data string, want *CandKeys) {
		t.Helper()
		got, err := ReadCandKeys(strings.NewReader(data), "test")
		if err != nil {
			t.Fatalf("parsing failed: %s", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}

	check("1,1,2,3\n2,3\n", &CandKeys{All: []int{1, 1, 2, 3}, Hard: []int{2, 3}})
	// Token padding, and blank lines after the second record.
	check("1, 2, 3\n4\n\n\n", &CandKeys{All: []int{1, 2, 3}, Hard: []int{4}})
}

func TestReadCandKeysErrors(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{"", `test:1: got 0 lines, want 2`},
		{"1,2,3\n", `test:2: got 1 lines, want 2`},
		{"1,2,3\n4,5\n6\n", `test:3: unexpected extra line`},
		{"1,2,x\n4,5\n", `test:1: malformed rank deficit "x"`},
		{"1,2\n4,5.5\n", `test:2: malformed rank deficit "5.5"`},
		{"1,2,\n4,5\n", `test:1: malformed rank deficit ""`},
		// Blank lines before or between the records are errors.
		{"1,1,2,3\n\n2,3\n", `test:2: unexpected blank line`},
		{"\n1,1,2,3\n2,3\n", `test:1: unexpected blank line`},
	}
	for _, test := range tests {
		_, err := ReadCandKeys(strings.NewReader(test.data), "test")
		if err == nil {
			t.Errorf("%q: got success, want error %s", test.data, test.want)
			continue
		}
		if err.Error() != test.want {
			t.Errorf("%q: got error %s, want error %s", test.data, err, test.want)
		}
	}
}

func TestSyntaxErrorPos(t *testing.T) {
	_, err := ReadTiming(strings.NewReader("nope\n"), "timing.csv")
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("error is %T, want *SyntaxError", err)
	}
	if f, l := serr.Pos(); f != "timing.csv" || l != 1 {
		t.Errorf("Pos() = %s:%d, want timing.csv:1", f, l)
	}
}

func TestReadFiles(t *testing.T) {
	tim, err := ReadTimingFile("testdata/timing.csv")
	if err != nil {
		t.Fatalf("reading testdata/timing.csv: %s", err)
	}
	if want := []int{50, 100, 200, 500}; !reflect.DeepEqual(tim.N, want) {
		t.Errorf("got N %v, want %v", tim.N, want)
	}
	if tim.Len() != 4 {
		t.Errorf("got Len() %d, want 4", tim.Len())
	}

	ck, err := ReadCandKeysFile("testdata/candkeys.csv")
	if err != nil {
		t.Fatalf("reading testdata/candkeys.csv: %s", err)
	}
	if len(ck.All) != 16 || len(ck.Hard) != 6 {
		t.Errorf("got %d all and %d hard deficits, want 16 and 6", len(ck.All), len(ck.Hard))
	}

	if _, err := ReadTimingFile("testdata/nonexistent.csv"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want fs.ErrNotExist", err)
	}
}
