// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the delimited text files written by the
// key-search benchmark harness.
//
// There are two formats. A timing file has one record per line with
// five comma-separated fields,
//
//	q,time,errlow,errhigh,keys
//
// where q is the raw problem-size field and the rest are the median
// solve time in seconds, its first and third quartiles, and the mean
// number of candidate keys checked. There is no header or comment
// syntax: every line must be a record. A candidate-keys file has
// exactly two lines, each a comma-separated list of integer rank
// deficits: the first covers all trials, the second the hard subset
// that was re-run. Only trailing blank lines are tolerated there.
//
// Readers fail on the first malformed line with a *SyntaxError that
// names the file and line, and never return partial results.
package benchcsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A SyntaxError represents a syntax error on a particular line of a
// results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// Timing records the columns of a timing file. The slices are
// parallel: element i of each slice describes the i'th record.
type Timing struct {
	N       []int     // problem size, (q+1)/2
	Time    []float64 // median solve time, seconds
	ErrLow  []float64 // first quartile of solve time
	ErrHigh []float64 // third quartile of solve time
	Keys    []float64 // mean candidate keys checked
}

// Len returns the number of records in t.
func (t *Timing) Len() int { return len(t.N) }

// ReadTiming reads timing records from r until EOF. fileName is used
// only in error messages. Every line must parse as a record, so a
// header or a blank line is a syntax error. An empty input yields an
// empty Timing, not an error.
func ReadTiming(r io.Reader, fileName string) (*Timing, error) {
	t := new(Timing)
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		f := strings.Split(s.Text(), ",")
		if len(f) != 5 {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("got %d fields, want 5", len(f))}
		}
		q, err := strconv.Atoi(strings.TrimSpace(f[0]))
		if err != nil {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("malformed problem size %q", strings.TrimSpace(f[0]))}
		}
		var v [4]float64
		for i, tok := range f[1:] {
			tok = strings.TrimSpace(tok)
			v[i], err = strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &SyntaxError{fileName, line, fmt.Sprintf("malformed value %q", tok)}
			}
		}
		// The harness logs q; the effective problem size is (q+1)/2.
		t.N = append(t.N, (q+1)/2)
		t.Time = append(t.Time, v[0])
		t.ErrLow = append(t.ErrLow, v[1])
		t.ErrHigh = append(t.ErrHigh, v[2])
		t.Keys = append(t.Keys, v[3])
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadTimingFile reads the timing file at path.
func ReadTimingFile(path string) (*Timing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTiming(f, path)
}

// CandKeys records the rank deficits from a candidate-keys file.
type CandKeys struct {
	All  []int // rank deficits of all trials
	Hard []int // rank deficits of the re-run hard subset
}

// ReadCandKeys reads a candidate-keys file from r. The file must have
// exactly two lines of rank deficits; blank lines are tolerated only
// after the second.
func ReadCandKeys(r io.Reader, fileName string) (*CandKeys, error) {
	c := new(CandKeys)
	seen, line := 0, 0
	s := bufio.NewScanner(r)
	for line = 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			if seen == 2 {
				continue
			}
			return nil, &SyntaxError{fileName, line, "unexpected blank line"}
		}
		if seen == 2 {
			return nil, &SyntaxError{fileName, line, "unexpected extra line"}
		}
		xs, err := parseInts(fileName, line, text)
		if err != nil {
			return nil, err
		}
		if seen == 0 {
			c.All = xs
		} else {
			c.Hard = xs
		}
		seen++
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if seen != 2 {
		return nil, &SyntaxError{fileName, line, fmt.Sprintf("got %d lines, want 2", seen)}
	}
	return c, nil
}

// ReadCandKeysFile reads the candidate-keys file at path.
func ReadCandKeysFile(path string) (*CandKeys, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCandKeys(f, path)
}

func parseInts(fileName string, line int, text string) ([]int, error) {
	var xs []int
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		x, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("malformed rank deficit %q", tok)}
		}
		xs = append(xs, x)
	}
	return xs, nil
}
