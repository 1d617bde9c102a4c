// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type algorithm struct {
	Name  string
	Label string
	Func  func([]int) ([]int, int)
}

var algorithms = []algorithm{
	{Name: "quadratic", Label: "LIS By O(n^2)", Func: lengthsQuadratic},
	{Name: "loglinear", Label: "LIS By O(n*logn)", Func: lengthsLogLinear},
}

func selectAlgorithms(name string) ([]algorithm, error) {
	if name == "all" {
		return algorithms, nil
	}
	for _, alg := range algorithms {
		if alg.Name == name {
			return []algorithm{alg}, nil
		}
	}
	return nil, fmt.Errorf("unknown algorithm %q (options: all, quadratic, loglinear)", name)
}

type lisResult struct {
	Algorithm algorithm
	Lengths   []int
	MaxIndex  int
	Elapsed   time.Duration
}

func (res lisResult) MaxLength() int {
	if res.MaxIndex < 0 {
		return 0
	}
	return res.Lengths[res.MaxIndex]
}

// timeRun runs alg on seq and records the wall clock time it took.
func timeRun(alg algorithm, seq []int) lisResult {
	t0 := time.Now()
	L, idx := alg.Func(seq)
	return lisResult{
		Algorithm: alg,
		Lengths:   L,
		MaxIndex:  idx,
		Elapsed:   time.Since(t0),
	}
}

// report prints one run: label, maximum length, elapsed
// milliseconds, then the reconstructed subsequence in backward (LDS)
// and forward (LIS) order.
func report(w io.Writer, res lisResult, seq []int) error {
	lds := reconstruct(seq, res.Lengths, res.MaxIndex)
	_, err := fmt.Fprintf(w, "%s\nmaxLengthOfLis: %d\nTime Taken: %d\nLDS:\n%s\nLIS:\n%s\n",
		res.Algorithm.Label,
		res.MaxLength(),
		res.Elapsed.Milliseconds(),
		joinInts(lds),
		joinInts(reversed(lds)))
	return err
}

func joinInts(s []int) string {
	strs := make([]string, len(s))
	for i, v := range s {
		strs[i] = fmt.Sprint(v)
	}
	return strings.Join(strs, " ")
}
