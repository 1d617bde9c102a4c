// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"errors"
	"math"
)

var ErrEmptySequence = errors.New("sequence must be non-empty")

func validateSequence(seq []int) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	return nil
}

// lengthsQuadratic returns L, where L[i] is the length of the longest
// strictly increasing subsequence ending at seq[i], and the index of
// the first maximum in L.
func lengthsQuadratic(seq []int) ([]int, int) {
	if len(seq) == 0 {
		return nil, -1
	}
	L := make([]int, len(seq))
	for i := range L {
		L[i] = 1
	}
	for i := range seq {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] < seq[j] && L[j] < L[i]+1 {
				L[j] = L[i] + 1
			}
		}
	}
	return L, maxIndex(L)
}

// lengthsLogLinear returns the same result as lengthsQuadratic in
// O(n log n).
func lengthsLogLinear(seq []int) ([]int, int) {
	const (
		negInfinity = math.MinInt
		posInfinity = math.MaxInt
	)
	if len(seq) == 0 {
		return nil, -1
	}
	// I[k] == smallest tail value of any increasing subsequence of
	// length k seen so far. I[1:] is strictly increasing up to the
	// first posInfinity.
	I := make([]int, len(seq)+1)
	I[0] = negInfinity
	for k := 1; k < len(I); k++ {
		I[k] = posInfinity
	}
	L := make([]int, len(seq))
	for i, x := range seq {
		// Find the first k>0 with I[k] >= x. An equal tail is
		// replaced, not extended.
		low, high := 1, len(I)-1
		for low <= high {
			mid := (low + high) / 2
			if I[mid] >= x {
				high = mid - 1
			} else {
				low = mid + 1
			}
		}
		L[i] = low
		I[low] = x
	}
	return L, maxIndex(L)
}

// maxIndex returns the index of the first occurrence of the largest
// value in L, or -1 if L is empty.
func maxIndex(L []int) int {
	if len(L) == 0 {
		return -1
	}
	idx := 0
	for i := 1; i < len(L); i++ {
		if L[idx] < L[i] {
			idx = i
		}
	}
	return idx
}

// reconstruct walks backward from seq[index], taking the rightmost
// predecessor that is smaller and whose length is exactly one less.
// The result is in backward order (largest value first); reverse it
// to get the increasing subsequence.
func reconstruct(seq, lengths []int, index int) []int {
	if index < 0 || index >= len(seq) || len(lengths) != len(seq) {
		return nil
	}
	out := make([]int, 0, lengths[index])
	out = append(out, seq[index])
	for i := index - 1; i >= 0; i-- {
		if seq[i] < seq[index] && lengths[i] == lengths[index]-1 {
			out = append(out, seq[i])
			index = i
		}
	}
	return out
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
