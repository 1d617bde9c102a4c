// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
	"golang.org/x/crypto/blake2b"
)

// sampleSequence is used when no input file is given.
var sampleSequence = []int{8, 1, 9, 8, 3, 4, 6, 1, 5, 2}

// loadSequence returns the sample sequence if fnm is empty, otherwise
// the integers read from fnm ("-" for stdin).
func loadSequence(fnm string, stdin io.Reader) ([]int, error) {
	if fnm == "" {
		return append([]int(nil), sampleSequence...), nil
	}
	if fnm == "-" {
		return readSequence(stdin)
	}
	f, err := zopen(fnm)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seq, err := readSequence(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fnm, err)
	}
	return seq, nil
}

// readSequence parses integers separated by whitespace and/or commas.
// Text following "#" on a line is ignored.
func readSequence(r io.Reader) ([]int, error) {
	var seq []int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.FieldsFunc(line, func(ch rune) bool { return ch == ',' || ch == ' ' || ch == '\t' || ch == '\r' }) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineno, tok, err)
			}
			seq = append(seq, v)
		}
	}
	return seq, scanner.Err()
}

// zopen returns a reader for the given file, transparently
// decompressing the input if fnm ends with ".gz".
func zopen(fnm string) (io.ReadCloser, error) {
	f, err := os.Open(fnm)
	if err != nil || !strings.HasSuffix(fnm, ".gz") {
		return f, err
	}
	rdr, err := pgzip.NewReader(bufio.NewReaderSize(f, 4*1024*1024))
	if err != nil {
		f.Close()
		return nil, err
	}
	return gzipr{rdr, f}, nil
}

// gzipr wraps a ReadCloser and a Closer, presenting a single Close()
// method that closes both wrapped objects.
type gzipr struct {
	io.ReadCloser
	io.Closer
}

func (gr gzipr) Close() error {
	e1 := gr.ReadCloser.Close()
	e2 := gr.Closer.Close()
	if e1 != nil {
		return e1
	}
	return e2
}

// sequenceDigest returns a short hex fingerprint of seq, so log
// entries from separate runs on the same input can be matched up.
func sequenceDigest(seq []int) string {
	h, _ := blake2b.New256(nil)
	var buf [8]byte
	for _, v := range seq {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil)[:8])
}
