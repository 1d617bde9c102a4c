// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kshedden/gonpy"
	log "github.com/sirupsen/logrus"
)

type exportNumpy struct{}

func (cmd *exportNumpy) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	inputFilename := flags.String("i", "", "input `file` of integers, \"-\" for stdin, .gz ok (default: built-in sample)")
	outputFilename := flags.String("o", "-", "output `file`")
	algorithmName := flags.String("algorithm", "loglinear", "`algorithm` used to compute lengths: quadratic or loglinear")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() > 0 {
		err = fmt.Errorf("errant command line arguments after parsed flags: %v", flags.Args())
		return 2
	}
	if *algorithmName == "all" {
		err = fmt.Errorf("-algorithm must name a single algorithm")
		return 2
	}
	algs, err := selectAlgorithms(*algorithmName)
	if err != nil {
		return 2
	}

	seq, err := loadSequence(*inputFilename, stdin)
	if err != nil {
		return 1
	}
	err = validateSequence(seq)
	if err != nil {
		return 1
	}
	lengths, _ := algs[0].Func(seq)
	log.Infof("export-numpy: %d values, digest %s, algorithm %s", len(seq), sequenceDigest(seq), algs[0].Name)

	var output io.WriteCloser
	if *outputFilename == "-" {
		output = nopCloser{stdout}
	} else {
		output, err = os.OpenFile(*outputFilename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
		if err != nil {
			return 1
		}
		defer output.Close()
	}
	bufw := bufio.NewWriter(output)
	err = writeLengthsNumpy(bufw, seq, lengths)
	if err != nil {
		return 1
	}
	err = bufw.Flush()
	if err != nil {
		return 1
	}
	err = output.Close()
	if err != nil {
		return 1
	}
	return 0
}

// writeLengthsNumpy writes a 2xN int64 matrix: the input sequence in
// row 0 and the LIS length array in row 1.
func writeLengthsNumpy(w io.Writer, seq, lengths []int) error {
	data := make([]int64, 0, 2*len(seq))
	for _, v := range seq {
		data = append(data, int64(v))
	}
	for _, v := range lengths {
		data = append(data, int64(v))
	}
	npw, err := gonpy.NewWriter(nopCloser{w})
	if err != nil {
		return fmt.Errorf("gonpy.NewWriter: %w", err)
	}
	npw.Shape = []int{2, len(seq)}
	return npw.WriteInt64(data)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
