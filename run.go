// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

type runcmd struct{}

func (cmd *runcmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	inputFilename := flags.String("i", "", "input `file` of integers, \"-\" for stdin, .gz ok (default: built-in sample)")
	algorithmName := flags.String("algorithm", "all", "`algorithm` to run: all, quadratic, or loglinear")
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
	log.Infof("input: %d values, digest %s", len(seq), sequenceDigest(seq))

	bufw := bufio.NewWriter(stdout)
	for i, alg := range algs {
		if i > 0 {
			fmt.Fprintln(bufw)
		}
		res := timeRun(alg, seq)
		log.Debugf("%s: max length %d at index %d in %v", alg.Name, res.MaxLength(), res.MaxIndex, res.Elapsed)
		err = report(bufw, res, seq)
		if err != nil {
			return 1
		}
	}
	err = bufw.Flush()
	if err != nil {
		return 1
	}
	return 0
}
