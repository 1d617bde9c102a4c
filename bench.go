// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

type benchcmd struct{}

func (cmd *benchcmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	var cfg benchConfig
	flags.IntVar(&cfg.Length, "n", 1000, "sequence `length`")
	flags.IntVar(&cfg.Trials, "trials", 20, "number of random sequences")
	flags.IntVar(&cfg.MaxValue, "max-value", 1000, "sequence values are drawn from [0,`N`)")
	flags.Uint64Var(&cfg.Seed, "seed", 1, "random `seed` for the first trial (trial i uses seed+i)")
	flags.IntVar(&cfg.Threads, "threads", 1, "number of trials to run concurrently")
	algorithmName := flags.String("algorithm", "all", "`algorithm` to time: all, quadratic, or loglinear")
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
	err = cfg.check()
	if err != nil {
		return 2
	}
	algs, err := selectAlgorithms(*algorithmName)
	if err != nil {
		return 2
	}

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	log.Infof("bench: %d trials, length %d, values < %d, seed %d, threads %d", cfg.Trials, cfg.Length, cfg.MaxValue, cfg.Seed, cfg.Threads)
	results, err := runBench(cfg, algs)
	if err != nil {
		return 1
	}
	bufw := bufio.NewWriter(stdout)
	fmt.Fprintf(bufw, "algorithm\ttrials\tmean_ms\tstddev_ms\tmean_lis\n")
	for _, r := range results {
		fmt.Fprintf(bufw, "%s\t%d\t%.3f\t%.3f\t%.2f\n", r.Algorithm, r.Trials, r.MeanMillis, r.StdDevMillis, r.MeanLength)
	}
	err = bufw.Flush()
	if err != nil {
		return 1
	}
	return 0
}

type benchConfig struct {
	Length   int
	Trials   int
	MaxValue int
	Seed     uint64
	Threads  int
}

func (cfg *benchConfig) check() error {
	switch {
	case cfg.Length < 1:
		return fmt.Errorf("invalid -n %d: must be at least 1", cfg.Length)
	case cfg.Trials < 1:
		return fmt.Errorf("invalid -trials %d: must be at least 1", cfg.Trials)
	case cfg.MaxValue < 1:
		return fmt.Errorf("invalid -max-value %d: must be at least 1", cfg.MaxValue)
	}
	if cfg.Threads < 1 {
		cfg.Threads = runtime.NumCPU()
	}
	return nil
}

type benchStats struct {
	Algorithm    string
	Trials       int
	MeanMillis   float64
	StdDevMillis float64
	MeanLength   float64
}

// runBench times each algorithm on cfg.Trials random sequences, and
// returns an error if the algorithms disagree on any of them.
func runBench(cfg benchConfig, algs []algorithm) ([]benchStats, error) {
	elapsed := make([][]float64, len(algs))
	maxlen := make([][]float64, len(algs))
	for a := range algs {
		elapsed[a] = make([]float64, cfg.Trials)
		maxlen[a] = make([]float64, cfg.Trials)
	}
	th := throttle{Max: cfg.Threads}
	for trial := 0; trial < cfg.Trials; trial++ {
		trial := trial
		seed := cfg.Seed + uint64(trial)
		th.Go(func() error {
			seq := randomSequence(rand.New(rand.NewSource(seed)), cfg.Length, cfg.MaxValue)
			var first lisResult
			for a, alg := range algs {
				res := timeRun(alg, seq)
				elapsed[a][trial] = float64(res.Elapsed) / float64(time.Millisecond)
				maxlen[a][trial] = float64(res.MaxLength())
				if a == 0 {
					first = res
				} else if res.MaxIndex != first.MaxIndex || !equalInts(res.Lengths, first.Lengths) {
					return fmt.Errorf("trial %d (seed %d): %s result (max length %d at %d) disagrees with %s (max length %d at %d)",
						trial, seed,
						alg.Name, res.MaxLength(), res.MaxIndex,
						first.Algorithm.Name, first.MaxLength(), first.MaxIndex)
				}
			}
			return nil
		})
	}
	err := th.Wait()
	if err != nil {
		return nil, err
	}
	out := make([]benchStats, len(algs))
	for a, alg := range algs {
		mean, std := stat.MeanStdDev(elapsed[a], nil)
		if cfg.Trials < 2 {
			std = 0
		}
		out[a] = benchStats{
			Algorithm:    alg.Name,
			Trials:       cfg.Trials,
			MeanMillis:   mean,
			StdDevMillis: std,
			MeanLength:   stat.Mean(maxlen[a], nil),
		}
	}
	return out, nil
}

func randomSequence(rnd *rand.Rand, n, maxValue int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = rnd.Intn(maxValue)
	}
	return seq
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
