// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/exp/rand"
	"gopkg.in/check.v1"
)

type benchSuite struct{}

var _ = check.Suite(&benchSuite{})

func (s *benchSuite) TestRunBench(c *check.C) {
	cfg := benchConfig{Length: 300, Trials: 8, MaxValue: 50, Seed: 7, Threads: 4}
	c.Assert(cfg.check(), check.IsNil)
	stats, err := runBench(cfg, algorithms)
	c.Assert(err, check.IsNil)
	c.Assert(stats, check.HasLen, 2)
	c.Check(stats[0].Algorithm, check.Equals, "quadratic")
	c.Check(stats[1].Algorithm, check.Equals, "loglinear")
	for _, st := range stats {
		c.Check(st.Trials, check.Equals, 8)
		c.Check(st.MeanMillis >= 0, check.Equals, true)
		c.Check(st.StdDevMillis >= 0, check.Equals, true)
		// at most 50 distinct values
		c.Check(st.MeanLength > 1 && st.MeanLength <= 50, check.Equals, true, check.Commentf("%+v", st))
	}
	c.Check(stats[0].MeanLength, check.Equals, stats[1].MeanLength)
}

func (s *benchSuite) TestDisagreement(c *check.C) {
	broken := algorithm{
		Name: "broken",
		Func: func(seq []int) ([]int, int) {
			L := make([]int, len(seq))
			return L, 0
		},
	}
	_, err := runBench(benchConfig{Length: 10, Trials: 3, MaxValue: 10, Seed: 1, Threads: 2}, []algorithm{algorithms[0], broken})
	c.Check(err, check.ErrorMatches, `trial \d \(seed \d\): broken result .* disagrees with quadratic .*`)
}

func (s *benchSuite) TestCommand(c *check.C) {
	var stdout bytes.Buffer
	code := (&benchcmd{}).RunCommand("lis bench", []string{"-n=100", "-trials=3", "-threads=2"}, bytes.NewReader(nil), &stdout, os.Stderr)
	c.Check(code, check.Equals, 0)
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	c.Assert(lines, check.HasLen, 3)
	c.Check(lines[0], check.Equals, "algorithm\ttrials\tmean_ms\tstddev_ms\tmean_lis")
	c.Check(lines[1], check.Matches, `quadratic\t3\t[0-9.]+\t[0-9.]+\t[0-9.]+`)
	c.Check(lines[2], check.Matches, `loglinear\t3\t[0-9.]+\t[0-9.]+\t[0-9.]+`)

	for _, args := range [][]string{{"-n=0"}, {"-trials=0"}, {"-max-value=0"}, {"-algorithm=nope"}} {
		code = (&benchcmd{}).RunCommand("lis bench", args, bytes.NewReader(nil), &bytes.Buffer{}, &bytes.Buffer{})
		c.Check(code, check.Equals, 2, check.Commentf("args %v", args))
	}
}

func (s *benchSuite) TestRandomSequenceDeterministic(c *check.C) {
	a := randomSequence(rand.New(rand.NewSource(5)), 20, 10)
	b := randomSequence(rand.New(rand.NewSource(5)), 20, 10)
	c.Check(a, check.DeepEquals, b)
	for _, v := range a {
		c.Check(v >= 0 && v < 10, check.Equals, true)
	}
}

func (s *benchSuite) TestThrottle(c *check.C) {
	var running, peak int32
	th := throttle{Max: 3}
	for i := 0; i < 20; i++ {
		th.Go(func() error {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			atomic.AddInt32(&running, -1)
			return nil
		})
	}
	c.Check(th.Wait(), check.IsNil)
	c.Check(peak <= 3, check.Equals, true)

	failing := &throttle{Max: 1}
	var calls int32
	failing.Go(func() error { atomic.AddInt32(&calls, 1); return errors.New("first") })
	c.Check(failing.Wait(), check.ErrorMatches, "first")
	failing.Go(func() error { atomic.AddInt32(&calls, 1); return nil })
	c.Check(failing.Wait(), check.ErrorMatches, "first")
	c.Check(calls, check.Equals, int32(1))
}
