// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"os"

	"git.arvados.org/arvados.git/lib/cmd"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	handler = cmd.Multi(map[string]cmd.Handler{
		"version":   cmd.Version,
		"-version":  cmd.Version,
		"--version": cmd.Version,

		"run":          &runcmd{},
		"bench":        &benchcmd{},
		"export-numpy": &exportNumpy{},
	})
)

func Main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.StandardLogger().Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}
	args := os.Args[1:]
	if len(args) == 0 {
		// With no subcommand, run both algorithms on the sample.
		args = []string{"run"}
	}
	os.Exit(handler.RunCommand(os.Args[0], args, os.Stdin, os.Stdout, os.Stderr))
}
