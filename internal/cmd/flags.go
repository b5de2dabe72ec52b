// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
)

// Set on build.
var version = "dev"

type flags struct {
	name string

	// configPath is the YAML configuration file. Empty means the
	// configuration is read from stdin.
	configPath string

	// dir is the output directory the boot artifacts live in.
	dir string

	debugFlag   bool
	versionFlag bool
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{name: args[0]}

	fsName := flags.name + " [flags...] [config.yaml] directory"
	fs := flag.NewFlagSet(fsName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(
		&flags.debugFlag,
		"debug",
		flags.debugFlag,
		"enable debug output",
	)

	fs.BoolVar(
		&flags.versionFlag,
		"version",
		flags.versionFlag,
		"show version and exit",
	)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	// With the version flag the positional arguments do not matter, the
	// command prints the version and exits.
	if flags.versionFlag {
		return flags, nil
	}

	// Fail like flag does. It prints the error first and then usage.
	failf := func(format string, a ...any) error {
		err := &ParseArgsError{msg: fmt.Sprintf(format, a...)}
		fmt.Fprintln(fs.Output(), err.Error())

		fs.Usage()

		return err
	}

	// One positional argument means the configuration comes in on stdin.
	switch fs.NArg() {
	case 1:
		flags.dir = fs.Arg(0)
	case 2:
		flags.configPath = fs.Arg(0)
		flags.dir = fs.Arg(1)
	default:
		return nil, failf("expected arguments: [config.yaml] directory")
	}

	return flags, nil
}
