// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/aibor/genboot/internal/bootcfg"
	"github.com/aibor/genboot/internal/uboot"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// openConfig returns the configuration source. Without a config file
// argument stdin is used, unless it is an interactive terminal.
func openConfig(flags *flags, cfg IO) (io.ReadCloser, error) {
	if flags.configPath != "" {
		file, err := os.Open(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}

		return file, nil
	}

	if file, ok := cfg.Stdin.(*os.File); ok {
		if term.IsTerminal(int(file.Fd())) {
			return nil, ErrNoInput
		}
	}

	return io.NopCloser(cfg.Stdin), nil
}

func validateDir(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	return nil
}

func run(flags *flags, cfg IO) error {
	err := validateDir(flags.dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	input, err := openConfig(flags, cfg)
	if err != nil {
		return err
	}
	defer input.Close()

	config, err := bootcfg.Load(input)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	script, err := uboot.Build(uboot.Spec{
		Config: config,
		Dir:    flags.dir,
		Fsys:   afero.NewOsFs(),
	})
	if err != nil {
		return fmt.Errorf("build script: %w", err)
	}

	slog.Debug("Assembled boot script",
		slog.Int("commands", len(script)))

	_, err = script.WriteTo(cfg.Stdout)
	if err != nil {
		return fmt.Errorf("write script: %w", err)
	}

	return nil
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help is requested. So exit without
	// error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// parseArgs already prints errors, so just exit non-zero.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return 1
}

// Run is the main entry point for the CLI command.
func Run(args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debugFlag)

	if flags.versionFlag {
		fmt.Fprintf(cfg.Stdout, "%s %s\n", flags.name, version)
		return 0
	}

	err = run(flags, cfg)
	if err != nil {
		slog.Error(err.Error())
		return 1
	}

	return 0
}
