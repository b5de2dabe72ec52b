// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *flags
		expectedErr error
	}{
		{
			name:        "help",
			args:        []string{"genboot", "-help"},
			expectedErr: flag.ErrHelp,
		},
		{
			name: "directory only",
			args: []string{"genboot", "out"},
			expected: &flags{
				name: "genboot",
				dir:  "out",
			},
		},
		{
			name: "config file and directory",
			args: []string{"genboot", "boot.yaml", "out"},
			expected: &flags{
				name:       "genboot",
				configPath: "boot.yaml",
				dir:        "out",
			},
		},
		{
			name: "flags before positional args",
			args: []string{"genboot", "-debug", "boot.yaml", "out"},
			expected: &flags{
				name:       "genboot",
				configPath: "boot.yaml",
				dir:        "out",
				debugFlag:  true,
			},
		},
		{
			name: "version without positional args",
			args: []string{"genboot", "-version"},
			expected: &flags{
				name:        "genboot",
				versionFlag: true,
			},
		},
		{
			name:        "no positional args",
			args:        []string{"genboot"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "too many positional args",
			args:        []string{"genboot", "boot.yaml", "out", "extra"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "unknown flag",
			args:        []string{"genboot", "-frobnicate", "out"},
			expectedErr: &ParseArgsError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := parseArgs(tt.args, io.Discard)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, tt.expected, actual)
		})
	}
}
