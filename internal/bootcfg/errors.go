// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootcfg

import (
	"errors"
	"fmt"
)

// ErrEmptyConfig is returned when the configuration document contains no
// data at all.
var ErrEmptyConfig = errors.New("configuration is empty")

// FormatError is returned for address or size tokens that match neither the
// hexadecimal form nor the suffixed size form.
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized address or size %q", e.Token)
}

func (e *FormatError) Is(other error) bool {
	_, ok := other.(*FormatError)
	return ok
}

// ConfigError is returned for structurally invalid configurations, like
// missing required fields or references to unknown domains.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func (e *ConfigError) Is(other error) bool {
	_, ok := other.(*ConfigError)
	return ok
}
