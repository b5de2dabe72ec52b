// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootcfg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Value is a memory address or byte size from the boot configuration,
// normalized to its integer form.
type Value uint64

// Size tokens are a decimal number followed by a binary (1024 based) unit.
var sizePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?\s*(KiB|MiB|GiB|TiB)$`)

// ParseValue normalizes an address or size token. Tokens with a 0x prefix
// are hexadecimal addresses. Decimal numbers with a binary unit suffix are
// byte sizes, fractional values truncated towards zero. Everything else,
// bare decimals included, fails with a [FormatError].
func ParseValue(token string) (Value, error) {
	token = strings.TrimSpace(token)

	if strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X") {
		value, err := strconv.ParseUint(token[2:], 16, 64)
		if err != nil {
			return 0, &FormatError{Token: token}
		}

		return Value(value), nil
	}

	if sizePattern.MatchString(token) {
		value, err := humanize.ParseBytes(token)
		if err != nil {
			return 0, &FormatError{Token: token}
		}

		return Value(value), nil
	}

	return 0, &FormatError{Token: token}
}

// Hex renders the value the way U-Boot commands expect addresses.
func (v Value) Hex() string {
	return fmt.Sprintf("0x%08x", uint64(v))
}

// KiB returns the value converted from bytes to KiB, truncated.
func (v Value) KiB() uint64 {
	return uint64(v) / 1024
}

// UnmarshalYAML implements [yaml.Unmarshaler] so values are normalized
// eagerly while the configuration is decoded.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &FormatError{Token: node.Value}
	}

	value, err := ParseValue(node.Value)
	if err != nil {
		return err
	}

	*v = value

	return nil
}
