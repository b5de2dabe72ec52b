// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bootcfg provides the declarative boot configuration model for
// Xen dom0-less boot script generation. It decodes the YAML document,
// normalizes address and size values into their integer form and validates
// the structural requirements before any script is assembled.
package bootcfg
