// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootcfg

import (
	"fmt"
	"slices"
)

// Validate checks the structural requirements of the configuration. All
// violations are [ConfigError]s.
func (c *BootConfig) Validate() error {
	if c.Xen.File == "" {
		return &ConfigError{msg: "xen: file is required"}
	}

	if c.DT.File == "" {
		return &ConfigError{msg: "dt: file is required"}
	}

	if len(c.Domains) == 0 {
		return &ConfigError{msg: "domains: at least one domain is required"}
	}

	for _, domain := range c.Domains {
		if domain.Kernel.File == "" {
			return &ConfigError{
				msg: fmt.Sprintf("domain %s: kernel file is required", domain.Name),
			}
		}
	}

	for _, name := range c.Xen.BootOnly {
		if !c.hasDomain(name) {
			return &ConfigError{
				msg: fmt.Sprintf("bootonly: unknown domain %q", name),
			}
		}
	}

	return nil
}

func (c *BootConfig) hasDomain(name string) bool {
	return slices.ContainsFunc(c.Domains, func(d Domain) bool {
		return d.Name == name
	})
}
