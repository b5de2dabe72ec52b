// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootcfg

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Default load addresses and domain parameters, applied where the
// configuration leaves them out.
const (
	defaultMediaType = "mmc"

	defaultXenAddr      = 0x01000000
	defaultDTAddr       = 0x02000000
	defaultKernelAddr   = 0x03000000
	defaultDomainDTAddr = 0x04000000
	defaultRamdiskAddr  = 0x05000000

	defaultMemory = 64 * 1024 * 1024
	defaultCPUs   = 1
)

// Sentinel in the colors list for an entry without a color assignment.
const colorNone = "none"

// Media selects the U-Boot storage device the artifacts are loaded from.
type Media struct {
	Type   string `yaml:"type"`
	Number int    `yaml:"number"`
}

// Artifact is a binary referenced by the configuration, together with the
// memory address it is loaded to and, for kernels, its boot arguments.
type Artifact struct {
	File     string `yaml:"file"`
	Addr     Value  `yaml:"addr"`
	Bootargs string `yaml:"bootargs"`
}

// Xen describes the hypervisor binary and its boot parameters.
type Xen struct {
	File     string   `yaml:"file"`
	Addr     Value    `yaml:"addr"`
	Bootargs string   `yaml:"bootargs"`

	// Colors is the LLC coloring list. The first entry is the color
	// assignment for the hypervisor itself, the following entries map
	// positionally to the configured domains.
	Colors []string `yaml:"colors"`

	// BootOnly restricts the generated script to the named domains.
	BootOnly []string `yaml:"bootonly"`
}

// XenColor returns the LLC color assignment for the hypervisor itself.
func (x *Xen) XenColor() (string, bool) {
	if len(x.Colors) == 0 || x.Colors[0] == colorNone {
		return "", false
	}

	return x.Colors[0], true
}

// DomainColor returns the LLC color assignment for the domain at the given
// position in the full domain list.
func (x *Xen) DomainColor(idx int) (string, bool) {
	pos := idx + 1
	if pos >= len(x.Colors) || x.Colors[pos] == colorNone {
		return "", false
	}

	return x.Colors[pos], true
}

// Params are the domain runtime parameters written to its /chosen node.
type Params struct {
	Memory Value `yaml:"memory"`
	CPUs   uint  `yaml:"cpus"`
	VPL011 bool  `yaml:"vpl011"`
}

// Domain is a single domU entry. Its position in the configured domain
// mapping determines boot order and coloring assignment.
type Domain struct {
	Name    string   `yaml:"-"`
	Params  Params   `yaml:"params"`
	Kernel  Artifact `yaml:"kernel"`
	DT      Artifact `yaml:"dt"`
	Ramdisk Artifact `yaml:"ramdisk"`
}

// DomainList preserves the document order of the domains mapping.
type DomainList []Domain

// UnmarshalYAML decodes the domains mapping without losing the order of its
// keys, which a plain map decode would.
func (l *DomainList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &ConfigError{msg: "domains must be a mapping"}
	}

	names := make(map[string]bool, len(node.Content)/2)

	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		name := node.Content[idx].Value

		if names[name] {
			return &ConfigError{
				msg: fmt.Sprintf("domains: duplicate domain %q", name),
			}
		}

		names[name] = true

		var domain Domain

		if err := node.Content[idx+1].Decode(&domain); err != nil {
			return fmt.Errorf("domain %s: %w", name, err)
		}

		domain.Name = name
		*l = append(*l, domain)
	}

	return nil
}

// BootConfig is the complete boot configuration for a single run. It is
// immutable once returned by [Load].
type BootConfig struct {
	Media      Media      `yaml:"media"`
	Xen        Xen        `yaml:"xen"`
	DT         Artifact   `yaml:"dt"`
	StdoutPath string     `yaml:"stdout_path"`
	Domains    DomainList `yaml:"domains"`
}

// Load reads and decodes the YAML boot configuration from the given reader
// and fills in the default values for absent fields.
func Load(r io.Reader) (*BootConfig, error) {
	var config BootConfig

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(&config)
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyConfig
	}

	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	config.addDefaults()

	return &config, nil
}

func (c *BootConfig) addDefaults() {
	if c.Media.Type == "" {
		c.Media.Type = defaultMediaType
	}

	if c.Xen.Addr == 0 {
		c.Xen.Addr = defaultXenAddr
	}

	if c.DT.Addr == 0 {
		c.DT.Addr = defaultDTAddr
	}

	for idx := range c.Domains {
		domain := &c.Domains[idx]

		if domain.Kernel.Addr == 0 {
			domain.Kernel.Addr = defaultKernelAddr
		}

		if domain.DT.File != "" && domain.DT.Addr == 0 {
			domain.DT.Addr = defaultDomainDTAddr
		}

		if domain.Ramdisk.File != "" && domain.Ramdisk.Addr == 0 {
			domain.Ramdisk.Addr = defaultRamdiskAddr
		}

		if domain.Params.Memory == 0 {
			domain.Params.Memory = defaultMemory
		}

		if domain.Params.CPUs == 0 {
			domain.Params.CPUs = defaultCPUs
		}
	}
}

// BootDomain is a domain selected for boot. Index is its position in the
// full domain list, which stays significant for coloring even when a
// bootonly filter skips earlier domains.
type BootDomain struct {
	Domain

	Index int
}

// BootDomains returns the domains to generate commands for, in
// configuration order. With a bootonly filter only the named domains are
// returned, their relative order preserved.
func (c *BootConfig) BootDomains() []BootDomain {
	selected := func(string) bool { return true }

	if c.Xen.BootOnly != nil {
		names := make(map[string]bool, len(c.Xen.BootOnly))
		for _, name := range c.Xen.BootOnly {
			names[name] = true
		}

		selected = func(name string) bool { return names[name] }
	}

	domains := make([]BootDomain, 0, len(c.Domains))

	for idx, domain := range c.Domains {
		if selected(domain.Name) {
			domains = append(domains, BootDomain{Domain: domain, Index: idx})
		}
	}

	return domains
}
