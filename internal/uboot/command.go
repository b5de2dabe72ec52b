// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package uboot

import (
	"strconv"
	"strings"
)

// Command is a single U-Boot shell command. The zero value is a blank
// spacer line.
type Command struct {
	name string
	args []string
}

// String implements [fmt.Stringer].
func (c Command) String() string {
	if c.name == "" {
		return ""
	}

	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Blank returns an empty spacer line.
func Blank() Command {
	return Command{}
}

// Fatload reads a file from a FAT formatted storage device into memory at
// the given address.
func Fatload(mediaType string, mediaNumber int, addr, file string) Command {
	return Command{
		name: "fatload",
		args: []string{mediaType, strconv.Itoa(mediaNumber), addr, file},
	}
}

// FdtAddr selects the device tree at the given address as working tree.
func FdtAddr(addr string) Command {
	return Command{name: "fdt", args: []string{"addr", addr}}
}

// FdtResize grows the working tree by the given number of bytes.
func FdtResize(extra int) Command {
	return Command{name: "fdt", args: []string{"resize", strconv.Itoa(extra)}}
}

// FdtMknode creates a node below the given path in the working tree.
func FdtMknode(path, node string) Command {
	return Command{name: "fdt", args: []string{"mknode", path, node}}
}

// FdtSet sets a property on the node at the given path. The values are
// emitted verbatim, so they must already be in their U-Boot form, see
// [Quote] and [Cells]. Without values the property is set empty.
func FdtSet(path, property string, values ...string) Command {
	return Command{
		name: "fdt",
		args: append([]string{"set", path, property}, values...),
	}
}

// FdtPrint prints the subtree at the given path.
func FdtPrint(path string) Command {
	return Command{name: "fdt", args: []string{"print", path}}
}

// Booti boots an ARM64 kernel image with the given device tree.
func Booti(addr, initrd, fdtAddr string) Command {
	return Command{name: "booti", args: []string{addr, initrd, fdtAddr}}
}

// Quote renders a string property value.
func Quote(value string) string {
	return `"` + value + `"`
}

// Cells renders a list of cell values.
func Cells(values ...string) string {
	return "<" + strings.Join(values, " ") + ">"
}

// Hex renders a number as unpadded hexadecimal cell value.
func Hex(value uint64) string {
	return "0x" + strconv.FormatUint(value, 16)
}
