// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package uboot provides U-Boot command primitives and the assembler that
// turns a boot configuration into the command script for a Xen dom0-less
// boot: fatload commands for all artifacts, fdt edits that describe each
// domU under /chosen and a final booti handing off to the hypervisor.
//
// The package never touches the artifacts themselves beyond a size lookup
// for the fdt module reg entries. It expects them to be present in the
// output directory once U-Boot runs the script.
package uboot
