// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package uboot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/aibor/genboot/internal/bootcfg"
)

const chosenPath = "/chosen"

// Extra bytes the working device tree is grown by before the domU nodes
// are added.
const fdtResizeExtra = 2048

// Script is an ordered U-Boot command sequence. It is deterministic and
// solely a function of the configuration it was built from.
type Script []Command

// WriteTo implements [io.WriterTo]. Commands are written one per line.
func (s Script) WriteTo(w io.Writer) (int64, error) {
	var written int64

	for _, command := range s {
		n, err := fmt.Fprintln(w, command.String())

		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write command: %w", err)
		}
	}

	return written, nil
}

// Spec defines the inputs for [Build].
type Spec struct {
	// Config is the boot configuration to assemble the script from.
	Config *bootcfg.BootConfig

	// Dir is the output directory holding the boot artifacts.
	Dir string

	// Fsys is used to determine artifact sizes in Dir.
	Fsys afero.Fs
}

// Build assembles the boot script for the given spec. The configuration is
// validated first, so no partial script is ever produced for an invalid
// configuration.
func Build(spec Spec) (Script, error) {
	if err := spec.Config.Validate(); err != nil {
		return nil, err
	}

	b := &builder{
		config: spec.Config,
		dir:    spec.Dir,
		fsys:   spec.Fsys,
	}

	b.loadCommands()
	b.fdtSetup()

	for num, domain := range b.config.BootDomains() {
		b.domainNode(num+1, domain)
	}

	b.bootCommands()

	return b.script, nil
}

type builder struct {
	script Script
	config *bootcfg.BootConfig
	dir    string
	fsys   afero.Fs
}

func (b *builder) append(commands ...Command) {
	b.script = append(b.script, commands...)
}

func (b *builder) fatload(addr bootcfg.Value, file string) Command {
	media := b.config.Media
	return Fatload(media.Type, media.Number, addr.Hex(), file)
}

func (b *builder) fileSize(name string) uint64 {
	return FileSize(b.fsys, b.dir, name)
}

// loadCommands emits the fatload commands: device tree and hypervisor
// first, then kernel, device tree and ramdisk of each boot domain in
// configuration order.
func (b *builder) loadCommands() {
	config := b.config

	b.append(b.fatload(config.DT.Addr, config.DT.File))
	b.append(b.fatload(config.Xen.Addr, config.Xen.File))

	for _, domain := range config.BootDomains() {
		b.append(b.fatload(domain.Kernel.Addr, domain.Kernel.File))

		if domain.DT.File != "" {
			b.append(b.fatload(domain.DT.Addr, domain.DT.File))
		}

		if domain.Ramdisk.File != "" {
			b.append(b.fatload(domain.Ramdisk.Addr, domain.Ramdisk.File))
		}
	}
}

func (b *builder) fdtSetup() {
	config := b.config

	b.append(
		FdtAddr(config.DT.Addr.Hex()),
		FdtResize(fdtResizeExtra),
		Blank(),
	)

	if config.StdoutPath != "" {
		b.append(FdtSet(chosenPath, "stdout-path", Quote(config.StdoutPath)))
	}

	if bootargs := xenBootargs(&config.Xen); bootargs != "" {
		b.append(FdtSet(chosenPath, "xen,xen-bootargs", Quote(bootargs)))
	}

	b.append(Blank(), Blank())
}

// xenBootargs assembles the hypervisor command line from the configured
// bootargs and the LLC coloring settings. A colors list enables coloring
// even when its first entry is the "none" sentinel, which only suppresses
// the hypervisor's own color assignment.
func xenBootargs(xen *bootcfg.Xen) string {
	parts := make([]string, 0, 3)

	if xen.Bootargs != "" {
		parts = append(parts, xen.Bootargs)
	}

	if len(xen.Colors) > 0 {
		parts = append(parts, "llc-coloring=on")

		if color, ok := xen.XenColor(); ok {
			parts = append(parts, "xen-llc-colors="+color)
		}
	}

	return strings.Join(parts, " ")
}

// domainNode emits the /chosen/domU node for a boot domain. The node
// number is the position in the emitted subset, while the coloring
// assignment follows the position in the full domain list.
func (b *builder) domainNode(num int, domain bootcfg.BootDomain) {
	node := "domU" + strconv.Itoa(num)
	path := chosenPath + "/" + node

	b.append(
		FdtMknode(chosenPath, node),
		FdtSet(path, "compatible", Quote("xen,domain")),
		FdtSet(path, "cpus", Cells(Hex(uint64(domain.Params.CPUs)))),
		FdtSet(path, `\#address-cells`, Cells("0x1")),
		FdtSet(path, `\#size-cells`, Cells("0x1")),
		FdtSet(path, "memory", Cells("0x0", Hex(domain.Params.Memory.KiB()))),
		Blank(),
	)

	if domain.Params.VPL011 {
		b.append(FdtSet(path, "vpl011"))
	}

	b.kernelModule(path, domain)

	if domain.DT.File != "" {
		b.dtModule(path, domain.DT)
	}

	if domain.Ramdisk.File != "" {
		b.ramdiskModule(path, domain.Ramdisk)
	}
}

func (b *builder) kernelModule(path string, domain bootcfg.BootDomain) {
	addr := domain.Kernel.Addr.Hex()
	modulePath := path + "/module@" + addr

	b.append(FdtMknode(path, "module@"+addr))

	if color, ok := b.config.Xen.DomainColor(domain.Index); ok {
		b.append(FdtSet(path, "llc-colors", Quote(color)))
	}

	b.append(
		FdtSet(modulePath, "compatible",
			Quote("multiboot,kernel"), Quote("multiboot,module")),
		FdtSet(modulePath, "reg",
			Cells(addr, Hex(b.fileSize(domain.Kernel.File)))),
		Blank(),
	)

	if domain.Kernel.Bootargs != "" {
		b.append(
			FdtSet(modulePath, "bootargs", Quote(domain.Kernel.Bootargs)),
			Blank(),
		)
	}
}

func (b *builder) dtModule(path string, artifact bootcfg.Artifact) {
	addr := artifact.Addr.Hex()
	modulePath := path + "/module@" + addr

	// Device tree module sizes are emitted in decimal.
	size := strconv.FormatUint(b.fileSize(artifact.File), 10)

	b.append(
		FdtMknode(path, "module@"+addr),
		FdtSet(modulePath, "compatible",
			Quote("multiboot,device-tree"), Quote("multiboot,module")),
		FdtSet(modulePath, "reg", Cells(addr, size)),
		Blank(),
		Blank(),
	)
}

func (b *builder) ramdiskModule(path string, artifact bootcfg.Artifact) {
	addr := artifact.Addr.Hex()
	modulePath := path + "/module@" + addr

	b.append(
		FdtMknode(path, "module@"+addr),
		FdtSet(modulePath, "compatible",
			Quote("multiboot,ramdisk"), Quote("multiboot,module")),
		FdtSet(modulePath, "reg", Cells(addr, Hex(b.fileSize(artifact.File)))),
		Blank(),
	)
}

func (b *builder) bootCommands() {
	config := b.config

	b.append(
		FdtPrint(chosenPath),
		Booti(config.Xen.Addr.Hex(), "-", config.DT.Addr.Hex()),
	)
}
