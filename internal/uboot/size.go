// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package uboot

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultModuleSize is the fallback for fdt module reg entries when the
// artifact is not present in the output directory yet.
const DefaultModuleSize = 0x100000

// FileSize returns the size of the named artifact in dir. A missing file
// is not fatal, the script only needs sizes for the module reg entries, so
// [DefaultModuleSize] is used and a warning is logged.
func FileSize(fsys afero.Fs, dir, name string) uint64 {
	info, err := fsys.Stat(filepath.Join(dir, name))
	if err != nil {
		slog.Warn("Artifact not found, using default module size",
			slog.String("file", name),
			slog.String("size", Hex(DefaultModuleSize)))

		return DefaultModuleSize
	}

	return uint64(info.Size())
}
