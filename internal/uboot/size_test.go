// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package uboot_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/genboot/internal/uboot"
)

func TestFileSize(t *testing.T) {
	fsys := afero.NewMemMapFs()

	err := afero.WriteFile(
		fsys,
		filepath.Join("out", "guest.bin"),
		make([]byte, 0x400),
		0o644,
	)
	require.NoError(t, err)

	assert.Equal(t, uint64(0x400), uboot.FileSize(fsys, "out", "guest.bin"))
}

func TestFileSizeMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	size := uboot.FileSize(fsys, "out", "missing.bin")
	assert.Equal(t, uint64(uboot.DefaultModuleSize), size)
}
