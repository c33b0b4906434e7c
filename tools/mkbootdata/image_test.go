package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gopherboot/multiboot"
)

func TestCheckImage(t *testing.T) {
	dir := t.TempDir()
	header := multiboot.DefaultHeader.Encode()

	withHeader := filepath.Join(dir, "kernel.bin")
	image := append(make([]byte, 64), header[:]...)
	require.NoError(t, os.WriteFile(withHeader, image, 0644))
	assert.NoError(t, checkImage(withHeader, zap.NewNop()))

	withoutHeader := filepath.Join(dir, "empty.bin")
	require.NoError(t, os.WriteFile(withoutHeader, make([]byte, 128), 0644))
	assert.Equal(t, error(multiboot.ErrHeaderNotFound), checkImage(withoutHeader, zap.NewNop()))

	assert.Error(t, checkImage(filepath.Join(dir, "missing.bin"), zap.NewNop()))
}
