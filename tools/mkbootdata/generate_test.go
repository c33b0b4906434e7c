package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedFilesAreUpToDate(t *testing.T) {
	archDir := filepath.Join("..", "..", "arch", "x86_64")

	cfg, err := loadConfig(filepath.Join(archDir, "bootlayout.yaml"))
	require.NoError(t, err)

	layout, err := cfg.Layout()
	require.NoError(t, err)

	data, items, err := renderData(layout, cfg.Header())
	require.NoError(t, err)

	seq, err := renderSequence(layout)
	require.NoError(t, err)

	specs := []struct {
		path string
		exp  []byte
	}{
		{filepath.Join(archDir, "asm", "boot_data.inc"), data},
		{filepath.Join(archDir, "asm", "boot_sequence.inc"), seq},
		{filepath.Join(archDir, "script", "boot_layout.ld"), renderLinkerSymbols(layout, items)},
	}

	for _, spec := range specs {
		committed, err := os.ReadFile(spec.path)
		require.NoError(t, err)
		assert.Equal(t, string(spec.exp), string(committed), "%s is stale; run make generate", spec.path)
	}
}

func TestEntryStubs(t *testing.T) {
	asmDir := filepath.Join("..", "..", "arch", "x86_64", "asm")

	rt032, err := os.ReadFile(filepath.Join(asmDir, "rt0_32.s"))
	require.NoError(t, err)

	// The info pointer is recorded only once the loader magic matched.
	entry := string(rt032)[strings.Index(string(rt032), "_rt0_32_entry:"):strings.Index(string(rt032), "check_multiboot:")]
	assert.NotContains(t, entry, "rt0_multiboot_info")
	assertInOrder(t, string(rt032), []string{
		"check_multiboot:\n",
		"\tcmp dword [rt0_multiboot_magic], BOOT_LOADER_MAGIC\n",
		"\tjne .fail\n",
		"\tmov [rt0_multiboot_info], ebx\n",
		"\tclc\n",
	})

	rt064, err := os.ReadFile(filepath.Join(asmDir, "rt0_64.s"))
	require.NoError(t, err)

	// g0.stack.hi must not wrap below g0.stack.lo.
	assertInOrder(t, string(rt064), []string{
		"\tmov rax, BOOT_STACK_BASE\n",
		"\tmov [rsi], rax\n",
		"\tmov qword [rsi+8], -1\n",
	})
	assert.NotContains(t, string(rt064), "BOOT_STACK_CEILING")
}
