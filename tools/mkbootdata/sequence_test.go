package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopherboot/kernel/boot"
	"gopherboot/kernel/gdt"
)

// assertInOrder checks that every item of exp appears in src after the
// previous one.
func assertInOrder(t *testing.T, src string, exp []string) {
	t.Helper()

	offset := 0
	for _, s := range exp {
		idx := strings.Index(src[offset:], s)
		if !assert.NotEqual(t, -1, idx, "expected %q after offset %d", s, offset) {
			return
		}
		offset += idx + len(s)
	}
}

func TestRenderSequenceVerify(t *testing.T) {
	seq, err := renderSequence(boot.DefaultLayout())
	require.NoError(t, err)

	assertInOrder(t, macroBody(t, string(seq), "BOOT_VERIFY"), []string{
		"\tcall check_multiboot\n",
		"\tmov esi, boot_msg_not_loaded_by_expected_loader\n",
		"\tmov ecx, BOOT_MSG_NOT_LOADED_BY_EXPECTED_LOADER_LEN\n",
		"\tjc boot_fail\n",
		"\tcall check_cpuid\n",
		"\tmov esi, boot_msg_cpuid_unavailable\n",
		"\tjc boot_fail\n",
		"\tcall check_long_mode\n",
		"\tmov esi, boot_msg_long_mode_unsupported\n",
		"\tjc boot_fail\n",
	})
}

func TestRenderSequenceTransition(t *testing.T) {
	seq, err := renderSequence(boot.DefaultLayout())
	require.NoError(t, err)

	body := macroBody(t, string(seq), "BOOT_TRANSITION")
	assertInOrder(t, body, []string{
		"\tmov eax, cr4\n\tor eax, 0x20\n\tmov cr4, eax\n",
		"\tmov eax, 0x101000\n\tmov cr3, eax\n",
		"\tmov ecx, 0xc0000080\n\trdmsr\n\tor eax, 0x100\n\twrmsr\n",
		"\tmov eax, cr0\n\tor eax, 0x80000000\n\tmov cr0, eax\n",
		"\tlgdt [boot_gdt_ptr]\n",
		"\tjmp 0x8:long_mode_start\n",
	})
	assert.Contains(t, body, "; load the GDT (limit 15, base 0x107000)\n")
}

func TestRenderSequenceEnter(t *testing.T) {
	seq, err := renderSequence(boot.DefaultLayout())
	require.NoError(t, err)

	assertInOrder(t, macroBody(t, string(seq), "BOOT_ENTER"), []string{
		"\tmov ax, 0x0\n",
		"\tmov ss, ax\n\tmov ds, ax\n\tmov es, ax\n\tmov fs, ax\n\tmov gs, ax\n",
		"\tmov rsp, 0x0\n",
		"\tcall rt0_64_prepare_managed\n",
		"\tcall main.main\n",
		"%%halt:\n\tcli\n\thlt\n\tjmp %%halt\n",
	})
}

func TestAsmMachineGDTMismatch(t *testing.T) {
	var w nasmWriter
	m := &asmMachine{w: &w, gdtPtr: gdt.Boot.Pointer(0x107000)}

	m.LoadGDT(gdt.Boot.Pointer(0x200000))
	assert.EqualError(t, m.err, "GDT pointer {limit: 15, base: 0x200000} does not match the emitted boot_gdt_ptr {limit: 15, base: 0x107000}")
	assert.Contains(t, string(w.Bytes()), "lgdt [boot_gdt_ptr]")
}
