package main

import (
	"fmt"
	"strings"

	"gopherboot/kernel/boot"
	"gopherboot/kernel/gdt"
	"gopherboot/kernel/mm/vmm"
)

const (
	cr4PAE     = 1 << 5
	eferMSR    = 0xc0000080
	eferLME    = 1 << 8
	cr0Paging  = 1 << 31
	failLabel  = "boot_fail"
	gdtPtrSym  = "boot_gdt_ptr"
	prepareSym = "rt0_64_prepare_managed"
)

// asmMachine implements boot.PrivilegedOps and boot.EntryOps by emitting the
// instructions that perform each operation.
type asmMachine struct {
	w      *nasmWriter
	gdtPtr gdt.Pointer
	err    error
}

func (m *asmMachine) EnablePAE() {
	m.w.comment("enable PAE")
	m.w.instr("mov eax, cr4")
	m.w.instr("or eax, 0x%x", cr4PAE)
	m.w.instr("mov cr4, eax")
}

func (m *asmMachine) LoadTableRoot(root uintptr) {
	m.w.comment("load the L4 table")
	m.w.instr("mov eax, 0x%x", root)
	m.w.instr("mov cr3, eax")
}

func (m *asmMachine) EnableLongMode() {
	m.w.comment("set EFER.LME")
	m.w.instr("mov ecx, 0x%x", eferMSR)
	m.w.instr("rdmsr")
	m.w.instr("or eax, 0x%x", eferLME)
	m.w.instr("wrmsr")
}

func (m *asmMachine) EnablePaging() {
	m.w.comment("enable paging")
	m.w.instr("mov eax, cr0")
	m.w.instr("or eax, 0x%x", uint32(cr0Paging))
	m.w.instr("mov cr0, eax")
}

func (m *asmMachine) LoadGDT(ptr gdt.Pointer) {
	if ptr != m.gdtPtr && m.err == nil {
		m.err = fmt.Errorf("GDT pointer {limit: %d, base: 0x%x} does not match the emitted %s {limit: %d, base: 0x%x}",
			ptr.Limit, ptr.Base, gdtPtrSym, m.gdtPtr.Limit, m.gdtPtr.Base)
	}

	m.w.comment("load the GDT (limit %d, base 0x%x)", ptr.Limit, ptr.Base)
	m.w.instr("lgdt [%s]", gdtPtrSym)
}

func (m *asmMachine) FarJump(sel gdt.Selector, target string) {
	m.w.comment("reload CS and leave compatibility mode")
	m.w.instr("jmp 0x%x:%s", uint16(sel), target)
}

func (m *asmMachine) LoadDataSegments(sel gdt.Selector) {
	m.w.comment("load data segment selectors")
	m.w.instr("mov ax, 0x%x", uint16(sel))
	for _, reg := range []string{"ss", "ds", "es", "fs", "gs"} {
		m.w.instr("mov %s, ax", reg)
	}
}

func (m *asmMachine) SetStackPointer(sp uintptr) {
	m.w.comment("switch to the stack window")
	m.w.instr("mov rsp, 0x%x", sp)
}

func (m *asmMachine) CallManaged(symbol string) {
	m.w.comment("enter Go code; halt if it returns")
	m.w.instr("call %s", prepareSym)
	m.w.instr("call %s", symbol)
	m.w.line("%%%%halt:")
	m.w.instr("cli")
	m.w.instr("hlt")
	m.w.instr("jmp %%%%halt")
}

// renderSequence generates boot_sequence.inc. It holds three macros:
// BOOT_VERIFY runs the checks in order and jumps to boot_fail with the
// failure message in ESI and its length in ECX; BOOT_TRANSITION switches to
// long mode; BOOT_ENTER prepares the 64-bit environment and calls Go code.
func renderSequence(layout boot.Layout) ([]byte, error) {
	tables := new(vmm.TableSet)
	if err := tables.Build(layout.Tables); err != nil {
		return nil, err
	}

	var w nasmWriter
	m := &asmMachine{w: &w, gdtPtr: gdt.Boot.Pointer(layout.GDT)}

	w.line(generatedHeader)
	w.blank()

	w.comment("each check routine returns with CF set if the check fails")
	w.line("%%macro BOOT_VERIFY 0")
	for _, check := range boot.Checks() {
		f := check.Failure
		w.instr("call %s", check.Routine)
		w.instr("mov esi, %s", failureMessageLabel(f))
		w.instr("mov ecx, %s", messageLenSym(f))
		w.instr("jc %s", failLabel)
	}
	w.line("%%endmacro")
	w.blank()

	w.line("%%macro BOOT_TRANSITION 0")
	boot.Transition(m, tables, layout)
	w.line("%%endmacro")
	w.blank()

	w.line("%%macro BOOT_ENTER 0")
	boot.Enter(m)
	w.line("%%endmacro")

	if m.err != nil {
		return nil, m.err
	}

	return w.Bytes(), nil
}

func messageLenSym(f boot.Failure) string {
	return "BOOT_MSG_" + strings.ToUpper(symbolName(f.String())) + "_LEN"
}
