package boot

import (
	"fmt"
	"testing"

	"gopherboot/kernel/cpu"
	"gopherboot/kernel/gdt"
	"gopherboot/kernel/kfmt"
	"gopherboot/multiboot"
)

// simMachine emulates the processor state touched by the boot stage and
// records a fault whenever an operation runs without its prerequisites.
type simMachine struct {
	pae, lme, paging bool
	cr3              uintptr
	gdtr             *gdt.Pointer
	cs               gdt.Selector
	rip              string
	dataSegs         gdt.Selector
	dataSegsLoaded   bool
	rsp              uintptr
	rspSet           bool
	called           string

	log    []string
	faults []string
}

func (m *simMachine) fault(format string, args ...interface{}) {
	m.faults = append(m.faults, fmt.Sprintf(format, args...))
}

func (m *simMachine) EnablePAE() {
	m.log = append(m.log, "EnablePAE")
	m.pae = true
}

func (m *simMachine) LoadTableRoot(root uintptr) {
	m.log = append(m.log, "LoadTableRoot")
	if !m.pae {
		m.fault("CR3 loaded before PAE was enabled")
	}
	m.cr3 = root
}

func (m *simMachine) EnableLongMode() {
	m.log = append(m.log, "EnableLongMode")
	if m.cr3 == 0 {
		m.fault("EFER.LME set before CR3 was loaded")
	}
	m.lme = true
}

func (m *simMachine) EnablePaging() {
	m.log = append(m.log, "EnablePaging")
	if !m.pae || !m.lme || m.cr3 == 0 {
		m.fault("paging enabled without PAE, LME and CR3")
	}
	m.paging = true
}

func (m *simMachine) LoadGDT(ptr gdt.Pointer) {
	m.log = append(m.log, "LoadGDT")
	if !m.paging {
		m.fault("GDT loaded before paging was enabled")
	}
	m.gdtr = &ptr
}

func (m *simMachine) FarJump(sel gdt.Selector, target string) {
	m.log = append(m.log, "FarJump")
	if !m.paging || !m.lme || m.gdtr == nil {
		m.fault("far jump issued before long mode was active")
	}
	m.cs, m.rip = sel, target
}

func (m *simMachine) LoadDataSegments(sel gdt.Selector) {
	m.log = append(m.log, "LoadDataSegments")
	if m.rip != LongModeEntry {
		m.fault("segment registers loaded outside the 64-bit entry point")
	}
	m.dataSegs, m.dataSegsLoaded = sel, true
}

func (m *simMachine) SetStackPointer(sp uintptr) {
	m.log = append(m.log, "SetStackPointer")
	m.rsp, m.rspSet = sp, true
}

func (m *simMachine) CallManaged(symbol string) {
	m.log = append(m.log, "CallManaged")
	if !m.rspSet || !m.dataSegsLoaded {
		m.fault("managed code called before the stack and segments were set up")
	}
	m.called = symbol
}

func mockCPU(t *testing.T, hasCPUID, hasLongMode bool) (cpuidCalls, longModeCalls *int) {
	t.Helper()

	cpuidCalls, longModeCalls = new(int), new(int)
	hasCPUIDFn = func() bool {
		*cpuidCalls++
		return hasCPUID
	}
	hasLongModeFn = func() bool {
		*longModeCalls++
		return hasLongMode
	}
	setInfoPtrFn = func(uintptr) {}

	t.Cleanup(func() {
		hasCPUIDFn = cpu.HasCPUID
		hasLongModeFn = cpu.HasLongMode
		setInfoPtrFn = multiboot.SetInfoPtr
	})
	return cpuidCalls, longModeCalls
}

func mockFailPath(t *testing.T) (fb []uint32, haltCalls *int) {
	t.Helper()

	origFramebufferFn := earlyFramebufferFn
	fb = make([]uint32, earlyFramebufferWords)
	haltCalls = new(int)
	earlyFramebufferFn = func() []uint32 { return fb }
	cpuHaltFn = func() { *haltCalls++ }

	t.Cleanup(func() {
		earlyFramebufferFn = origFramebufferFn
		cpuHaltFn = cpu.Halt
	})
	return fb, haltCalls
}

func mockPanic(t *testing.T) *[]interface{} {
	t.Helper()

	var calls []interface{}
	panicFn = func(e interface{}) { calls = append(calls, e) }
	t.Cleanup(func() { panicFn = kfmt.Panic })
	return &calls
}

// screenText decodes the first n cells of fb.
func screenText(fb []uint32, n int) (string, []uint8) {
	text := make([]byte, n)
	attrs := make([]uint8, n)
	for i := 0; i < n; i++ {
		cell := fb[i/2] >> (16 * uint(i%2))
		text[i] = byte(cell)
		attrs[i] = uint8(cell >> 8)
	}
	return string(text), attrs
}
