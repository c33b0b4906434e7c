package boot

import (
	"gopherboot/kernel"
	"gopherboot/kernel/gdt"
	"gopherboot/kernel/kfmt"
	"gopherboot/kernel/mm"
	"gopherboot/kernel/mm/vmm"
)

// LongModeEntry is the symbol of the first 64-bit instruction.
const LongModeEntry = "long_mode_start"

// PrivilegedOps performs the privileged operations that switch the processor
// from protected mode to long mode. The operations must be issued in the
// order they are declared here; each one relies on the state established by
// the ones before it.
type PrivilegedOps interface {
	// EnablePAE sets CR4.PAE. It must precede every other operation.
	EnablePAE()

	// LoadTableRoot loads the physical address of the L4 table into CR3.
	// Requires EnablePAE.
	LoadTableRoot(root uintptr)

	// EnableLongMode sets the LME bit of the EFER model specific register.
	// Requires LoadTableRoot.
	EnableLongMode()

	// EnablePaging sets CR0.PG. The following instruction is fetched
	// through the tables loaded by LoadTableRoot, so the code issuing
	// this call must be identity mapped. Requires EnableLongMode.
	EnablePaging()

	// LoadGDT installs the descriptor table referenced by ptr. Requires
	// EnablePaging.
	LoadGDT(ptr gdt.Pointer)

	// FarJump reloads CS with sel and continues at target. It leaves
	// compatibility mode and is the last operation of the sequence.
	FarJump(sel gdt.Selector, target string)
}

// Step identifies a privileged operation in the transition sequence.
type Step uint8

// The transition steps in the only valid order.
const (
	StepEnablePAE Step = iota
	StepLoadTableRoot
	StepEnableLongMode
	StepEnablePaging
	StepLoadGDT
	StepFarJump
	stepDone
)

var stepNames = [...]string{
	"EnablePAE",
	"LoadTableRoot",
	"EnableLongMode",
	"EnablePaging",
	"LoadGDT",
	"FarJump",
	"done",
}

// String implements fmt.Stringer.
func (s Step) String() string {
	if int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

var (
	// ErrStepOutOfOrder is raised when a privileged operation is issued
	// before its predecessors or more than once.
	ErrStepOutOfOrder = &kernel.Error{Module: "boot", Message: "privileged operation issued out of order"}

	// ErrMisalignedTableRoot is raised when CR3 would be loaded with an
	// address that is not page aligned.
	ErrMisalignedTableRoot = &kernel.Error{Module: "boot", Message: "translation table root is not page aligned"}

	// panicFn is used by tests to intercept design defects.
	panicFn = kfmt.Panic
)

// Sequencer forwards privileged operations to an underlying implementation
// and panics if they are issued out of order. The zero value is not usable;
// use NewSequencer.
type Sequencer struct {
	ops  PrivilegedOps
	next Step
}

// NewSequencer returns a sequencer that forwards to ops.
func NewSequencer(ops PrivilegedOps) Sequencer {
	return Sequencer{ops: ops}
}

// Next returns the step that the sequencer expects next.
func (s *Sequencer) Next() Step {
	return s.next
}

// Done returns true once the far jump has been issued.
func (s *Sequencer) Done() bool {
	return s.next == stepDone
}

func (s *Sequencer) advance(step Step) bool {
	if s.next != step {
		panicFn(ErrStepOutOfOrder)
		return false
	}

	s.next++
	return true
}

// EnablePAE implements PrivilegedOps.
func (s *Sequencer) EnablePAE() {
	if s.advance(StepEnablePAE) {
		s.ops.EnablePAE()
	}
}

// LoadTableRoot implements PrivilegedOps.
func (s *Sequencer) LoadTableRoot(root uintptr) {
	if !mm.IsPageAligned(root) {
		panicFn(ErrMisalignedTableRoot)
		return
	}

	if s.advance(StepLoadTableRoot) {
		s.ops.LoadTableRoot(root)
	}
}

// EnableLongMode implements PrivilegedOps.
func (s *Sequencer) EnableLongMode() {
	if s.advance(StepEnableLongMode) {
		s.ops.EnableLongMode()
	}
}

// EnablePaging implements PrivilegedOps.
func (s *Sequencer) EnablePaging() {
	if s.advance(StepEnablePaging) {
		s.ops.EnablePaging()
	}
}

// LoadGDT implements PrivilegedOps.
func (s *Sequencer) LoadGDT(ptr gdt.Pointer) {
	if s.advance(StepLoadGDT) {
		s.ops.LoadGDT(ptr)
	}
}

// FarJump implements PrivilegedOps.
func (s *Sequencer) FarJump(sel gdt.Selector, target string) {
	if s.advance(StepFarJump) {
		s.ops.FarJump(sel, target)
	}
}

// Transition issues the full protected mode to long mode sequence against ops,
// activating tables and the boot GDT placed at layout.GDT. The sequence is not
// restartable; ops must not be reused afterwards.
func Transition(ops PrivilegedOps, tables *vmm.TableSet, layout Layout) {
	seq := NewSequencer(ops)

	seq.EnablePAE()
	seq.LoadTableRoot(tables.Root())
	seq.EnableLongMode()
	seq.EnablePaging()
	seq.LoadGDT(gdt.Boot.Pointer(layout.GDT))
	seq.FarJump(gdt.CodeSelector, LongModeEntry)
}
