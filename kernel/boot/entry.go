package boot

import (
	"gopherboot/kernel/gdt"
	"gopherboot/kernel/mm/vmm"
)

// ManagedEntry is the Go symbol that receives control once the 64-bit
// environment is ready.
const ManagedEntry = "main.main"

// EntryOps prepares the 64-bit environment at LongModeEntry before control is
// handed to Go code.
type EntryOps interface {
	// LoadDataSegments loads sel into DS, ES, FS, GS and SS.
	LoadDataSegments(sel gdt.Selector)

	// SetStackPointer loads sp into RSP.
	SetStackPointer(sp uintptr)

	// CallManaged transfers control to symbol. If the call ever returns
	// the CPU is halted.
	CallManaged(symbol string)
}

// StackCeiling returns the initial stack pointer: the address just past the
// stack window. The window ends at the top of the address space, so the value
// wraps around to zero and the first push lands in the last stack slot.
func StackCeiling() uintptr {
	base := vmm.StackRegionBase
	return base + vmm.StackRegionSize
}

// Enter runs the 64-bit entry sequence against ops: segment registers are
// cleared since 64-bit mode ignores segmentation, the stack is moved to the
// top of the stack window and Go code is called.
func Enter(ops EntryOps) {
	ops.LoadDataSegments(gdt.NullSelector)
	ops.SetStackPointer(StackCeiling())
	ops.CallManaged(ManagedEntry)
}
