// Package boot contains the boot stage that runs between the loader handoff
// and the first Go function: it verifies the handoff, switches the processor
// to long mode using statically built translation tables and prepares the
// environment Go code runs in.
//
// The 32-bit portion cannot be written in Go. The types in this package are
// the source that tools/mkbootdata renders into the NASM stubs under
// arch/x86_64/asm, and they are executed directly by the tests.
package boot

import "gopherboot/kernel/mm/vmm"

// Machine bundles everything the boot stage drives.
type Machine interface {
	PrivilegedOps
	EntryOps
}

// Run performs the whole boot stage: it verifies the handoff, builds the
// tables for layout, switches to long mode and enters Go code. On a failed
// check it calls Fail and returns the failure; otherwise it returns None
// after the entry sequence has been issued.
func Run(m Machine, magic uint32, infoPtr uintptr, layout Layout, tables *vmm.TableSet) Failure {
	if f := Verify(magic, infoPtr); f != None {
		Fail(f)
		return f
	}

	if err := layout.Validate(); err != nil {
		panicFn(err)
		return None
	}

	if err := tables.Build(layout.Tables); err != nil {
		panicFn(err)
		return None
	}

	Transition(m, tables, layout)
	Enter(m)
	return None
}
