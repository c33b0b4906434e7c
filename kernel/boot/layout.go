package boot

import (
	"gopherboot/kernel"
	"gopherboot/kernel/mm"
	"gopherboot/kernel/mm/vmm"
)

var (
	// ErrMisalignedGDT is returned when the descriptor table is not placed
	// on an 8-byte boundary.
	ErrMisalignedGDT = &kernel.Error{Module: "boot", Message: "GDT address is not 8-byte aligned"}

	// ErrGDTOverlapsTables is returned when the descriptor table shares a
	// page with a translation table or a stack frame.
	ErrGDTOverlapsTables = &kernel.Error{Module: "boot", Message: "GDT shares a page with a boot table or stack frame"}

	// ErrKernelBase is returned when the kernel is not loaded inside the
	// identity-mapped region or is not page aligned.
	ErrKernelBase = &kernel.Error{Module: "boot", Message: "kernel base must be page aligned and identity mapped"}
)

// Layout describes where the boot stage places its data in physical memory.
// The loader copies the kernel image to KernelBase; the multiboot header is
// the first thing in the image.
type Layout struct {
	KernelBase uintptr
	GDT        uintptr
	Tables     vmm.BootLayout
}

// DefaultLayout returns the layout used by the kernel image. It must be kept
// in sync with arch/x86_64/bootlayout.yaml.
func DefaultLayout() Layout {
	return Layout{
		KernelBase: 0x100000,
		GDT:        0x107000,
		Tables: vmm.BootLayout{
			L4:         0x101000,
			IdentityL3: 0x102000,
			IdentityL2: 0x103000,
			StackL3:    0x104000,
			StackL2:    0x105000,
			StackL1:    0x106000,
			StackFrames: [vmm.StackPages]uintptr{
				0x108000,
				0x109000,
				0x10a000,
				0x10b000,
			},
		},
	}
}

// Validate checks the placement rules for the layout.
func (l *Layout) Validate() *kernel.Error {
	if !mm.IsPageAligned(l.KernelBase) || l.KernelBase >= uintptr(vmm.IdentityRegionSize) {
		return ErrKernelBase
	}

	if l.GDT&7 != 0 {
		return ErrMisalignedGDT
	}

	if err := l.Tables.Validate(); err != nil {
		return err
	}

	gdtPage := l.GDT &^ (mm.PageSize - 1)
	pages := [...]uintptr{
		l.Tables.L4, l.Tables.IdentityL3, l.Tables.IdentityL2,
		l.Tables.StackL3, l.Tables.StackL2, l.Tables.StackL1,
	}
	for _, page := range pages {
		if page == gdtPage {
			return ErrGDTOverlapsTables
		}
	}
	for _, frame := range l.Tables.StackFrames {
		if frame == gdtPage {
			return ErrGDTOverlapsTables
		}
	}

	return nil
}
