package console

import (
	"sync/atomic"
	"unsafe"

	"gopherboot/kernel/mm/vmm"
	"gopherboot/multiboot"
)

// FramebufferAddr is the address of the VGA text mode framebuffer. It is
// covered by the identity-mapped low memory window set up at boot.
const FramebufferAddr = uintptr(0xb8000)

var (
	getFramebufferInfoFn = multiboot.GetFramebufferInfo

	// framebufferFn returns the device memory as pairs of cells. Tests
	// replace it with a Go-allocated slice.
	framebufferFn = func() []uint32 {
		return unsafe.Slice((*uint32)(unsafe.Pointer(framebufferAddr())), Width*Height/2)
	}
)

// framebufferAddr returns the address of the text framebuffer reported by the
// loader. FramebufferAddr is used unless the loader reports an EGA text
// framebuffer with the console dimensions that lies inside the
// identity-mapped window.
func framebufferAddr() uintptr {
	info := getFramebufferInfoFn()
	if info == nil || info.Type != multiboot.FramebufferTypeEGA {
		return FramebufferAddr
	}

	if info.Width != Width || info.Height != Height || info.Pitch != Width*2 {
		return FramebufferAddr
	}

	if info.PhysAddr+Width*Height*2 > uint64(vmm.IdentityRegionSize) {
		return FramebufferAddr
	}

	return uintptr(info.PhysAddr)
}

// surface is the only handle to the text mode framebuffer. It exposes whole
// row writes and nothing else.
type surface struct {
	fb []uint32
}

// newSurface wraps fb, which must hold Width*Height/2 words.
func newSurface(fb []uint32) surface {
	return surface{fb: fb}
}

// writeRow copies r into the visible row with index screenRow. Each store is
// an atomic 32-bit write so the compiler can neither drop nor merge it even
// though the kernel never reads the memory back.
func (s *surface) writeRow(screenRow int, r *row) {
	if screenRow < 0 || screenRow >= Height {
		return
	}

	words := s.fb[screenRow*Width/2 : (screenRow+1)*Width/2]
	for i := range words {
		pair := uint32(r[2*i].encode()) | uint32(r[2*i+1].encode())<<16
		atomic.StoreUint32(&words[i], pair)
	}
}
