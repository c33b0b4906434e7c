// Package multiboot implements both halves of the multiboot2 protocol used by
// the kernel: the header that a loader looks for inside the kernel image and
// a walker for the boot information structure that the loader hands back.
package multiboot

import "unsafe"

var (
	infoData uintptr
)

type tagType uint32

// nolint
const (
	tagMbSectionEnd tagType = iota
	tagBootCmdLine
	tagBootLoaderName
	tagModules
	tagBasicMemoryInfo
	tagBiosBootDevice
	tagMemoryMap
	tagVbeInfo
	tagFramebufferInfo
	tagElfSymbols
	tagApmTable
)

// tagHeader precedes every tag of the boot information structure.
type tagHeader struct {
	tagType tagType

	// size covers the header and the payload but not the padding that
	// moves the next tag to an 8-byte boundary.
	size uint32
}

// mmapHeader starts the payload of the memory map tag.
type mmapHeader struct {
	entrySize    uint32
	entryVersion uint32
}

// FramebufferType defines the type of the initialized framebuffer.
type FramebufferType uint8

const (
	// FramebufferTypeIndexed specifies a 256-color palette.
	FramebufferTypeIndexed FramebufferType = iota

	// FramebufferTypeRGB specifies direct RGB mode.
	FramebufferTypeRGB

	// FramebufferTypeEGA specifies EGA text mode.
	FramebufferTypeEGA
)

// FramebufferInfo provides information about the initialized framebuffer.
type FramebufferInfo struct {
	// The framebuffer physical address.
	PhysAddr uint64

	// Row pitch in bytes.
	Pitch uint32

	// Width and height in pixels (or characters if Type = FramebufferTypeEGA)
	Width, Height uint32

	// Bits per pixel (non EGA modes only).
	Bpp uint8

	// Framebuffer type.
	Type FramebufferType
}

// MemoryEntryType defines the type of a MemoryMapEntry.
type MemoryEntryType uint32

const (
	// MemAvailable indicates that the memory region is available for use.
	MemAvailable MemoryEntryType = iota + 1

	// MemReserved indicates that the memory region is not available for use.
	MemReserved

	// MemAcpiReclaimable indicates a memory region that holds ACPI info that
	// can be reused by the OS.
	MemAcpiReclaimable

	// MemNvs indicates memory that must be preserved when hibernating.
	MemNvs

	// MemBad indicates defective RAM.
	MemBad

	// Any value >= memUnknown will be mapped to MemReserved.
	memUnknown
)

// String implements fmt.Stringer for MemoryEntryType.
func (t MemoryEntryType) String() string {
	switch t {
	case MemAvailable:
		return "available"
	case MemReserved:
		return "reserved"
	case MemAcpiReclaimable:
		return "ACPI (reclaimable)"
	case MemNvs:
		return "NVS"
	case MemBad:
		return "bad"
	default:
		return "unknown"
	}
}

// MemoryMapEntry describes a memory region entry, namely its physical address,
// its length and its type.
type MemoryMapEntry struct {
	// The physical address for this memory region.
	PhysAddress uint64

	// The length of the memory region.
	Length uint64

	// The type of this entry.
	Type MemoryEntryType
}

// MemRegionVisitor is invoked by VisitMemRegions for each memory region
// reported by the loader. Returning false stops the scan.
type MemRegionVisitor func(MemoryMapEntry) bool

// SetInfoPtr records the address of the boot information structure. It must
// be called before any of the accessors in this package; until then they
// report that no information is available.
func SetInfoPtr(ptr uintptr) {
	infoData = ptr
}

// InfoPtr returns the address registered with SetInfoPtr.
func InfoPtr() uintptr {
	return infoData
}

// VisitMemRegions invokes visitor with a copy of each memory map entry.
// Unknown entry types are reported as MemReserved.
func VisitMemRegions(visitor MemRegionVisitor) {
	curPtr, size := findTagByType(tagMemoryMap)
	if size == 0 {
		return
	}

	ptrMapHeader := (*mmapHeader)(unsafe.Pointer(curPtr))
	if ptrMapHeader.entrySize == 0 {
		return
	}

	endPtr := curPtr + uintptr(size)
	curPtr += 8

	for curPtr+uintptr(ptrMapHeader.entrySize) <= endPtr {
		entry := *(*MemoryMapEntry)(unsafe.Pointer(curPtr))

		if entry.Type == 0 || entry.Type >= memUnknown {
			entry.Type = MemReserved
		}

		if !visitor(entry) {
			return
		}

		curPtr += uintptr(ptrMapHeader.entrySize)
	}
}

// BootLoaderName returns the name reported by the boot loader or an empty
// string if the loader did not supply one. The returned string aliases the
// boot information data.
func BootLoaderName() string {
	curPtr, size := findTagByType(tagBootLoaderName)
	if size == 0 {
		return ""
	}

	// The name is a C-style NULL-terminated string
	length := uintptr(0)
	for length < uintptr(size) && *(*byte)(unsafe.Pointer(curPtr + length)) != 0 {
		length++
	}

	return unsafe.String((*byte)(unsafe.Pointer(curPtr)), int(length))
}

// GetFramebufferInfo returns the framebuffer tag or nil if the loader did not
// report one.
func GetFramebufferInfo() *FramebufferInfo {
	var info *FramebufferInfo

	curPtr, size := findTagByType(tagFramebufferInfo)
	if size != 0 {
		info = (*FramebufferInfo)(unsafe.Pointer(curPtr))
	}

	return info
}

// findTagByType returns the payload address and payload size of the first
// tag with the requested type, or (0, 0) if there is no such tag.
func findTagByType(tagType tagType) (uintptr, uint32) {
	if infoData == 0 {
		return 0, 0
	}

	// skip total_size and reserved
	curPtr := infoData + 8
	for {
		hdr := (*tagHeader)(unsafe.Pointer(curPtr))
		if hdr.tagType == tagMbSectionEnd || hdr.size < 8 {
			return 0, 0
		}

		if hdr.tagType == tagType {
			return curPtr + 8, hdr.size - 8
		}

		curPtr += uintptr(hdr.size+7) &^ 7
	}
}
