// Package gdt encodes the global descriptor table loaded while switching the
// processor to long mode. In 64-bit mode segmentation is mostly disabled so
// the table only needs a null descriptor and a single code descriptor.
package gdt

import "encoding/binary"

// Descriptor is an 8-byte segment descriptor.
type Descriptor uint64

// DescriptorFlag describes an attribute bit of a segment descriptor.
type DescriptorFlag uint64

const (
	// FlagAccessed is set by the CPU when the segment is accessed.
	FlagAccessed DescriptorFlag = 1 << (40 + iota)

	// FlagReadable allows reads from a code segment.
	FlagReadable

	// FlagConforming allows less privileged code to jump into the segment.
	FlagConforming

	// FlagExecutable marks a code segment.
	FlagExecutable

	// FlagCodeData is set for code and data segments and cleared for
	// system descriptors.
	FlagCodeData
)

const (
	// FlagPresent must be set for any usable descriptor.
	FlagPresent DescriptorFlag = 1 << 47

	// FlagLongMode marks a code segment as 64-bit.
	FlagLongMode DescriptorFlag = 1 << 53

	// FlagDefaultSize selects 32-bit operands. It must be cleared when
	// FlagLongMode is set.
	FlagDefaultSize DescriptorFlag = 1 << 54

	// FlagGranularity scales the limit by 4 KiB.
	FlagGranularity DescriptorFlag = 1 << 55

	dplShift = 45
	dplMask  = 0x3
)

const (
	// Null is the mandatory first descriptor.
	Null Descriptor = 0

	// Code64 is a present, ring 0, 64-bit code segment. Base and limit
	// are ignored in long mode.
	Code64 = Descriptor(FlagExecutable | FlagCodeData | FlagPresent | FlagLongMode)
)

// HasFlags returns true if the descriptor has all the input flags set.
func (d Descriptor) HasFlags(flags DescriptorFlag) bool {
	return uint64(d)&uint64(flags) == uint64(flags)
}

// PrivilegeLevel returns the descriptor privilege level (0-3).
func (d Descriptor) PrivilegeLevel() uint8 {
	return uint8((uint64(d) >> dplShift) & dplMask)
}

// Selector is a segment selector: a table index in bits 3-15 and the
// requested privilege level in bits 0-1.
type Selector uint16

const (
	// NullSelector is loaded into every data segment register in 64-bit
	// mode.
	NullSelector Selector = 0

	// CodeSelector selects Code64.
	CodeSelector Selector = 1 << 3
)

// NewSelector returns the selector for the descriptor at index with the given
// requested privilege level.
func NewSelector(index uint16, rpl uint8) Selector {
	return Selector(index<<3 | uint16(rpl&0x3))
}

// Index returns the table index encoded in the selector.
func (s Selector) Index() uint16 {
	return uint16(s) >> 3
}

// Table is the descriptor table activated by the boot stage.
type Table [2]Descriptor

// Boot is the table loaded before the far jump into 64-bit code.
var Boot = Table{Null, Code64}

// Size returns the table size in bytes.
func (t *Table) Size() int {
	return len(t) * 8
}

// Bytes returns the little-endian in-memory image of the table.
func (t *Table) Bytes() [16]byte {
	var out [16]byte
	for i, d := range t {
		binary.LittleEndian.PutUint64(out[i*8:], uint64(d))
	}
	return out
}

// Pointer returns the LGDT operand for the table loaded at base.
func (t *Table) Pointer(base uintptr) Pointer {
	return Pointer{Limit: uint16(t.Size() - 1), Base: uint64(base)}
}

// Pointer is the 10-byte pseudo-descriptor consumed by LGDT.
type Pointer struct {
	Limit uint16
	Base  uint64
}

// Bytes returns the little-endian in-memory image of the pointer.
func (p Pointer) Bytes() [10]byte {
	var out [10]byte
	binary.LittleEndian.PutUint16(out[0:], p.Limit)
	binary.LittleEndian.PutUint64(out[2:], p.Base)
	return out
}
