package multiboot

import (
	"encoding/binary"

	"gopherboot/kernel"
)

const (
	// HeaderMagic identifies the multiboot2 header inside the kernel image.
	HeaderMagic uint32 = 0xe85250d6

	// LoaderMagic is the value a compliant loader leaves in EAX when it
	// transfers control to the kernel.
	LoaderMagic uint32 = 0x36d76289

	// ArchitectureI386 requests a 32-bit protected mode handoff.
	ArchitectureI386 uint32 = 0

	// HeaderSize is the encoded size of Header including all of its tags.
	HeaderSize = headerFixedSize + consoleTagPaddedSize + endTagSize

	// HeaderSearchLimit is the size of the image prefix that a loader
	// scans for the header.
	HeaderSearchLimit = 32768

	// HeaderAlign is the required header alignment.
	HeaderAlign = 8

	headerFixedSize      = 16
	consoleTagSize       = 12
	consoleTagPaddedSize = 16
	endTagSize           = 8
)

type headerTagType uint16

const (
	headerTagEnd          headerTagType = 0
	headerTagConsoleFlags headerTagType = 4
)

// ConsoleFlag describes the console requirements advertised to the loader.
type ConsoleFlag uint32

const (
	// ConsoleRequired asks the loader to refuse booting without a console.
	ConsoleRequired ConsoleFlag = 1 << iota

	// ConsoleEGATextSupported tells the loader that the kernel can drive
	// an EGA text console.
	ConsoleEGATextSupported
)

var (
	// ErrHeaderNotFound is returned by FindHeader when no valid header
	// exists in the searched image prefix.
	ErrHeaderNotFound = &kernel.Error{Module: "multiboot", Message: "no valid multiboot2 header in the first 32 KiB of the image"}
)

// Header is the multiboot2 header embedded in the kernel image. Besides the
// mandatory fields it carries a console flags tag and the end tag.
type Header struct {
	Architecture uint32
	ConsoleFlags ConsoleFlag
}

// DefaultHeader is the header embedded in the kernel image.
var DefaultHeader = Header{
	Architecture: ArchitectureI386,
	ConsoleFlags: ConsoleRequired | ConsoleEGATextSupported,
}

// Length returns the header length in bytes, tags included.
func (h Header) Length() uint32 {
	return HeaderSize
}

// Checksum returns the value that makes the sum of the magic, architecture,
// length and checksum fields wrap to zero.
func (h Header) Checksum() uint32 {
	return 0 - (HeaderMagic + h.Architecture + h.Length())
}

// Encode returns the little-endian image of the header.
func (h Header) Encode() [HeaderSize]byte {
	var out [HeaderSize]byte

	binary.LittleEndian.PutUint32(out[0:], HeaderMagic)
	binary.LittleEndian.PutUint32(out[4:], h.Architecture)
	binary.LittleEndian.PutUint32(out[8:], h.Length())
	binary.LittleEndian.PutUint32(out[12:], h.Checksum())

	// console flags tag; padded to the next 8-byte boundary
	tag := out[headerFixedSize:]
	binary.LittleEndian.PutUint16(tag[0:], uint16(headerTagConsoleFlags))
	binary.LittleEndian.PutUint16(tag[2:], 0)
	binary.LittleEndian.PutUint32(tag[4:], consoleTagSize)
	binary.LittleEndian.PutUint32(tag[8:], uint32(h.ConsoleFlags))

	tag = out[headerFixedSize+consoleTagPaddedSize:]
	binary.LittleEndian.PutUint16(tag[0:], uint16(headerTagEnd))
	binary.LittleEndian.PutUint16(tag[2:], 0)
	binary.LittleEndian.PutUint32(tag[4:], endTagSize)

	return out
}

// FindHeader scans image the way a loader does and returns the offset of the
// first aligned header whose checksum is valid.
func FindHeader(image []byte) (int, *kernel.Error) {
	limit := len(image)
	if limit > HeaderSearchLimit {
		limit = HeaderSearchLimit
	}

	for offset := 0; offset+headerFixedSize <= limit; offset += HeaderAlign {
		fields := image[offset:]
		if binary.LittleEndian.Uint32(fields[0:]) != HeaderMagic {
			continue
		}

		var sum uint32
		for i := 0; i < 4; i++ {
			sum += binary.LittleEndian.Uint32(fields[i*4:])
		}

		if sum == 0 {
			return offset, nil
		}
	}

	return 0, ErrHeaderNotFound
}
