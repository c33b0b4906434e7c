package multiboot

import (
	"encoding/binary"
	"testing"
)

func TestDefaultHeaderEncoding(t *testing.T) {
	exp := [HeaderSize]byte{
		// magic, architecture, length, checksum
		0xd6, 0x50, 0x52, 0xe8,
		0x00, 0x00, 0x00, 0x00,
		0x28, 0x00, 0x00, 0x00,
		0x02, 0xaf, 0xad, 0x17,
		// console flags tag (type 4, size 12) + padding
		0x04, 0x00, 0x00, 0x00,
		0x0c, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		// end tag
		0x00, 0x00, 0x00, 0x00,
		0x08, 0x00, 0x00, 0x00,
	}

	if got := DefaultHeader.Encode(); got != exp {
		t.Fatalf("unexpected header encoding:\n got: % x\nwant: % x", got, exp)
	}
}

func TestHeaderChecksum(t *testing.T) {
	for _, arch := range []uint32{ArchitectureI386, 4} {
		h := Header{Architecture: arch}
		if sum := HeaderMagic + h.Architecture + h.Length() + h.Checksum(); sum != 0 {
			t.Errorf("expected header fields for architecture %d to sum to zero; got 0x%x", arch, sum)
		}
	}

	if exp, got := uint32(40), DefaultHeader.Length(); got != exp {
		t.Fatalf("expected header length %d; got %d", exp, got)
	}
}

func TestFindHeader(t *testing.T) {
	hdr := DefaultHeader.Encode()

	corrupt := hdr
	binary.LittleEndian.PutUint32(corrupt[12:], 0)

	image := func(size int, placements map[int][]byte) []byte {
		out := make([]byte, size)
		for offset, data := range placements {
			copy(out[offset:], data)
		}
		return out
	}

	specs := []struct {
		image     []byte
		expOffset int
		expErr    error
	}{
		{image(4096, map[int][]byte{0: hdr[:]}), 0, nil},
		{image(4096, map[int][]byte{64: hdr[:]}), 64, nil},
		// misaligned headers are ignored
		{image(4096, map[int][]byte{4: hdr[:]}), 0, ErrHeaderNotFound},
		// bad checksum is skipped
		{image(4096, map[int][]byte{0: corrupt[:], 128: hdr[:]}), 128, nil},
		// past the search limit
		{image(HeaderSearchLimit+4096, map[int][]byte{HeaderSearchLimit: hdr[:]}), 0, ErrHeaderNotFound},
		{nil, 0, ErrHeaderNotFound},
	}

	for specIndex, spec := range specs {
		offset, err := FindHeader(spec.image)
		if spec.expErr != nil {
			if err != spec.expErr {
				t.Errorf("[spec %d] expected error %v; got %v", specIndex, spec.expErr, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("[spec %d] unexpected error: %v", specIndex, err)
			continue
		}

		if offset != spec.expOffset {
			t.Errorf("[spec %d] expected header at offset %d; got %d", specIndex, spec.expOffset, offset)
		}
	}
}
