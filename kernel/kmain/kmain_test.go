package kmain

import (
	"bytes"
	"encoding/binary"
	"runtime"
	"strings"
	"testing"
	"unsafe"

	"gopherboot/device/video/console"
	"gopherboot/kernel/boot"
	"gopherboot/kernel/kfmt"
	"gopherboot/multiboot"
)

type fakeConsole struct {
	bytes.Buffer
	colors []console.Colors
}

func (c *fakeConsole) SetColors(colors console.Colors) {
	c.colors = append(c.colors, colors)
}

// testInfo returns boot information data with a loader name tag and a memory
// map tag holding two regions.
func testInfo() []uint64 {
	var data []byte
	put32 := func(v uint32) { data = binary.LittleEndian.AppendUint32(data, v) }
	put64 := func(v uint64) { data = binary.LittleEndian.AppendUint64(data, v) }

	put32(0) // total size, patched below
	put32(0)

	// loader name: "qemu\0" padded to 8 bytes
	put32(2)
	put32(8 + 5)
	data = append(data, 'q', 'e', 'm', 'u', 0, 0, 0, 0)

	// memory map
	put32(6)
	put32(8 + 8 + 2*24)
	put32(24)
	put32(0)
	put64(0)
	put64(0x9fc00)
	put32(uint32(multiboot.MemAvailable))
	put32(0)
	put64(0x100000)
	put64(0x7ee0000)
	put32(uint32(multiboot.MemAvailable))
	put32(0)

	// end tag
	put32(0)
	put32(8)

	binary.LittleEndian.PutUint32(data[0:], uint32(len(data)))

	words := make([]uint64, len(data)/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	return words
}

func TestKmain(t *testing.T) {
	defer func() {
		verifyFn = boot.Verify
		failFn = boot.Fail
		panicFn = kfmt.Panic
		getConsoleFn = func() textConsole { return console.Get() }
		kfmt.SetOutputSink(nil)
		multiboot.SetInfoPtr(0)
	}()

	info := testInfo()
	infoPtr := uintptr(unsafe.Pointer(&info[0]))

	var verifiedMagic uint32
	verifyFn = func(magic uint32, ptr uintptr) boot.Failure {
		verifiedMagic = magic
		multiboot.SetInfoPtr(ptr)
		return boot.None
	}
	failFn = func(f boot.Failure) {
		t.Fatalf("unexpected boot failure %s", f)
	}

	var panicErr interface{}
	panicFn = func(e interface{}) { panicErr = e }

	cons := new(fakeConsole)
	getConsoleFn = func() textConsole { return cons }

	Kmain(multiboot.LoaderMagic, infoPtr)
	runtime.KeepAlive(info)

	if verifiedMagic != multiboot.LoaderMagic {
		t.Errorf("expected Kmain to verify the loader magic; got 0x%x", verifiedMagic)
	}

	if panicErr != errKmainReturned {
		t.Errorf("expected Kmain to end with errKmainReturned; got %v", panicErr)
	}

	out := cons.String()
	for _, exp := range []string{
		"║ gopherboot long mode ║",
		"[boot] loaded by qemu\n",
		"\t[0x0000000000 - 0x000009fc00], size:     654336, type: available\n",
		"\t[0x0000100000 - 0x0007fe0000], size:  133038080, type: available\n",
		"[boot] available memory: 130559Kb\n",
	} {
		if !strings.Contains(out, exp) {
			t.Errorf("expected output to contain %q; got:\n%s", exp, out)
		}
	}

	if len(cons.colors) != 2 || cons.colors[1] != console.DefaultColors {
		t.Errorf("expected the banner colors to be reset to the defaults; got %v", cons.colors)
	}
}

func TestKmainVerificationFailure(t *testing.T) {
	defer func() {
		verifyFn = boot.Verify
		failFn = boot.Fail
		getConsoleFn = func() textConsole { return console.Get() }
	}()

	verifyFn = func(uint32, uintptr) boot.Failure { return boot.LongModeUnsupported }

	var failure boot.Failure
	failFn = func(f boot.Failure) { failure = f }
	getConsoleFn = func() textConsole {
		t.Fatal("expected the console not to be acquired")
		return nil
	}

	Kmain(0x12345678, 0)

	if failure != boot.LongModeUnsupported {
		t.Fatalf("expected Fail to be called with %s; got %s", boot.LongModeUnsupported, failure)
	}
}
