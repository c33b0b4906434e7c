package boot

import (
	"sync/atomic"
	"unsafe"

	"gopherboot/kernel/cpu"
)

// Failure identifies why the boot stage refused to continue. Every failure is
// terminal.
type Failure uint8

const (
	// None means that all boot checks passed.
	None Failure = iota

	// NotLoadedByExpectedLoader is reported when EAX does not hold the
	// multiboot2 loader magic.
	NotLoadedByExpectedLoader

	// CPUIDUnavailable is reported when the ID flag cannot be toggled.
	CPUIDUnavailable

	// LongModeUnsupported is reported when the processor cannot run
	// 64-bit code.
	LongModeUnsupported

	numFailures
)

// FailureAttr is the VGA attribute used for failure messages: white on black.
const FailureAttr = 0x0f

const (
	earlyFramebufferAddr  = uintptr(0xb8000)
	earlyFramebufferWords = 80 * 25 / 2
)

var (
	failureMessages = [numFailures]string{
		None:                      "",
		NotLoadedByExpectedLoader: "boot: kernel was not loaded by a multiboot2 compliant loader",
		CPUIDUnavailable:          "boot: cpuid instruction is not available",
		LongModeUnsupported:       "boot: processor does not support long mode",
	}

	failureNames = [numFailures]string{
		"None",
		"NotLoadedByExpectedLoader",
		"CPUIDUnavailable",
		"LongModeUnsupported",
	}

	// earlyFramebufferFn returns the text mode framebuffer as pairs of
	// cells. Fail writes to it directly because the console may not exist
	// yet.
	earlyFramebufferFn = func() []uint32 {
		return unsafe.Slice((*uint32)(unsafe.Pointer(earlyFramebufferAddr)), earlyFramebufferWords)
	}

	cpuHaltFn = cpu.Halt
)

// Message returns the fixed diagnostic printed for f.
func (f Failure) Message() string {
	if f >= numFailures {
		return ""
	}
	return failureMessages[f]
}

// String implements fmt.Stringer.
func (f Failure) String() string {
	if f >= numFailures {
		return "Unknown"
	}
	return failureNames[f]
}

// Fail prints the message for f at the top left corner of the screen using
// FailureAttr and halts the CPU. It bypasses the console and never returns.
func Fail(f Failure) {
	fb := earlyFramebufferFn()
	msg := f.Message()

	for i := 0; i < len(msg) && i/2 < len(fb); i += 2 {
		lo := uint32(FailureAttr)<<8 | uint32(msg[i])
		hi := uint32(FailureAttr)<<8 | ' '
		if i+1 < len(msg) {
			hi = uint32(FailureAttr)<<8 | uint32(msg[i+1])
		}
		atomic.StoreUint32(&fb[i/2], hi<<16|lo)
	}

	cpuHaltFn()
}
