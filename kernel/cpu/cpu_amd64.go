// Package cpu exposes the privileged and identification instructions that
// the rest of the kernel needs. Every function without a body is implemented
// in cpu_amd64.s.
package cpu

const (
	// extendedLeafBase is the CPUID leaf that reports the highest
	// supported extended function in EAX.
	extendedLeafBase = 0x80000000

	// extendedFeatures is the CPUID leaf whose EDX output carries the
	// long mode (LM) bit.
	extendedFeatures = 0x80000001

	// longModeBit is the EDX bit reported by extendedFeatures when the
	// processor can run in 64-bit mode.
	longModeBit = 1 << 29
)

var (
	cpuidFn = ID
)

// Halt disables interrupts and parks the CPU in a HLT loop. Halt never
// returns; the loop body executes a side-effecting instruction so the call
// can never be optimized into an empty spin.
func Halt()

// Pause hints to the processor that the caller is spin-waiting.
func Pause()

// ID returns information about the CPU and its features. It
// is implemented as a CPUID instruction with EAX=leaf and
// returns the values in EAX, EBX, ECX and EDX.
func ID(leaf uint32) (uint32, uint32, uint32, uint32)

// HasCPUID reports whether the CPUID instruction is usable. The probe
// attempts to flip the ID bit (bit 21) of the flags register and checks
// whether the change sticks; the original flags are restored before
// returning.
func HasCPUID() bool

// PortWriteByte writes a uint8 value to the requested port.
func PortWriteByte(port uint16, val uint8)

// MaxExtendedLeaf returns the highest extended CPUID function supported by
// the processor.
func MaxExtendedLeaf() uint32 {
	eax, _, _, _ := cpuidFn(extendedLeafBase)
	return eax
}

// HasLongMode returns true if the processor supports 64-bit mode. Callers
// must make sure that HasCPUID returns true before calling HasLongMode.
func HasLongMode() bool {
	if MaxExtendedLeaf() < extendedFeatures {
		return false
	}

	_, _, _, edx := cpuidFn(extendedFeatures)
	return edx&longModeBit != 0
}
