package boot

import (
	"gopherboot/kernel/cpu"
	"gopherboot/multiboot"
)

// Check is one step of the boot verification sequence.
type Check struct {
	// Failure is reported when the check does not pass.
	Failure Failure

	// Routine is the symbol of the 32-bit routine that performs the
	// check before the processor leaves protected mode.
	Routine string
}

var (
	checks = [...]Check{
		{Failure: NotLoadedByExpectedLoader, Routine: "check_multiboot"},
		{Failure: CPUIDUnavailable, Routine: "check_cpuid"},
		{Failure: LongModeUnsupported, Routine: "check_long_mode"},
	}

	setInfoPtrFn  = multiboot.SetInfoPtr
	hasCPUIDFn    = cpu.HasCPUID
	hasLongModeFn = cpu.HasLongMode
)

// Checks returns the verification steps in the order they run. Each step is
// only reached if all previous steps passed.
func Checks() []Check {
	return checks[:]
}

// Verify inspects the loader handoff state and the processor features
// required to enter long mode. magic and infoPtr are the values found in EAX
// and EBX on entry. The boot information pointer is recorded as soon as the
// loader is known to be compliant so that it survives the remaining checks.
//
// Verify returns None if it is safe to continue or the first failing check
// otherwise. The long mode probe only runs when CPUID is usable.
func Verify(magic uint32, infoPtr uintptr) Failure {
	if magic != multiboot.LoaderMagic {
		return NotLoadedByExpectedLoader
	}

	setInfoPtrFn(infoPtr)

	if !hasCPUIDFn() {
		return CPUIDUnavailable
	}

	if !hasLongModeFn() {
		return LongModeUnsupported
	}

	return None
}
