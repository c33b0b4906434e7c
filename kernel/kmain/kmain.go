package kmain

import (
	"io"

	"gopherboot/device/video/console"
	"gopherboot/kernel"
	"gopherboot/kernel/boot"
	"gopherboot/kernel/kfmt"
	"gopherboot/multiboot"
)

var (
	errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}

	verifyFn     = boot.Verify
	failFn       = boot.Fail
	panicFn      = kfmt.Panic
	getConsoleFn = func() textConsole { return console.Get() }
)

// textConsole is the part of the console used by Kmain.
type textConsole interface {
	io.Writer
	SetColors(console.Colors)
}

// Kmain is the only Go symbol that is visible (exported) from the rt0 initialization
// code. The rt0 code jumps here once the CPU runs in long mode on the boot stack,
// passing the values that the loader left in EAX and EBX.
//
// Kmain is not expected to return. If it does, the rt0 code will halt the CPU.
//
//go:noinline
func Kmain(multibootMagic uint32, multibootInfoPtr uintptr) {
	// The 32-bit stub already ran the same checks; running them again
	// records the info pointer for the multiboot package.
	if f := verifyFn(multibootMagic, multibootInfoPtr); f != boot.None {
		failFn(f)
		return
	}

	cons := getConsoleFn()
	kfmt.SetOutputSink(cons)

	cons.SetColors(console.NewColors(console.White, console.Blue))
	kfmt.Printf("╔══════════════════════╗\n")
	kfmt.Printf("║ gopherboot long mode ║\n")
	kfmt.Printf("╚══════════════════════╝\n")
	cons.SetColors(console.DefaultColors)

	if name := multiboot.BootLoaderName(); name != "" {
		kfmt.Printf("[boot] loaded by %s\n", name)
	}
	printMemoryMap()

	// Use kfmt.Panic instead of panic to prevent the compiler from
	// treating kfmt.Panic as dead-code and eliminating it.
	panicFn(errKmainReturned)
}

func printMemoryMap() {
	var totalFree uint64

	kfmt.Printf("[boot] system memory map:\n")
	multiboot.VisitMemRegions(func(region multiboot.MemoryMapEntry) bool {
		kfmt.Printf("\t[0x%10x - 0x%10x], size: %10d, type: %s\n",
			region.PhysAddress,
			region.PhysAddress+region.Length,
			region.Length,
			region.Type.String(),
		)

		if region.Type == multiboot.MemAvailable {
			totalFree += region.Length
		}
		return true
	})
	kfmt.Printf("[boot] available memory: %dKb\n", totalFree/1024)
}
