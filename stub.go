package main

import "gopherboot/kernel/kmain"

var (
	multibootMagic   uint32
	multibootInfoPtr uintptr
)

// main makes a dummy call to the actual kernel main entrypoint function. It
// is intentionally defined to prevent the Go compiler from optimizing away the
// real kernel code.
//
// The rt0 code stores the loader handoff registers in the global variables
// passed to Kmain. Using globals also prevents the compiler from inlining the
// call and removing Kmain from the generated .o file.
func main() {
	kmain.Kmain(multibootMagic, multibootInfoPtr)
}
