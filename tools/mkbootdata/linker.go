package main

import (
	"fmt"

	"gopherboot/kernel/boot"
)

// renderLinkerSymbols generates the linker script fragment that pins the
// sections holding the boot data to the addresses the generated code
// assumes.
func renderLinkerSymbols(layout boot.Layout, items []dataItem) []byte {
	last := items[len(items)-1]

	return []byte(fmt.Sprintf(`/* Code generated by mkbootdata. DO NOT EDIT. */

BOOT_KERNEL_BASE = 0x%x;
BOOT_DATA_BASE = 0x%x;
BOOT_DATA_END = 0x%x;
`, layout.KernelBase, items[0].addr, last.addr+last.size))
}
