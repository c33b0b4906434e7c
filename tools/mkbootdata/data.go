package main

import (
	"fmt"
	"sort"

	"gopherboot/kernel/boot"
	"gopherboot/kernel/gdt"
	"gopherboot/kernel/mm"
	"gopherboot/kernel/mm/vmm"
	"gopherboot/multiboot"
)

const generatedHeader = "; Code generated by mkbootdata. DO NOT EDIT."

const earlyFramebufferAddr = 0xb8000

// dataItem is a blob placed at a fixed physical address inside the boot data
// section.
type dataItem struct {
	label string
	addr  uintptr
	size  uintptr
	emit  func(w *nasmWriter)
}

// dataItems returns the tables, the GDT with its pointer and the stack frames
// in ascending address order. It fails if any two of them overlap.
func dataItems(layout boot.Layout, tables *vmm.TableSet) ([]dataItem, error) {
	var items []dataItem

	tables.VisitTables(func(name string, physAddr uintptr, table *vmm.Table) {
		entries := make([]uint64, len(table))
		for i, e := range table {
			entries[i] = uint64(e)
		}

		items = append(items, dataItem{
			label: "boot_table_" + symbolName(name),
			addr:  physAddr,
			size:  mm.PageSize,
			emit:  func(w *nasmWriter) { w.quadwords(entries) },
		})
	})

	gdtBytes := gdt.Boot.Bytes()
	items = append(items, dataItem{
		label: "boot_gdt",
		addr:  layout.GDT,
		size:  uintptr(len(gdtBytes)),
		emit:  func(w *nasmWriter) { w.bytes(gdtBytes[:]) },
	})

	ptrBytes := gdt.Boot.Pointer(layout.GDT).Bytes()
	items = append(items, dataItem{
		label: "boot_gdt_ptr",
		addr:  layout.GDT + uintptr(len(gdtBytes)),
		size:  uintptr(len(ptrBytes)),
		emit:  func(w *nasmWriter) { w.bytes(ptrBytes[:]) },
	})

	for i, frame := range layout.Tables.StackFrames {
		items = append(items, dataItem{
			label: fmt.Sprintf("boot_stack_frame_%d", i),
			addr:  frame,
			size:  mm.PageSize,
			emit:  func(w *nasmWriter) { w.instr("times %d db 0", mm.PageSize) },
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].addr < items[j].addr })

	for i := 1; i < len(items); i++ {
		prev := items[i-1]
		if prev.addr+prev.size > items[i].addr {
			return nil, fmt.Errorf("%s [0x%x, 0x%x) overlaps %s at 0x%x", prev.label, prev.addr, prev.addr+prev.size, items[i].label, items[i].addr)
		}
	}

	return items, nil
}

// stackPhysTop returns the end of the highest stack frame. The 32-bit code
// uses it as its stack before paging is enabled.
func stackPhysTop(layout boot.Layout) uintptr {
	var top uintptr
	for _, frame := range layout.Tables.StackFrames {
		if frame+mm.PageSize > top {
			top = frame + mm.PageSize
		}
	}

	return top
}

func failureMessageLabel(f boot.Failure) string {
	return "boot_msg_" + symbolName(f.String())
}

// renderData generates boot_data.inc: the constants shared by the rt0 stubs
// and macros that emit the multiboot header, the boot data section and the
// failure messages.
func renderData(layout boot.Layout, header multiboot.Header) ([]byte, []dataItem, error) {
	tables := new(vmm.TableSet)
	if err := tables.Build(layout.Tables); err != nil {
		return nil, nil, err
	}

	items, err := dataItems(layout, tables)
	if err != nil {
		return nil, nil, err
	}

	var w nasmWriter

	w.line(generatedHeader)
	w.blank()
	w.equ("BOOT_LOADER_MAGIC", uint64(multiboot.LoaderMagic))
	w.equ("BOOT_KERNEL_BASE", uint64(layout.KernelBase))
	w.equ("BOOT_DATA_BASE", uint64(items[0].addr))
	w.equ("BOOT_TABLE_ROOT", uint64(tables.Root()))
	w.equ("BOOT_STACK32_TOP", uint64(stackPhysTop(layout)))
	w.equ("BOOT_STACK_BASE", uint64(vmm.StackRegionBase))
	w.equ("BOOT_STACK_CEILING", uint64(boot.StackCeiling()))
	w.equ("BOOT_CODE_SELECTOR", uint64(gdt.CodeSelector))
	w.equ("BOOT_FRAMEBUFFER", earlyFramebufferAddr)
	w.equ("BOOT_FAILURE_ATTR", boot.FailureAttr)
	for _, check := range boot.Checks() {
		w.equ(messageLenSym(check.Failure), uint64(len(check.Failure.Message())))
	}
	w.blank()

	w.comment("multiboot2 header: magic, architecture, length, checksum, console flags tag, end tag")
	w.line("%%macro BOOT_MULTIBOOT_HEADER 0")
	w.instr("align %d", multiboot.HeaderAlign)
	headerBytes := header.Encode()
	w.bytes(headerBytes[:])
	w.line("%%endmacro")
	w.blank()

	w.line("%%macro BOOT_DATA_EXTERNS 0")
	for _, item := range items {
		w.instr("extern %s", item.label)
	}
	for _, check := range boot.Checks() {
		w.instr("extern %s", failureMessageLabel(check.Failure))
	}
	w.line("%%endmacro")
	w.blank()

	w.comment("tables, GDT and stack frames; must be placed at BOOT_DATA_BASE")
	w.line("%%macro BOOT_DATA 0")
	for _, item := range items {
		w.blank()
		w.comment("%s @ 0x%x", item.label, item.addr)
		w.instr("global %s", item.label)
		w.instr("times (0x%x - BOOT_DATA_BASE) - ($ - $$) db 0", item.addr)
		w.label(item.label)
		item.emit(&w)
	}
	w.line("%%endmacro")
	w.blank()

	w.line("%%macro BOOT_MESSAGES 0")
	for _, check := range boot.Checks() {
		label := failureMessageLabel(check.Failure)
		w.instr("global %s", label)
		w.label(label)
		if err := w.str(check.Failure.Message()); err != nil {
			return nil, nil, err
		}
	}
	w.line("%%endmacro")

	return w.Bytes(), items, nil
}
