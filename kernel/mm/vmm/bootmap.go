package vmm

import (
	"gopherboot/kernel"
	"gopherboot/kernel/mm"
)

const (
	// IdentityRegionSize is the amount of low memory that the boot tables
	// identity-map using large pages.
	IdentityRegionSize = 16 * mm.Mb

	// StackPages is the number of 4 KiB frames reserved for the boot stack.
	StackPages = 4

	// StackRegionSize is the size of the virtual window that maps the boot
	// stack.
	StackRegionSize = StackPages * mm.PageSize

	// StackRegionBase is the lowest virtual address of the stack window.
	// The window occupies the last StackPages pages of the address space so
	// the stack can grow down from the very top.
	StackRegionBase = ^uintptr(0) - StackRegionSize + 1

	identityLargePages = uintptr(IdentityRegionSize) / mm.LargePageSize

	// stackFirstEntry is the first L1 slot used by the stack window.
	stackFirstEntry = EntriesPerTable - StackPages
)

var (
	// ErrMisalignedAddress is returned when a table or stack frame is not
	// placed on a 4 KiB boundary.
	ErrMisalignedAddress = &kernel.Error{Module: "vmm", Message: "boot table or stack frame address is not page aligned"}

	// ErrOverlappingLayout is returned when two boot tables or frames share
	// a physical page.
	ErrOverlappingLayout = &kernel.Error{Module: "vmm", Message: "boot tables and stack frames must occupy distinct pages"}

	// ErrOutsideIdentityRegion is returned when a boot table or stack
	// frame would not be reachable through the identity-mapped window
	// once paging is enabled.
	ErrOutsideIdentityRegion = &kernel.Error{Module: "vmm", Message: "boot table or stack frame lies outside the identity-mapped region"}

	// ErrStaleEntry is returned by Check for a non-present entry with
	// any bit set.
	ErrStaleEntry = &kernel.Error{Module: "vmm", Message: "non-present table entry is not zero"}

	// ErrMisalignedLargePage is returned by Check for a large page entry
	// whose address is not a multiple of the large page size.
	ErrMisalignedLargePage = &kernel.Error{Module: "vmm", Message: "large page entry address is not 2Mb aligned"}

	// ErrInvalidLargePage is returned by Check when a large page entry is
	// found outside the L2 tables.
	ErrInvalidLargePage = &kernel.Error{Module: "vmm", Message: "large page entries are only allowed in L2 tables"}

	// ErrForeignTable is returned by Check when a table entry points to a
	// table that is not part of the set.
	ErrForeignTable = &kernel.Error{Module: "vmm", Message: "table entry points outside the table set"}
)

// BootLayout lists the physical placement of the tables and stack frames used
// by the boot stage.
type BootLayout struct {
	L4         uintptr
	IdentityL3 uintptr
	IdentityL2 uintptr
	StackL3    uintptr
	StackL2    uintptr
	StackL1    uintptr

	// StackFrames are mapped to the stack window in ascending virtual
	// address order.
	StackFrames [StackPages]uintptr
}

// Validate checks that every table and frame is page aligned, distinct and
// located inside the identity-mapped region.
func (l *BootLayout) Validate() *kernel.Error {
	var addrs [6 + StackPages]uintptr
	addrs[0], addrs[1], addrs[2] = l.L4, l.IdentityL3, l.IdentityL2
	addrs[3], addrs[4], addrs[5] = l.StackL3, l.StackL2, l.StackL1
	copy(addrs[6:], l.StackFrames[:])

	for i, addr := range addrs {
		if !mm.IsPageAligned(addr) {
			return ErrMisalignedAddress
		}

		if addr+mm.PageSize > uintptr(IdentityRegionSize) {
			return ErrOutsideIdentityRegion
		}

		for _, other := range addrs[:i] {
			if other == addr {
				return ErrOverlappingLayout
			}
		}
	}

	return nil
}

// TableSet holds the translation tables that the boot stage activates. It
// maps two regions:
//   - the first IdentityRegionSize bytes of physical memory, identity-mapped
//     with large pages through L4[0] -> IdentityL3[0] -> IdentityL2[0..7].
//   - the StackRegionSize window at StackRegionBase, mapped to the boot stack
//     frames through L4[511] -> StackL3[511] -> StackL2[511] -> StackL1[508..511].
type TableSet struct {
	L4         Table
	IdentityL3 Table
	IdentityL2 Table
	StackL3    Table
	StackL2    Table
	StackL1    Table

	layout BootLayout
}

// Build populates the table set for the supplied layout. All entries not
// explicitly set by Build are zero.
func (ts *TableSet) Build(layout BootLayout) *kernel.Error {
	if err := layout.Validate(); err != nil {
		return err
	}

	*ts = TableSet{}
	ts.layout = layout

	flags := FlagPresent | FlagRW

	ts.L4[0] = NewEntry(layout.IdentityL3, flags)
	ts.L4[EntriesPerTable-1] = NewEntry(layout.StackL3, flags)

	ts.IdentityL3[0] = NewEntry(layout.IdentityL2, flags)
	for i := uintptr(0); i < identityLargePages; i++ {
		ts.IdentityL2[i] = NewEntry(i*mm.LargePageSize, flags|FlagHugePage)
	}

	ts.StackL3[EntriesPerTable-1] = NewEntry(layout.StackL2, flags)
	ts.StackL2[EntriesPerTable-1] = NewEntry(layout.StackL1, flags)
	for i, frameAddr := range layout.StackFrames {
		ts.StackL1[stackFirstEntry+i] = NewEntry(frameAddr, flags)
	}

	return ts.Check()
}

// Check verifies the entries of every table in the set. Non-present entries
// must be zero, large pages may only appear in L2 tables and must be 2Mb
// aligned, and every other entry above L1 must point to a table of the set.
func (ts *TableSet) Check() *kernel.Error {
	tables := [...]struct {
		level Level
		table *Table
	}{
		{L4, &ts.L4},
		{L3, &ts.IdentityL3},
		{L2, &ts.IdentityL2},
		{L3, &ts.StackL3},
		{L2, &ts.StackL2},
		{L1, &ts.StackL1},
	}

	for _, t := range tables {
		for _, entry := range t.table {
			switch {
			case !entry.HasFlags(FlagPresent):
				if entry != 0 {
					return ErrStaleEntry
				}
			case t.level == L1:
			case entry.HasFlags(FlagHugePage):
				if t.level != L2 {
					return ErrInvalidLargePage
				}

				if !mm.IsLargePageAligned(entry.Address()) {
					return ErrMisalignedLargePage
				}
			case ts.tableAt(entry.Address()) == nil:
				return ErrForeignTable
			}
		}
	}

	return nil
}

// Layout returns the layout the table set was built for.
func (ts *TableSet) Layout() BootLayout {
	return ts.layout
}

// Root returns the physical address of the L4 table, the value loaded into
// CR3 when the tables are activated.
func (ts *TableSet) Root() uintptr {
	return ts.layout.L4
}

// TableVisitor is invoked by VisitTables for each table in the set.
type TableVisitor func(name string, physAddr uintptr, table *Table)

// VisitTables invokes visitor for each table in ascending physical address
// order.
func (ts *TableSet) VisitTables(visitor TableVisitor) {
	entries := [...]struct {
		name  string
		addr  uintptr
		table *Table
	}{
		{"L4", ts.layout.L4, &ts.L4},
		{"IdentityL3", ts.layout.IdentityL3, &ts.IdentityL3},
		{"IdentityL2", ts.layout.IdentityL2, &ts.IdentityL2},
		{"StackL3", ts.layout.StackL3, &ts.StackL3},
		{"StackL2", ts.layout.StackL2, &ts.StackL2},
		{"StackL1", ts.layout.StackL1, &ts.StackL1},
	}

	// sort by address
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].addr < entries[j-1].addr; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	for _, e := range entries {
		visitor(e.name, e.addr, e.table)
	}
}

// tableAt returns the table placed at physAddr or nil if no table of the set
// lives there.
func (ts *TableSet) tableAt(physAddr uintptr) *Table {
	switch physAddr {
	case ts.layout.L4:
		return &ts.L4
	case ts.layout.IdentityL3:
		return &ts.IdentityL3
	case ts.layout.IdentityL2:
		return &ts.IdentityL2
	case ts.layout.StackL3:
		return &ts.StackL3
	case ts.layout.StackL2:
		return &ts.StackL2
	case ts.layout.StackL1:
		return &ts.StackL1
	default:
		return nil
	}
}
