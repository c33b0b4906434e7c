package vmm

import "gopherboot/kernel"

var (
	// ErrInvalidMapping is returned when trying to lookup a virtual memory address that is not yet mapped.
	ErrInvalidMapping = &kernel.Error{Module: "vmm", Message: "virtual address does not point to a mapped physical page"}

	// ErrNonCanonicalAddress is returned for virtual addresses whose bits
	// 48-63 do not replicate bit 47.
	ErrNonCanonicalAddress = &kernel.Error{Module: "vmm", Message: "virtual address is not canonical"}
)

// Translate walks the table set the way the MMU would and returns the
// physical address that corresponds to virtAddr. Entries that point to
// tables outside the set are treated as unmapped.
func (ts *TableSet) Translate(virtAddr uintptr) (uintptr, *kernel.Error) {
	if !IsCanonical(virtAddr) {
		return 0, ErrNonCanonicalAddress
	}

	table := &ts.L4
	for level := L4; ; level++ {
		entry := table[level.Index(virtAddr)]
		if !entry.HasFlags(FlagPresent) {
			return 0, ErrInvalidMapping
		}

		if level == L1 || (level != L4 && entry.HasFlags(FlagHugePage)) {
			pageSize := level.PageSize()
			return entry.Address()&^(pageSize-1) | virtAddr&(pageSize-1), nil
		}

		if table = ts.tableAt(entry.Address()); table == nil {
			return 0, ErrInvalidMapping
		}
	}
}

// IsCanonical returns true if bits 48-63 of virtAddr are copies of bit 47.
func IsCanonical(virtAddr uintptr) bool {
	top := int64(virtAddr) >> (canonicalBits - 1)
	return top == 0 || top == -1
}

// PageOffset returns the offset within the 4 KiB page specified by a virtual
// address.
func PageOffset(virtAddr uintptr) uintptr {
	return virtAddr & ((1 << pageLevelShifts[pageLevels-1]) - 1)
}
