package vmm

// EntryFlag describes a flag that can be applied to a page table entry.
type EntryFlag uint64

// Entry is a single translation table slot. It encodes the physical address
// of a frame (or of the next level table) together with a set of flags.
// Entries that are not present are kept all-zero.
type Entry uint64

// HasFlags returns true if this entry has all the input flags set.
func (e Entry) HasFlags(flags EntryFlag) bool {
	return (uint64(e) & uint64(flags)) == uint64(flags)
}

// SetFlags sets the input list of flags to the page table entry.
func (e *Entry) SetFlags(flags EntryFlag) {
	*e = Entry(uint64(*e) | uint64(flags))
}

// Address returns the physical address stored in bits 12-51 of the entry.
func (e Entry) Address() uintptr {
	return uintptr(uint64(e) & ptePhysPageMask)
}

// SetAddress stores physAddr in the entry, keeping its flags.
func (e *Entry) SetAddress(physAddr uintptr) {
	*e = Entry((uint64(*e) &^ ptePhysPageMask) | (uint64(physAddr) & ptePhysPageMask))
}

// NewEntry returns an entry pointing at physAddr with the given flags set.
func NewEntry(physAddr uintptr, flags EntryFlag) Entry {
	var e Entry
	e.SetAddress(physAddr)
	e.SetFlags(flags)
	return e
}
