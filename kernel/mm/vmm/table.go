package vmm

// Table is a single translation table of any level. Each table occupies, and
// must be aligned to, one 4 KiB frame.
type Table [EntriesPerTable]Entry

// Level identifies a translation table in the four level hierarchy. L4 is the
// table whose address is loaded into CR3.
type Level uint8

// The translation table levels, outermost first.
const (
	L4 Level = iota
	L3
	L2
	L1
)

var levelNames = [pageLevels]string{"L4", "L3", "L2", "L1"}

// String implements fmt.Stringer.
func (l Level) String() string {
	if l >= pageLevels {
		return "L?"
	}
	return levelNames[l]
}

// Index returns the index of the entry in a table of this level that
// translates virtAddr.
func (l Level) Index(virtAddr uintptr) int {
	return int((virtAddr >> pageLevelShifts[l]) & ((1 << pageLevelBits[l]) - 1))
}

// PageSize returns the amount of memory mapped by a single entry at this
// level when the entry maps memory directly.
func (l Level) PageSize() uintptr {
	return uintptr(1) << pageLevelShifts[l]
}

// PresentEntries returns the number of entries with FlagPresent set.
func (t *Table) PresentEntries() int {
	var count int
	for _, e := range t {
		if e.HasFlags(FlagPresent) {
			count++
		}
	}
	return count
}
