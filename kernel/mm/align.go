package mm

// IsPageAligned returns true if addr is a multiple of PageSize.
func IsPageAligned(addr uintptr) bool {
	return addr&(PageSize-1) == 0
}

// IsLargePageAligned returns true if addr is a multiple of LargePageSize.
func IsLargePageAligned(addr uintptr) bool {
	return addr&(LargePageSize-1) == 0
}
