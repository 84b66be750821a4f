package membench

import (
	"fmt"
	"os"
	"unsafe"
)

// allocHeapAligned over-allocates and slices at a page boundary. Used where
// mmap is unavailable or fails; the extra page is the alignment cost.
func allocHeapAligned(capacity int) ([]byte, error) {
	page := os.Getpagesize()
	raw := make([]byte, capacity+page)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) % uintptr(page)); rem != 0 {
		off = page - rem
	}
	if off+capacity > len(raw) {
		return nil, fmt.Errorf("aligned slice of %d bytes does not fit", capacity)
	}
	return raw[off : off+capacity : off+capacity], nil
}
