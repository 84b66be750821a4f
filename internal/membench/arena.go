package membench

import (
	"fmt"

	"github.com/cli-tools/memory-bandwidth-demo/internal/kernels"
)

// Arena is the benchmark working set: one page-aligned buffer allocated once
// and never resized. All trials run over prefixes of it.
type Arena struct {
	buf    []byte
	mapped bool
}

// NewArena allocates a page-aligned arena of the given capacity, preferring
// an anonymous mapping and falling back to the heap where mmap is
// unavailable.
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("arena capacity must be positive, got %d", capacity)
	}
	buf, mapped, err := allocAligned(capacity)
	if err != nil {
		return nil, fmt.Errorf("allocate arena: %w", err)
	}
	return &Arena{buf: buf, mapped: mapped}, nil
}

// Cap returns the fixed capacity in bytes.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Bytes returns the first size bytes of the arena.
func (a *Arena) Bytes(size int) []byte {
	if size < 0 || size > len(a.buf) {
		panic(fmt.Sprintf("arena size %d out of range [0, %d]", size, len(a.buf)))
	}
	return a.buf[:size:size]
}

// Prime writes the fill pattern across [0, size) so every page is backed by
// real memory before it is timed. Freshly mapped pages otherwise share a
// zero page and fault on first touch, which skews the first read samples.
func (a *Arena) Prime(size int) {
	b := a.Bytes(size)
	if len(b) == 0 {
		return
	}
	b[0] = kernels.FillByte
	for n := 1; n < len(b); n *= 2 {
		copy(b[n:], b[:n])
	}
}

// Close releases the arena. The arena must not be used afterwards.
func (a *Arena) Close() error {
	buf := a.buf
	a.buf = nil
	if !a.mapped {
		return nil
	}
	return freeMapped(buf)
}
