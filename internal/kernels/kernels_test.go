package kernels

import (
	"testing"
	"unsafe"
)

// alignedBytes returns a 64-byte-aligned slice of length n, matching the
// alignment the arena guarantees for the vector kernels.
func alignedBytes(n int) []byte {
	raw := make([]byte, n+64)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & 63); rem != 0 {
		off = 64 - rem
	}
	return raw[off : off+n : off+n]
}

func TestWriteKernelsFill(t *testing.T) {
	const size = 2 << 12
	for _, k := range Available(Detect()) {
		if k.Op != OpWrite {
			continue
		}
		t.Run(k.Name, func(t *testing.T) {
			b := alignedBytes(size)
			k.Fn(b)
			for i, c := range b {
				if c != FillByte {
					t.Fatalf("%s: b[%d] = %#x, want %#x", k.Name, i, c, FillByte)
				}
			}
		})
	}
}

func TestWriteKernelsFillTail(t *testing.T) {
	// Sizes that are not multiples of the widest vector width.
	for _, size := range []int{1, 3, 65, 4097} {
		for _, k := range Available(Detect()) {
			if k.Op != OpWrite {
				continue
			}
			b := alignedBytes(size)
			k.Fn(b)
			for i, c := range b {
				if c != FillByte {
					t.Fatalf("%s size=%d: b[%d] = %#x, want %#x", k.Name, size, i, c, FillByte)
				}
			}
		}
	}
}

func TestReadKernelsPreserve(t *testing.T) {
	const size = 2 << 12
	for _, k := range Available(Detect()) {
		if k.Op != OpRead {
			continue
		}
		t.Run(k.Name, func(t *testing.T) {
			b := alignedBytes(size)
			for i := range b {
				b[i] = byte(i % 251)
			}
			k.Fn(b)
			for i := range b {
				if b[i] != byte(i%251) {
					t.Fatalf("%s mutated b[%d]", k.Name, i)
				}
			}
		})
	}
}

func TestReadLoopSink(t *testing.T) {
	b := alignedBytes(4096)
	for i := range b {
		b[i] = 1
	}
	before := ReadSink
	readLoop(b)
	// 512 words of 0x0101010101010101, summed with wraparound.
	word := uint64(0x0101010101010101)
	wantLoop := word * 512
	if ReadSink-before != wantLoop {
		t.Fatalf("ReadSink delta = %#x, want %#x", ReadSink-before, wantLoop)
	}
	before = ReadSink
	readRange(b)
	if ReadSink-before != 4096 {
		t.Fatalf("ReadSink delta = %d, want 4096", ReadSink-before)
	}
}

func TestWriteFillOddSizes(t *testing.T) {
	for _, size := range []int{1, 2, 7, 100, 4095} {
		b := make([]byte, size)
		writeFill(b)
		for i, c := range b {
			if c != FillByte {
				t.Fatalf("size=%d: b[%d] = %#x, want %#x", size, i, c, FillByte)
			}
		}
	}
}
