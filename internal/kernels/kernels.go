package kernels

import "unsafe"

// Op classifies a kernel by the direction it moves data.
type Op int

const (
	OpRead Op = iota
	OpWrite
)

func (o Op) String() string {
	if o == OpRead {
		return "read"
	}
	return "write"
}

// FillByte is the pattern every write kernel stores and the arena primer
// uses. Priming and writing must agree so a write pass never re-faults pages.
const FillByte = 0xFF

const fillWord = 0xFFFFFFFFFFFFFFFF

// Kernel is a named, stateless memory-access function. Fn must touch every
// byte of its argument: read kernels in a way the compiler cannot eliminate,
// write kernels by storing FillByte throughout.
type Kernel struct {
	Name    string
	Op      Op
	Feature Feature
	Fn      func(b []byte)
}

// ReadSink defeats dead-code elimination of read kernels. Results accumulate
// here and are never inspected.
var ReadSink uint64

func words(b []byte) []uint64 {
	n := len(b) / 8
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), n)
}

func readLoop(b []byte) {
	w := words(b)
	var acc uint64
	for i := 0; i+4 <= len(w); i += 4 {
		acc += w[i] + w[i+1] + w[i+2] + w[i+3]
	}
	for i := len(w) &^ 3; i < len(w); i++ {
		acc += w[i]
	}
	for i := len(w) * 8; i < len(b); i++ {
		acc += uint64(b[i])
	}
	ReadSink += acc
}

func readRange(b []byte) {
	var acc uint64
	for _, c := range b {
		acc += uint64(c)
	}
	ReadSink += acc
}

func writeLoop(b []byte) {
	w := words(b)
	for i := 0; i+4 <= len(w); i += 4 {
		w[i] = fillWord
		w[i+1] = fillWord
		w[i+2] = fillWord
		w[i+3] = fillWord
	}
	for i := len(w) &^ 3; i < len(w); i++ {
		w[i] = fillWord
	}
	for i := len(w) * 8; i < len(b); i++ {
		b[i] = FillByte
	}
}

// writeFill is the library block-fill strategy: seed one byte, then double
// the filled prefix with copy, which lowers to runtime memmove.
func writeFill(b []byte) {
	if len(b) == 0 {
		return
	}
	b[0] = FillByte
	for n := 1; n < len(b); n *= 2 {
		copy(b[n:], b[:n])
	}
}

func init() {
	register(Kernel{Name: "read_memory_loop", Op: OpRead, Feature: FeatureNone, Fn: readLoop})
	register(Kernel{Name: "read_memory_range", Op: OpRead, Feature: FeatureNone, Fn: readRange})
	register(Kernel{Name: "write_memory_loop", Op: OpWrite, Feature: FeatureNone, Fn: writeLoop})
	register(Kernel{Name: "write_memory_fill", Op: OpWrite, Feature: FeatureNone, Fn: writeFill})
}
