//go:build cgo

package kernels

/*
#include <stddef.h>
#include <string.h>

static void membw_memset(void *p, size_t n) {
	memset(p, 0xFF, n);
}
*/
import "C"
import "unsafe"

func writeMemset(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_memset(unsafe.Pointer(&b[0]), C.size_t(len(b)))
}

func init() {
	register(Kernel{Name: "write_memory_memset", Op: OpWrite, Feature: FeatureNone, Fn: writeMemset})
}
