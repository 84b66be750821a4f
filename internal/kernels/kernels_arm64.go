//go:build arm64 && cgo

package kernels

/*
#cgo CFLAGS: -O3
#include <stddef.h>
#include <arm_neon.h>

static void membw_read_neon(const unsigned char *p, size_t n) {
	size_t i, nv = n / 16;
	uint8x16_t acc = vdupq_n_u8(0);
	for (i = 0; i + 4 <= nv; i += 4) {
		acc = vaddq_u8(acc, vld1q_u8(p + 16*i));
		acc = vaddq_u8(acc, vld1q_u8(p + 16*(i+1)));
		acc = vaddq_u8(acc, vld1q_u8(p + 16*(i+2)));
		acc = vaddq_u8(acc, vld1q_u8(p + 16*(i+3)));
	}
	volatile unsigned char t;
	for (i = (nv & ~(size_t)3) * 16; i < n; i++) t = p[i];
	(void)t;
	volatile unsigned char sink = vgetq_lane_u8(acc, 0);
	(void)sink;
}

static void membw_write_neon(unsigned char *p, size_t n) {
	size_t i, nv = n / 16;
	uint8x16_t pat = vdupq_n_u8(0xFF);
	for (i = 0; i + 4 <= nv; i += 4) {
		vst1q_u8(p + 16*i, pat);
		vst1q_u8(p + 16*(i+1), pat);
		vst1q_u8(p + 16*(i+2), pat);
		vst1q_u8(p + 16*(i+3), pat);
	}
	for (i = (nv & ~(size_t)3) * 16; i < n; i++) p[i] = 0xFF;
}
*/
import "C"
import "unsafe"

func readNEON(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_read_neon((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func writeNEON(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_write_neon((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func init() {
	register(Kernel{Name: "read_memory_neon", Op: OpRead, Feature: FeatureNEON, Fn: readNEON})
	register(Kernel{Name: "write_memory_neon", Op: OpWrite, Feature: FeatureNEON, Fn: writeNEON})
}
