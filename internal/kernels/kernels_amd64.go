//go:build amd64 && cgo

package kernels

/*
#cgo CFLAGS: -O3
#include <stddef.h>
#include <immintrin.h>

__attribute__((target("sse4.1")))
static void membw_read_sse(const unsigned char *p, size_t n) {
	const __m128i *v = (const __m128i *)p;
	size_t i, nv = n / sizeof(__m128i);
	__m128i acc = _mm_setzero_si128();
	for (i = 0; i + 4 <= nv; i += 4) {
		acc = _mm_add_epi32(acc, _mm_load_si128(v + i));
		acc = _mm_add_epi32(acc, _mm_load_si128(v + i + 1));
		acc = _mm_add_epi32(acc, _mm_load_si128(v + i + 2));
		acc = _mm_add_epi32(acc, _mm_load_si128(v + i + 3));
	}
	volatile unsigned char t;
	for (i = (nv & ~(size_t)3) * sizeof(__m128i); i < n; i++) t = p[i];
	(void)t;
	volatile int sink = _mm_extract_epi32(acc, 0);
	(void)sink;
}

__attribute__((target("avx2")))
static void membw_read_avx2(const unsigned char *p, size_t n) {
	const __m256i *v = (const __m256i *)p;
	size_t i, nv = n / sizeof(__m256i);
	__m256i acc = _mm256_setzero_si256();
	for (i = 0; i + 4 <= nv; i += 4) {
		acc = _mm256_add_epi32(acc, _mm256_load_si256(v + i));
		acc = _mm256_add_epi32(acc, _mm256_load_si256(v + i + 1));
		acc = _mm256_add_epi32(acc, _mm256_load_si256(v + i + 2));
		acc = _mm256_add_epi32(acc, _mm256_load_si256(v + i + 3));
	}
	volatile unsigned char t;
	for (i = (nv & ~(size_t)3) * sizeof(__m256i); i < n; i++) t = p[i];
	(void)t;
	volatile int sink = _mm256_extract_epi32(acc, 0);
	(void)sink;
}

__attribute__((target("avx2")))
static void membw_read_prefetch_avx2(const unsigned char *p, size_t n) {
	const __m256i *v = (const __m256i *)p;
	size_t i, nv = n / sizeof(__m256i);
	__m256i acc = _mm256_setzero_si256();
	for (i = 0; i + 4 <= nv; i += 4) {
		_mm_prefetch((const char *)(v + i + 8), _MM_HINT_T0);
		acc = _mm256_add_epi32(acc, _mm256_load_si256(v + i));
		acc = _mm256_add_epi32(acc, _mm256_load_si256(v + i + 1));
		acc = _mm256_add_epi32(acc, _mm256_load_si256(v + i + 2));
		acc = _mm256_add_epi32(acc, _mm256_load_si256(v + i + 3));
	}
	volatile unsigned char t;
	for (i = (nv & ~(size_t)3) * sizeof(__m256i); i < n; i++) t = p[i];
	(void)t;
	volatile int sink = _mm256_extract_epi32(acc, 0);
	(void)sink;
}

__attribute__((target("sse4.1")))
static void membw_write_sse(unsigned char *p, size_t n) {
	__m128i *v = (__m128i *)p;
	size_t i, nv = n / sizeof(__m128i);
	__m128i pat = _mm_set1_epi8((char)0xFF);
	for (i = 0; i + 4 <= nv; i += 4) {
		_mm_store_si128(v + i, pat);
		_mm_store_si128(v + i + 1, pat);
		_mm_store_si128(v + i + 2, pat);
		_mm_store_si128(v + i + 3, pat);
	}
	for (i = (nv & ~(size_t)3) * sizeof(__m128i); i < n; i++) p[i] = 0xFF;
}

__attribute__((target("sse4.1")))
static void membw_write_nt_sse(unsigned char *p, size_t n) {
	__m128i *v = (__m128i *)p;
	size_t i, nv = n / sizeof(__m128i);
	__m128i pat = _mm_set1_epi8((char)0xFF);
	for (i = 0; i + 4 <= nv; i += 4) {
		_mm_stream_si128(v + i, pat);
		_mm_stream_si128(v + i + 1, pat);
		_mm_stream_si128(v + i + 2, pat);
		_mm_stream_si128(v + i + 3, pat);
	}
	_mm_sfence();
	for (i = (nv & ~(size_t)3) * sizeof(__m128i); i < n; i++) p[i] = 0xFF;
}

__attribute__((target("avx2")))
static void membw_write_avx2(unsigned char *p, size_t n) {
	__m256i *v = (__m256i *)p;
	size_t i, nv = n / sizeof(__m256i);
	__m256i pat = _mm256_set1_epi8((char)0xFF);
	for (i = 0; i + 4 <= nv; i += 4) {
		_mm256_store_si256(v + i, pat);
		_mm256_store_si256(v + i + 1, pat);
		_mm256_store_si256(v + i + 2, pat);
		_mm256_store_si256(v + i + 3, pat);
	}
	for (i = (nv & ~(size_t)3) * sizeof(__m256i); i < n; i++) p[i] = 0xFF;
}

__attribute__((target("avx2")))
static void membw_write_nt_avx2(unsigned char *p, size_t n) {
	__m256i *v = (__m256i *)p;
	size_t i, nv = n / sizeof(__m256i);
	__m256i pat = _mm256_set1_epi8((char)0xFF);
	for (i = 0; i + 4 <= nv; i += 4) {
		_mm256_stream_si256(v + i, pat);
		_mm256_stream_si256(v + i + 1, pat);
		_mm256_stream_si256(v + i + 2, pat);
		_mm256_stream_si256(v + i + 3, pat);
	}
	_mm_sfence();
	for (i = (nv & ~(size_t)3) * sizeof(__m256i); i < n; i++) p[i] = 0xFF;
}
*/
import "C"
import "unsafe"

// The vector kernels use aligned loads and stores; callers hand them slices
// backed by the page-aligned arena.

func readSSE(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_read_sse((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func readAVX2(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_read_avx2((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func readPrefetchAVX2(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_read_prefetch_avx2((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func writeSSE(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_write_sse((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func writeNontemporalSSE(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_write_nt_sse((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func writeAVX2(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_write_avx2((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func writeNontemporalAVX2(b []byte) {
	if len(b) == 0 {
		return
	}
	C.membw_write_nt_avx2((*C.uchar)(unsafe.Pointer(&b[0])), C.size_t(len(b)))
}

func init() {
	register(Kernel{Name: "read_memory_sse", Op: OpRead, Feature: FeatureSSE41, Fn: readSSE})
	register(Kernel{Name: "read_memory_avx2", Op: OpRead, Feature: FeatureAVX2, Fn: readAVX2})
	register(Kernel{Name: "read_memory_prefetch_avx2", Op: OpRead, Feature: FeatureAVX2, Fn: readPrefetchAVX2})
	register(Kernel{Name: "write_memory_sse", Op: OpWrite, Feature: FeatureSSE41, Fn: writeSSE})
	register(Kernel{Name: "write_memory_nontemporal_sse", Op: OpWrite, Feature: FeatureSSE41, Fn: writeNontemporalSSE})
	register(Kernel{Name: "write_memory_avx2", Op: OpWrite, Feature: FeatureAVX2, Fn: writeAVX2})
	register(Kernel{Name: "write_memory_nontemporal_avx2", Op: OpWrite, Feature: FeatureAVX2, Fn: writeNontemporalAVX2})
}
