package kernels

import "testing"

func BenchmarkKernels(b *testing.B) {
	sizes := []int{1 << 16, 1 << 20, 1 << 24}
	for _, n := range sizes {
		buf := alignedBytes(n)
		for i := range buf {
			buf[i] = FillByte
		}
		for _, k := range Available(Detect()) {
			k := k
			b.Run(k.Name+"/n="+itoa(n), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(n))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					k.Fn(buf)
				}
			})
		}
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
