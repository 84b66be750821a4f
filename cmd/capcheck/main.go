// capcheck prints what the benchmark would see on this machine: detected
// CPU feature tiers, the kernel registry with availability, page size,
// default worker count and physical memory.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cli-tools/memory-bandwidth-demo/internal/hostinfo"
	"github.com/cli-tools/memory-bandwidth-demo/internal/kernels"
)

func main() {
	feats := kernels.Detect()
	fmt.Printf("goos=%s goarch=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("page_size=%d logical_cpus=%d\n", os.Getpagesize(), hostinfo.LogicalCPUs())
	if total := hostinfo.TotalBytes(); total > 0 {
		fmt.Printf("mem_total=%d mem_available=%d\n", total, hostinfo.AvailableBytes())
	}
	fmt.Printf("features: sse4.1=%v avx2=%v neon=%v\n", feats.SSE41, feats.AVX2, feats.NEON)
	fmt.Println()
	for _, k := range kernels.All() {
		status := "ok"
		if !feats.Has(k.Feature) {
			status = "skipped (requires " + k.Feature.String() + ")"
		}
		fmt.Printf("%32s  %-5s  %s\n", k.Name, k.Op, status)
	}
}
