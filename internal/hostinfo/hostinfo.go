// Package hostinfo discovers the hardware the benchmark runs on.
package hostinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// LogicalCPUs returns the number of logical processors, falling back to the
// Go runtime's view when the OS probe fails.
func LogicalCPUs() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// AvailableBytes returns physical memory currently available to the process,
// or 0 when it cannot be determined.
func AvailableBytes() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return vm.Available
}

// TotalBytes returns total physical memory, or 0 when unknown.
func TotalBytes() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return vm.Total
}
