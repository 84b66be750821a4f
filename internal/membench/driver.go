package membench

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/cli-tools/memory-bandwidth-demo/internal/hostinfo"
	"github.com/cli-tools/memory-bandwidth-demo/internal/kernels"
)

const (
	defaultSamples = 5
	defaultTimes   = 5
	defaultSizeMiB = 1024
	bytesPerMiB    = 1 << 20
)

// Config holds one harness run's parameters. Zero fields are filled from
// DefaultConfig by Run.
type Config struct {
	Capacity int // arena capacity in bytes
	PageSize int
	Threads  int // worker-pool size for the parallel pass; 0 skips the pass
	Samples  int
	Times    int
}

// DefaultConfig builds the standard configuration: a 1 GiB arena, 5 samples
// of 5 invocations, and one worker per logical CPU. Environment overrides:
// MEMBW_SIZE_MB, MEMBW_THREADS, MEMBW_SAMPLES, MEMBW_TIMES.
func DefaultConfig() Config {
	return Config{
		Capacity: envInt("MEMBW_SIZE_MB", defaultSizeMiB) * bytesPerMiB,
		PageSize: os.Getpagesize(),
		Threads:  envInt("MEMBW_THREADS", hostinfo.LogicalCPUs()),
		Samples:  envInt("MEMBW_SAMPLES", defaultSamples),
		Times:    envInt("MEMBW_TIMES", defaultTimes),
	}
}

// Run executes the fixed benchmark sequence: prime the arena, request a
// higher priority, run every available kernel single-threaded, then
// repartition, re-prime and repeat with the worker pool. Report lines go to
// stdout; phase headers, skipped-kernel notices and warnings go to stderr.
func Run(cfg Config, stdout, stderr io.Writer) error {
	if cfg.PageSize <= 0 {
		cfg.PageSize = os.Getpagesize()
	}
	if cfg.Samples <= 0 {
		cfg.Samples = defaultSamples
	}
	if cfg.Times <= 0 {
		cfg.Times = defaultTimes
	}
	if cfg.Capacity <= 0 {
		return fmt.Errorf("arena capacity must be positive, got %d", cfg.Capacity)
	}
	if cfg.Capacity%cfg.PageSize != 0 {
		return fmt.Errorf("arena capacity %d is not a multiple of the page size %d", cfg.Capacity, cfg.PageSize)
	}

	// Keep the working set well clear of available physical memory; an arena
	// pushed into swap measures the disk, not the bus.
	if avail := hostinfo.AvailableBytes(); avail > 0 && uint64(cfg.Capacity) > avail/2 {
		clamped := int(avail/2) / cfg.PageSize * cfg.PageSize
		if clamped < cfg.PageSize {
			return fmt.Errorf("not enough memory for the arena: %d bytes available", avail)
		}
		fmt.Fprintf(stderr, "# warning: arena clamped from %d to %d bytes (available memory %d)\n", cfg.Capacity, clamped, avail)
		cfg.Capacity = clamped
	}

	feats := kernels.Detect()
	avail := kernels.Available(feats)
	if len(avail) == 0 {
		return fmt.Errorf("no kernels available on this CPU")
	}
	for _, k := range kernels.Skipped(feats) {
		fmt.Fprintf(stderr, "# skipping %s (requires %s)\n", k.Name, k.Feature)
	}

	arena, err := NewArena(cfg.Capacity)
	if err != nil {
		return err
	}
	defer arena.Close()
	arena.Prime(cfg.Capacity)

	if err := elevatePriority(); err != nil {
		fmt.Fprintf(stderr, "# warning: failed to raise process priority: %v\n", err)
	}

	runner := &Runner{
		Timer:   NewTimer(),
		Samples: cfg.Samples,
		Times:   cfg.Times,
		Out:     stdout,
	}

	fmt.Fprintf(stderr, "# Single-thread performance. Threads: 1\n\n")
	for _, k := range avail {
		runner.RunSingle(k, arena.Bytes(cfg.Capacity))
	}

	if cfg.Threads <= 0 {
		return nil
	}
	if n := runtime.GOMAXPROCS(0); n < cfg.Threads {
		runtime.GOMAXPROCS(cfg.Threads)
	}

	size := PartitionSize(cfg.Capacity, cfg.PageSize, cfg.Threads)
	if size <= 0 {
		return fmt.Errorf("capacity %d too small for %d threads at page size %d", cfg.Capacity, cfg.Threads, cfg.PageSize)
	}
	arena.Prime(size)

	fmt.Fprintf(stderr, "\n# Multi-thread performance. Threads: %d\n\n", cfg.Threads)
	for _, k := range avail {
		runner.RunParallel(k, arena.Bytes(size), cfg.Threads)
	}
	return nil
}
