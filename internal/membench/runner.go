package membench

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cli-tools/memory-bandwidth-demo/internal/kernels"
)

const bytesPerGiB = 1 << 30

// Runner times kernels over a buffer and reports bandwidth. Each trial takes
// Samples measurements of Times back-to-back kernel invocations and keeps
// the minimum duration: the minimum filters scheduler and interrupt noise
// and is the best achievable rate, which is the quantity of interest.
type Runner struct {
	Timer   Timer
	Samples int
	Times   int
	Out     io.Writer
}

// Result is one completed trial.
type Result struct {
	Name    string
	Threads int
	Min     time.Duration
	Bytes   int64 // total bytes moved per sample, all threads
	GiBps   float64
}

func (r *Runner) bandwidth(bytes int64, min time.Duration) float64 {
	return float64(bytes) / min.Seconds() / bytesPerGiB
}

// RunSingle times kernel k over buf on the calling goroutine and emits one
// report line.
func (r *Runner) RunSingle(k kernels.Kernel, buf []byte) Result {
	var min time.Duration
	for s := 0; s < r.Samples; s++ {
		t0 := r.Timer.Now()
		for i := 0; i < r.Times; i++ {
			k.Fn(buf)
		}
		t1 := r.Timer.Now()
		if d := t1 - t0; s == 0 || d < min {
			min = d
		}
	}
	res := Result{
		Name:    k.Name,
		Threads: 1,
		Min:     min,
		Bytes:   int64(len(buf)) * int64(r.Times),
	}
	res.GiBps = r.bandwidth(res.Bytes, res.Min)
	r.report(k.Name, res.GiBps)
	return res
}

// RunParallel times kernel k with threads workers over disjoint equal chunks
// of buf. Workers rendezvous at an entry barrier before t0 is taken and at
// an exit barrier before t1, so the sample spans the slowest worker. The
// aggregate bandwidth is total bytes moved by all workers over that wall
// time: the harness measures system-wide throughput, not per-thread
// throughput.
//
// len(buf) must divide evenly by threads; a remainder is a configuration
// defect, not a runtime condition, and panics.
func (r *Runner) RunParallel(k kernels.Kernel, buf []byte, threads int) Result {
	if threads < 1 {
		panic(fmt.Sprintf("thread count %d < 1", threads))
	}
	if len(buf)%threads != 0 {
		panic(fmt.Sprintf("size %d not divisible by %d threads", len(buf), threads))
	}
	chunk := len(buf) / threads

	var min time.Duration
	for s := 0; s < r.Samples; s++ {
		var entry, exit sync.WaitGroup
		entry.Add(threads)
		exit.Add(threads)
		release := make(chan struct{})
		for w := 0; w < threads; w++ {
			go func(part []byte) {
				entry.Done()
				<-release
				for i := 0; i < r.Times; i++ {
					k.Fn(part)
				}
				exit.Done()
			}(buf[chunk*w : chunk*(w+1) : chunk*(w+1)])
		}
		entry.Wait()
		t0 := r.Timer.Now()
		close(release)
		exit.Wait()
		t1 := r.Timer.Now()
		if d := t1 - t0; s == 0 || d < min {
			min = d
		}
	}
	res := Result{
		Name:    k.Name,
		Threads: threads,
		Min:     min,
		Bytes:   int64(chunk) * int64(threads) * int64(r.Times),
	}
	res.GiBps = r.bandwidth(res.Bytes, res.Min)
	r.report(k.Name+"_par", res.GiBps)
	return res
}

func (r *Runner) report(name string, gibps float64) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, "%32s: %6.2f GiB/s\n", name, gibps)
}
