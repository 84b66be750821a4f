package membench

import "testing"

func TestPartitionSizeEvenSplit(t *testing.T) {
	// 1 GiB over 4 threads at 4 KiB pages already divides evenly.
	got := PartitionSize(1<<30, 4096, 4)
	if got != 1<<30 {
		t.Fatalf("PartitionSize = %d, want %d", got, 1<<30)
	}
}

func TestPartitionSizeThreeThreads(t *testing.T) {
	got := PartitionSize(1<<30, 4096, 3)
	if got >= 1<<30 {
		t.Fatalf("PartitionSize = %d, want strictly less than %d", got, 1<<30)
	}
	if got%3 != 0 {
		t.Fatalf("PartitionSize = %d, not divisible by 3", got)
	}
	if got%4096 != 0 {
		t.Fatalf("PartitionSize = %d, not a page multiple", got)
	}
	want := (1 << 30) / 3 / 4096 * 4096 * 3
	if got != want {
		t.Fatalf("PartitionSize = %d, want %d", got, want)
	}
}

func TestPartitionSizeProperties(t *testing.T) {
	capacities := []int{1 << 20, 1<<20 + 4096, 1 << 24, 1<<30 - 4096}
	pages := []int{4096, 16384}
	threads := []int{1, 2, 3, 5, 7, 8, 16}
	for _, c := range capacities {
		for _, p := range pages {
			for _, n := range threads {
				v := PartitionSize(c, p, n)
				if v > c {
					t.Fatalf("PartitionSize(%d,%d,%d) = %d exceeds capacity", c, p, n, v)
				}
				if v%p != 0 {
					t.Fatalf("PartitionSize(%d,%d,%d) = %d not a page multiple", c, p, n, v)
				}
				if v%n != 0 {
					t.Fatalf("PartitionSize(%d,%d,%d) = %d not divisible by thread count", c, p, n, v)
				}
				// Maximal at one-page-per-thread granularity.
				if v+p*n <= c {
					t.Fatalf("PartitionSize(%d,%d,%d) = %d, another page per thread still fits", c, p, n, v)
				}
			}
		}
	}
}

func TestPartitionSizeDegenerate(t *testing.T) {
	if v := PartitionSize(0, 4096, 2); v != 0 {
		t.Fatalf("PartitionSize(0,...) = %d, want 0", v)
	}
	if v := PartitionSize(4096, 4096, 2); v != 0 {
		t.Fatalf("PartitionSize = %d, want 0 when one page cannot split", v)
	}
	if v := PartitionSize(1<<20, 0, 2); v != 0 {
		t.Fatalf("PartitionSize with zero page = %d, want 0", v)
	}
	if v := PartitionSize(1<<20, 4096, 0); v != 0 {
		t.Fatalf("PartitionSize with zero threads = %d, want 0", v)
	}
}
