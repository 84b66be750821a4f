package kernels

import "sort"

// Registration order within a file is report order. Sorting is stable, so
// All only moves reads ahead of writes without reshuffling either family.
var registry []Kernel

func register(k Kernel) {
	registry = append(registry, k)
}

// All returns every registered kernel, reads grouped before writes, in a
// deterministic order.
func All() []Kernel {
	out := make([]Kernel, len(registry))
	copy(out, registry)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Op < out[j].Op
	})
	return out
}

// Available filters All down to kernels the given feature set can run.
func Available(fs FeatureSet) []Kernel {
	var out []Kernel
	for _, k := range All() {
		if fs.Has(k.Feature) {
			out = append(out, k)
		}
	}
	return out
}

// Skipped returns the kernels Available filtered out, so callers can report
// them rather than leaving them silently absent.
func Skipped(fs FeatureSet) []Kernel {
	var out []Kernel
	for _, k := range All() {
		if !fs.Has(k.Feature) {
			out = append(out, k)
		}
	}
	return out
}
