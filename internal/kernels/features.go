package kernels

import "golang.org/x/sys/cpu"

// Feature names an instruction-set tier a kernel depends on.
type Feature int

const (
	FeatureNone Feature = iota
	FeatureSSE41
	FeatureAVX2
	FeatureNEON
)

func (f Feature) String() string {
	switch f {
	case FeatureNone:
		return "baseline"
	case FeatureSSE41:
		return "sse4.1"
	case FeatureAVX2:
		return "avx2"
	case FeatureNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// FeatureSet is the set of tiers the current CPU supports. It is a plain
// value so tests can run the registry against arbitrary hardware profiles.
type FeatureSet struct {
	SSE41 bool
	AVX2  bool
	NEON  bool
}

func (fs FeatureSet) Has(f Feature) bool {
	switch f {
	case FeatureNone:
		return true
	case FeatureSSE41:
		return fs.SSE41
	case FeatureAVX2:
		return fs.AVX2
	case FeatureNEON:
		return fs.NEON
	default:
		return false
	}
}

// Detect probes the running CPU once per call.
func Detect() FeatureSet {
	return FeatureSet{
		SSE41: cpu.X86.HasSSE41,
		AVX2:  cpu.X86.HasAVX2,
		NEON:  cpu.ARM64.HasASIMD,
	}
}
