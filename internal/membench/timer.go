package membench

import "time"

// Timer is a monotonic clock. Readings are durations since an arbitrary
// epoch; only differences between readings are meaningful.
type Timer interface {
	Now() time.Duration
}

type systemTimer struct {
	base time.Time
}

// NewTimer returns a Timer backed by the runtime monotonic clock, which is
// immune to wall-clock adjustment.
func NewTimer() Timer {
	return &systemTimer{base: time.Now()}
}

func (t *systemTimer) Now() time.Duration {
	return time.Since(t.base)
}
