package clock

import "time"

// Clock abstracts the wall clock so time-dependent code can run
// against a fixed instant in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

func New() *SystemClock {
	return &SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}
