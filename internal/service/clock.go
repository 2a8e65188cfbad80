package service

import "time"

// Clock abstracts the current time so transitions and the bank simulator can
// be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
