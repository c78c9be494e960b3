package util

import (
	"time"
)

func DoWithTiming[T any](op func() T) (val T, itr Interval) {
	defer func() { itr.End = time.Now() }()
	itr.Start = time.Now()

	val = op()

	return
}

type Interval struct {
	Start time.Time
	End   time.Time
}

func (itr Interval) Span() time.Duration {
	return itr.End.Sub(itr.Start)
}
