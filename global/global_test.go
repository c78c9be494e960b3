package global

import (
	"testing"
	"time"

	"github.com/tychoish/fun/assert/check"
)

func TestBuildInfo(t *testing.T) {
	rev, ts := buildRevision, buildTimeString
	defer func() { buildRevision, buildTimeString = rev, ts }()

	buildRevision, buildTimeString = "", ""
	check.Equal(t, BuildRevision(), "<UNKNOWN>")
	check.True(t, BuildTime().IsZero())

	buildRevision = "abc123"
	check.Equal(t, BuildRevision(), "abc123")

	buildTimeString = "not a time"
	check.True(t, BuildTime().IsZero())

	buildTimeString = "2026-10-19 12:30:00"
	check.True(t, BuildTime().Equal(time.Date(2026, time.October, 19, 12, 30, 0, 0, time.UTC)))
}
