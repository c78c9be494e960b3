package global

import "time"

const Version = "v0.1.0"

// BuildRevision stores the commit in the git repository at build time
// and is specified with -ldflags at build time
var buildRevision = ""

var buildTimeString = ""

func BuildRevision() string {
	if buildRevision == "" {
		return "<UNKNOWN>"
	}
	return buildRevision
}

// BuildTime reports the zero time when the binary was built without
// a timestamp.
func BuildTime() time.Time {
	if buildTimeString == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.DateTime, buildTimeString)
	if err != nil {
		return time.Time{}
	}
	return ts
}
