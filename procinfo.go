/*
Package procinfo exposes a single, lazily captured snapshot of the
running process's identity: its pid, the host name (with and without
its domain), and the program's short name.

The snapshot is built once, on first use of Current, and never
refreshed. Facts that cannot be resolved are reported as
global.UnknownValue rather than as errors.
*/
package procinfo

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/tychoish/fun/adt"
	"github.com/tychoish/fun/erc"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"

	"github.com/tychoish/procinfo/global"
	"github.com/tychoish/procinfo/util"
)

// Identity describes the running process.
type Identity struct {
	PID           int    `bson:"pid" json:"pid" yaml:"pid"`
	Hostname      string `bson:"hostname" json:"hostname" yaml:"hostname"`
	ShortHostname string `bson:"short_hostname" json:"short_hostname" yaml:"short_hostname"`
	ProgramName   string `bson:"program_name" json:"program_name" yaml:"program_name"`
}

// String renders the identity as program[pid]@hostname.
func (id Identity) String() string {
	return fmt.Sprintf("%s[%d]@%s", id.ProgramName, id.PID, id.Hostname)
}

var current *snapshot

func init() {
	current = newSnapshot(resolvers{
		hostname:    Hostname,
		programName: ProgramName,
		pid:         os.Getpid,
	})
}

// Current returns the identity of the running process, capturing it
// on the first call. Concurrent first callers block until the capture
// completes; every caller receives the same values.
func Current() Identity { return current.get() }

type resolvers struct {
	hostname    func() (string, error)
	programName func() string
	pid         func() int
}

type snapshot struct {
	res   resolvers
	built atomic.Bool
	value adt.Once[Identity]
}

func newSnapshot(res resolvers) *snapshot {
	s := &snapshot{res: res}
	s.value.Set(s.build)
	return s
}

func (s *snapshot) get() Identity { return s.value.Resolve() }

func (s *snapshot) build() Identity {
	erc.InvariantOk(s.built.CompareAndSwap(false, true), "process identity may only be constructed once")

	id, itr := util.DoWithTiming(s.resolve)

	grip.Debug(message.Fields{
		"op":       "captured process identity",
		"pid":      id.PID,
		"hostname": id.Hostname,
		"program":  id.ProgramName,
		"dur":      itr.Span(),
	})

	return id
}

func (s *snapshot) resolve() Identity {
	hostname, err := s.res.hostname()
	if err != nil {
		grip.Debug(message.WrapError(err, message.Fields{
			"op":       "resolve host name",
			"fallback": global.UnknownValue,
		}))
		hostname = global.UnknownValue
	}

	return Identity{
		Hostname:      hostname,
		ShortHostname: ShortHostname(hostname),
		ProgramName:   s.res.programName(),
		PID:           s.res.pid(),
	}
}
