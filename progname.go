package procinfo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/process"
	"github.com/tychoish/fun/ers"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"

	"github.com/tychoish/procinfo/global"
	"github.com/tychoish/procinfo/util"
)

// ErrProgramNameUnavailable is reported by a name source that has
// nothing to offer.
const ErrProgramNameUnavailable ers.Error = "program name unavailable"

// nameSource is the platform mechanism behind one program name
// strategy.
type nameSource func() (string, error)

// ProgramName returns the short, non-path name of the running
// program, or global.UnknownValue when the platform cannot provide it.
func ProgramName() string { return programName() }

// fromShortName uses the name the platform reports for the process.
// That is usually unqualified, but gopsutil falls back to the full
// argv[0] for long names on linux, so any path is still removed.
func fromShortName(src nameSource) string {
	name, err := src()
	if err != nil {
		logUnresolvedName("short-name", err)
		return global.UnknownValue
	}
	return util.Default(trimPath(decodeLossy([]byte(name))), global.UnknownValue)
}

// fromPathName strips everything up to and including the last path
// separator from a possibly path-qualified name.
func fromPathName(src nameSource) string {
	name, err := src()
	if err != nil {
		logUnresolvedName("path-name", err)
		return global.UnknownValue
	}
	return util.Default(trimPath(name), global.UnknownValue)
}

func trimPath(name string) string {
	if idx := strings.LastIndexAny(name, "/"+string(filepath.Separator)); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// fromExecutable takes the final component of the executable's path.
func fromExecutable(src nameSource) string {
	path, err := src()
	if err != nil {
		logUnresolvedName("executable", err)
		return global.UnknownValue
	}

	switch name := filepath.Base(path); name {
	case ".", string(filepath.Separator):
		logUnresolvedName("executable", ers.Wrapf(ErrProgramNameUnavailable, "no file name in %q", path))
		return global.UnknownValue
	default:
		return name
	}
}

func kernelShortName() (string, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return "", err
	}
	return proc.Name()
}

func argvName() (string, error) {
	if len(os.Args) == 0 {
		return "", ErrProgramNameUnavailable
	}
	return os.Args[0], nil
}

func logUnresolvedName(strategy string, err error) {
	grip.Debug(message.WrapError(err, message.Fields{
		"op":       "resolve program name",
		"strategy": strategy,
		"fallback": global.UnknownValue,
	}))
}
