//go:build linux || darwin || freebsd || netbsd || openbsd

package procinfo

import (
	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

func hostnameLimit() int {
	limit, err := sysconf.Sysconf(sysconf.SC_HOST_NAME_MAX)
	if err != nil || limit <= 0 {
		return defaultHostnameLimit
	}
	return int(limit)
}

func platformHostname(buf []byte) (int, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return -1, err
	}

	// the nodename field is one byte longer than the queried limit, so
	// a maximum length name fills buf without its terminator.
	copy(buf, uts.Nodename[:])
	return 0, nil
}
