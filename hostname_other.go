//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package procinfo

import "os"

func hostnameLimit() int { return defaultHostnameLimit }

func platformHostname(buf []byte) (int, error) {
	name, err := os.Hostname()
	if err != nil {
		return -1, err
	}

	copy(buf, name)
	return 0, nil
}
