package procinfo

import (
	"bytes"
	"strings"

	"github.com/tychoish/fun/ers"
	"golang.org/x/text/encoding/unicode"
)

const (
	// ErrUnrecognizedStatus is returned when the platform host name call
	// reports a status other than success (0) or failure (-1).
	ErrUnrecognizedStatus ers.Error = "unrecognized host name status"

	// ErrHostnameUnavailable stands in for the OS error when the
	// platform call fails without reporting one.
	ErrHostnameUnavailable ers.Error = "host name unavailable"
)

// POSIX requires HOST_NAME_MAX to be at least 255 on systems that
// let you query it; use that when the query is unsupported.
const defaultHostnameLimit = 255

// hostnameCall fills buf with the host name and reports a raw status:
// 0 for success, -1 for failure with err carrying the OS error, and
// anything else is unrecognized. A name that fills buf completely is
// not nul terminated.
type hostnameCall func(buf []byte) (status int, err error)

// Hostname queries the operating system for the machine's configured
// host name.
func Hostname() (string, error) { return readHostname(hostnameLimit(), platformHostname) }

func readHostname(limit int, call hostnameCall) (string, error) {
	if limit <= 0 {
		limit = defaultHostnameLimit
	}

	buf := make([]byte, limit)

	status, err := call(buf)
	switch status {
	case 0:
		size := bytes.IndexByte(buf[:limit], 0)
		if size < 0 {
			size = limit
		}
		return decodeLossy(buf[:size]), nil
	case -1:
		if err == nil {
			err = ErrHostnameUnavailable
		}
		return "", ers.Wrap(err, "resolving host name")
	default:
		return "", ers.Wrapf(ErrUnrecognizedStatus, "host name call returned %d", status)
	}
}

func decodeLossy(in []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(in)
	if err != nil {
		return strings.ToValidUTF8(string(in), "\uFFFD")
	}
	return string(out)
}

// ShortHostname truncates name at its first '.', so
// "db1.internal.example.com" becomes "db1" and ".local" becomes the
// empty string. Names without a '.' are returned unchanged.
func ShortHostname(name string) string {
	if idx := strings.IndexByte(name, '.'); idx >= 0 {
		return name[:idx]
	}
	return name
}
