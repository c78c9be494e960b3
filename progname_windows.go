package procinfo

import "os"

func programName() string { return fromExecutable(os.Executable) }
