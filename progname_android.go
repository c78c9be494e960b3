package procinfo

// android only exposes the name the program was invoked with, which
// may carry a path.
func programName() string { return fromPathName(argvName) }
