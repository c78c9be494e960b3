//go:build !android && !windows

package procinfo

func programName() string { return fromShortName(kernelShortName) }
