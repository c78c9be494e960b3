package operations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tychoish/cmdr"

	"github.com/tychoish/procinfo"
	"github.com/tychoish/procinfo/global"
)

func Version() *cmdr.Commander {
	return cmdr.MakeCommander().
		SetName("version").
		SetUsage("returns the version and build information of the binary").
		SetAction(func(ctx context.Context, cc *cli.Command) error {
			fmt.Println(versionInfo(procinfo.Current()))
			return nil
		})
}

func versionInfo(id procinfo.Identity) string {
	return formatVersionInfo(id, global.BuildTime())
}

func formatVersionInfo(id procinfo.Identity, built time.Time) string {
	lines := []string{
		"name: " + global.ApplicationName,
		"version: " + global.Version,
		"build: " + global.BuildRevision(),
	}
	if !built.IsZero() {
		lines = append(lines, "built: "+built.Format(time.DateTime))
	}
	lines = append(lines, "process: "+id.String())
	return strings.Join(lines, "\n")
}
