package operations

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tychoish/cmdr"
	"github.com/tychoish/grip/level"

	"github.com/tychoish/procinfo/global"
	"github.com/tychoish/procinfo/srv"
)

func LoggingSettings(cc *cli.Command) (srv.LoggingSettings, error) {
	conf := srv.LoggingSettings{
		Priority:                  level.FromString(levelName(cc)),
		DisableSyslog:             cc.Bool("quietSyslog") || os.Getenv(global.EnvVarLogQuietSyslog) != "",
		EnableJSONFormating:       cc.Bool("jsonLog") || os.Getenv(global.EnvVarLogFormatJSON) != "",
		EnableJSONColorFormatting: cc.Bool("colorJsonLog") || os.Getenv(global.EnvVarLogJSONColor) != "",
	}

	return conf, conf.Validate()
}

// levelName prefers an explicit flag over the environment.
func levelName(cc *cli.Command) string {
	if env := os.Getenv(global.EnvVarLogLevel); env != "" && !cc.IsSet("level") {
		return env
	}
	return cc.String("level")
}

func Commander() *cmdr.Commander {
	return cmdr.MakeRootCommander().
		SetName(global.ApplicationName).
		Flags(cmdr.FlagBuilder(false).SetName("jsonLog").SetUsage("format logs as json").Flag(),
			cmdr.FlagBuilder(false).SetName("colorJsonLog").SetUsage("colorized json logs").Flag(),
			cmdr.FlagBuilder(false).SetName("quietSyslog", "qs").SetUsage("don't log to syslog").Flag(),
			cmdr.FlagBuilder("info").
				SetName("level").
				SetUsage("specify logging threshold: emergency|alert|critical|error|warning|notice|info|debug").
				SetValidate(func(val string) error {
					if level.FromString(val) == level.Invalid {
						return fmt.Errorf("%q is not a valid logging level", val)
					}
					return nil
				}).Flag()).
		SetAction(func(ctx context.Context, cc *cli.Command) error {
			return cli.ShowAppHelp(cc)
		}).
		Subcommanders(
			Show(),
			Version(),
		)
}
