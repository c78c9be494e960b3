package srv

import (
	"context"
	"runtime"

	"github.com/coreos/go-systemd/journal"
	"github.com/nwidger/jsoncolor"
	"github.com/tychoish/fun/erc"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/level"
	"github.com/tychoish/grip/message"
	"github.com/tychoish/grip/send"
	"github.com/tychoish/grip/x/system"

	"github.com/tychoish/procinfo"
)

type LoggingSettings struct {
	EnableJSONFormating       bool           `bson:"enable_json_formatting" json:"enable_json_formatting" yaml:"enable_json_formatting"`
	EnableJSONColorFormatting bool           `bson:"enable_json_color_formatting" json:"enable_json_color_formatting" yaml:"enable_json_color_formatting"`
	DisableSyslog             bool           `bson:"disable_syslog" json:"disable_syslog" yaml:"disable_syslog"`
	Priority                  level.Priority `bson:"priority" json:"priority" yaml:"priority"`
}

func (conf *LoggingSettings) Validate() error {
	catcher := &erc.Collector{}
	catcher.Whenf(conf.Priority == level.Invalid, "invalid logging priority %d", conf.Priority)
	catcher.Whenf(conf.EnableJSONFormating && conf.EnableJSONColorFormatting,
		"cannot enable both plain and colorized json log formatting")
	return catcher.Resolve()
}

func WithAppLogger(ctx context.Context, conf LoggingSettings) context.Context {
	sender := SetupLogging(conf)
	grip.SetSender(sender)
	return grip.WithLogger(ctx, grip.NewLogger(sender))
}

func SetupLogging(conf LoggingSettings) send.Sender {
	var sender send.Sender

	if conf.EnableJSONFormating || conf.EnableJSONColorFormatting {
		sender = send.MakePlain()
	} else {
		sender = send.MakeStdError()
	}

	name := procinfo.Current().ProgramName

	if runtime.GOOS == "linux" && !conf.DisableSyslog && journal.Enabled() {
		syslog := system.MakeDefault()
		syslog.SetName(name)
		sender = send.MakeMulti(syslog, sender)
	}

	switch {
	case conf.EnableJSONColorFormatting:
		sender.SetFormatter(func(m message.Composer) (string, error) {
			out, err := jsoncolor.Marshal(m.Raw())
			if err != nil {
				return "", err
			}
			return string(out), nil
		})
	case conf.EnableJSONFormating:
		sender.SetFormatter(send.MakeJSONFormatter())
	}

	sender.SetPriority(conf.Priority)
	sender.SetName(name)

	return sender
}
