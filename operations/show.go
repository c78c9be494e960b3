package operations

import (
	"bytes"
	"context"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/tychoish/cmdr"
	"github.com/tychoish/fun/ers"

	"github.com/tychoish/procinfo"
	"github.com/tychoish/procinfo/global"
	"github.com/tychoish/procinfo/srv"
	"github.com/tychoish/procinfo/util"
)

const (
	ErrUnsupportedFormat ers.Error = "unsupported output format"
	ErrUnknownField      ers.Error = "unknown identity field"
)

const formatText = "text"

type ShowOptions struct {
	Format  string
	Field   string
	Color   bool
	Logging srv.LoggingSettings
	Output  io.Writer
}

func Show() *cmdr.Commander {
	cmd := cmdr.MakeCommander().
		SetName("show").
		SetUsage("print the identity of the running process").
		Flags(
			cmdr.FlagBuilder(formatText).
				SetName("format", "f").
				SetUsage("output format: text|json|yaml|bson").
				SetValidate(validateFormat).Flag(),
			cmdr.FlagBuilder("").
				SetName("field").
				SetUsage("print one field: pid|hostname|short_hostname|program_name").
				SetValidate(func(in string) error {
					if in == "" {
						return nil
					}
					_, err := fieldValue(procinfo.Identity{}, in)
					return err
				}).Flag(),
			cmdr.FlagBuilder(false).
				SetName("noColor").
				SetUsage("disable colorized json output").Flag(),
		)

	cmdr.AddOperationSpec(cmd,
		cmdr.SpecBuilder(resolveShowOptions).
			SetMiddleware(func(ctx context.Context, opts *ShowOptions) context.Context {
				return srv.WithAppLogger(ctx, opts.Logging)
			}).
			SetAction(func(ctx context.Context, opts *ShowOptions) error {
				out, err := Render(procinfo.Current(), opts)
				if err != nil {
					return err
				}
				_, err = opts.Output.Write(out)
				return ers.Wrap(err, "writing identity")
			}))

	return cmd
}

func resolveShowOptions(ctx context.Context, cc *cli.Command) (*ShowOptions, error) {
	logging, err := LoggingSettings(cc)
	if err != nil {
		return nil, err
	}

	return &ShowOptions{
		Format:  cc.String("format"),
		Field:   cc.String("field"),
		Color:   !cc.Bool("noColor") && os.Getenv(global.EnvVarNoColor) == "" && isatty.IsTerminal(os.Stdout.Fd()),
		Logging: logging,
		Output:  os.Stdout,
	}, nil
}

func validateFormat(in string) error {
	if in == formatText || util.GetMarshaler(in) != nil {
		return nil
	}
	return ers.Wrapf(ErrUnsupportedFormat, "%q", in)
}

// Render encodes the identity according to the options; a field
// selection takes precedence over the format.
func Render(id procinfo.Identity, opts *ShowOptions) ([]byte, error) {
	if opts.Field != "" {
		val, err := fieldValue(id, opts.Field)
		if err != nil {
			return nil, err
		}
		return []byte(val + "\n"), nil
	}

	format := util.Default(opts.Format, formatText)
	switch format {
	case formatText:
		return renderText(id), nil
	case util.FormatJSON:
		if opts.Color {
			format = util.FormatJSONColor
		}
	}

	marshal := util.GetMarshaler(format)
	if marshal == nil {
		return nil, ers.Wrapf(ErrUnsupportedFormat, "%q", opts.Format)
	}

	out, err := marshal(id)
	if err != nil {
		return nil, ers.Wrapf(err, "encoding identity as %s", format)
	}

	if format != util.FormatBSON {
		out = append(bytes.TrimRight(out, "\n"), '\n')
	}

	return out, nil
}

func renderText(id procinfo.Identity) []byte {
	buf := &bytes.Buffer{}
	table := tabby.NewCustom(tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0))
	table.AddLine("pid:", id.PID)
	table.AddLine("hostname:", id.Hostname)
	table.AddLine("short_hostname:", id.ShortHostname)
	table.AddLine("program_name:", id.ProgramName)
	table.Print()
	return buf.Bytes()
}

func fieldValue(id procinfo.Identity, field string) (string, error) {
	switch field {
	case "pid":
		return strconv.Itoa(id.PID), nil
	case "hostname":
		return id.Hostname, nil
	case "short_hostname":
		return id.ShortHostname, nil
	case "program_name":
		return id.ProgramName, nil
	default:
		return "", ers.Wrapf(ErrUnknownField, "%q", field)
	}
}
