package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/tychoish/cmdr"

	"github.com/tychoish/procinfo/global"
	"github.com/tychoish/procinfo/operations"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cmd := operations.Commander()
	cmd.SetAppOptions(cmdr.AppOptions{
		Name:    global.ApplicationName,
		Usage:   "report the identity of the running process",
		Version: global.Version,
	})

	cmdr.Main(ctx, cmd)
}
