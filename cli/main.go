package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/satishbabariya/prisma-class-validator-go/cli/commands"
	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/ui"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, os.Args[1:]); err != nil {
		ui.PrintError("%v", err)
		ui.PrintHints(errors.GetAllHints(err))
		stop()
		os.Exit(1)
	}
}
