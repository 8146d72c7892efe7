package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command"
	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command/fill"
	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command/template"
)

func main() {
	app := command.NewApp(template.Command, fill.Command)

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
