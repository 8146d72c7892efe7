package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command"
	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command/fill"
	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command/template"
)

func main() {
	app := command.NewApp(template.Command, fill.Command)

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("应用程序运行失败", "error", err)
		os.Exit(1)
	}
}
