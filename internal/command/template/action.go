package template

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command"
	"github.com/lwmacct/251207-go-pkg-psqtfmt/pkg/psqt"
)

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.ConfigFrom(ctx, cmd)
	if err != nil {
		return err
	}
	tc := cfg.Template

	src, err := command.ReadSource(cmd.Root().Reader, cfg.BaseDir, tc.Input)
	if err != nil {
		return err
	}

	f := psqt.NewFormatter(
		psqt.WithPlaceholder(tc.Placeholder),
		psqt.WithOperator(tc.Operator),
		psqt.WithRowWidth(tc.RowWidth),
		psqt.WithTableSize(tc.TableSize),
	)
	out, err := f.Format(src)
	if err != nil {
		return fmt.Errorf("format %s: %w", tc.Input, err)
	}

	if err := command.WriteSink(cmd.Root().Writer, cfg.BaseDir, tc.Output, out); err != nil {
		return err
	}

	slog.Info("Template generated",
		"input", tc.Input,
		"output", tc.Output,
		"placeholders", psqt.CountPlaceholders(out, tc.Placeholder),
	)

	return nil
}
