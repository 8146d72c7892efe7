package fill

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command"
	"github.com/lwmacct/251207-go-pkg-psqtfmt/pkg/psqt"
)

var errStdinTwice = errors.New("values file and template input cannot both be stdin")

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.ConfigFrom(ctx, cmd)
	if err != nil {
		return err
	}
	fc := cfg.Fill
	if fc.ValuesFile == command.StdStream && fc.Input == command.StdStream {
		return errStdinTwice
	}
	stdin := cmd.Root().Reader

	// 位移顺序：文件 → 配置/flags → 位置参数
	var values []int
	if fc.ValuesFile != "" {
		data, err := command.ReadSource(stdin, cfg.BaseDir, fc.ValuesFile)
		if err != nil {
			return err
		}
		fileValues, err := ParseValues(fc.ValuesFile, []byte(data))
		if err != nil {
			return err
		}
		values = append(values, fileValues...)
	}
	values = append(values, fc.Values...)

	argValues, err := parseArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}
	values = append(values, argValues...)

	tmpl, err := command.ReadSource(stdin, cfg.BaseDir, fc.Input)
	if err != nil {
		return err
	}

	placeholders := psqt.CountPlaceholders(tmpl, fc.Placeholder)
	out := psqt.FillDisplacements(tmpl, fc.Placeholder, values)
	if err := command.WriteSink(cmd.Root().Writer, cfg.BaseDir, fc.Output, out); err != nil {
		return err
	}

	filled := min(placeholders, len(values))
	slog.Info("Displacements filled",
		"input", fc.Input,
		"output", fc.Output,
		"filled", filled,
		"remaining", placeholders-filled,
		"unused", len(values)-filled,
	)

	return nil
}
