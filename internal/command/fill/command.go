// Package fill 提供 fill 子命令：把位移序列填入模板占位符。
package fill

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command"
)

// Command 位移填充命令
var Command = NewCommand()

// NewCommand 创建位移填充命令，每次调用返回独立的 flag 状态。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "fill",
		Usage:     "按顺序将位移填入模板占位符",
		ArgsUsage: "[value...]",
		Before:    command.Before,
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "fill-input",
				Aliases: []string{"i"},
				Value:   command.Defaults.Fill.Input,
				Usage:   "模板路径，- 表示标准输入",
			},
			&cli.StringFlag{
				Name:    "fill-output",
				Aliases: []string{"o"},
				Value:   command.Defaults.Fill.Output,
				Usage:   "输出路径，- 表示标准输出",
			},
			&cli.StringFlag{
				Name:  "fill-placeholder",
				Value: command.Defaults.Fill.Placeholder,
				Usage: "占位符",
			},
			&cli.IntSliceFlag{
				Name:  "fill-values",
				Usage: "位移序列，可重复或以逗号分隔",
			},
			&cli.StringFlag{
				Name:    "fill-values-file",
				Aliases: []string{"f"},
				Value:   command.Defaults.Fill.ValuesFile,
				Usage:   "位移序列文件 (YAML/JSON/TOML)",
			},
		},
	}
}
