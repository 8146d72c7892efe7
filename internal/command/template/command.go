// Package template 提供 template 子命令：把源码中的数组声明整理为占位符模板。
package template

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/command"
)

// Command 模板生成命令
var Command = NewCommand()

// NewCommand 创建模板生成命令，每次调用返回独立的 flag 状态。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   "template",
		Usage:  "将位置表声明整理为占位符模板",
		Before: command.Before,
		Action: action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "template-input",
				Aliases: []string{"i"},
				Value:   command.Defaults.Template.Input,
				Usage:   "源码片段路径，- 表示标准输入",
			},
			&cli.StringFlag{
				Name:    "template-output",
				Aliases: []string{"o"},
				Value:   command.Defaults.Template.Output,
				Usage:   "模板输出路径，- 表示标准输出",
			},
			&cli.StringFlag{
				Name:  "template-placeholder",
				Value: command.Defaults.Template.Placeholder,
				Usage: "占位符",
			},
			&cli.StringFlag{
				Name:  "template-operator",
				Value: command.Defaults.Template.Operator,
				Usage: "数值与占位符之间的连接符",
			},
			&cli.IntFlag{
				Name:  "template-row-width",
				Value: command.Defaults.Template.RowWidth,
				Usage: "每行元素个数",
			},
			&cli.IntFlag{
				Name:  "template-table-size",
				Value: command.Defaults.Template.TableSize,
				Usage: "每张表的元素个数",
			},
		},
	}
}
