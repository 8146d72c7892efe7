package command

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/config"
)

// Version 构建时通过 -ldflags "-X" 注入。
var Version = "dev"

// NewApp 创建根命令，子命令由调用方传入。
func NewApp(commands ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     config.AppName,
		Usage:    "位置表模板生成与位移填充工具",
		Version:  Version,
		Flags:    GlobalFlags(),
		Commands: commands,
	}
}
