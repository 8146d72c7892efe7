// Package command 提供 template 与 fill 子命令共用的配置、日志与读写功能。
package command

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/config"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// GlobalFlags 返回根命令上的全局 flags。
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    config.ConfigFlag,
			Aliases: []string{"c"},
			Usage:   "配置文件路径 (YAML/JSON/TOML)",
		},
		&cli.StringFlag{
			Name:  "base-dir",
			Value: Defaults.BaseDir,
			Usage: "相对路径的基准目录",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.LogLevel,
			Usage: "日志级别 (debug/info/warn/error)",
		},
	}
}
