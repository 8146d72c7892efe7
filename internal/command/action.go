package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/internal/config"
)

// Before 加载配置并初始化日志，结果存入 context 供子命令读取。
//
// 配置加载：默认值 → 配置文件 → 环境变量 → CLI flags。
func Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return ctx, err
	}
	if err := SetupLogger(cmd.Root().ErrWriter, cfg.LogLevel); err != nil {
		return ctx, err
	}

	return context.WithValue(ctx, configKey{}, cfg), nil
}

type configKey struct{}

// ConfigFrom 返回 Before 存入的配置；未经过 Before 时重新加载。
func ConfigFrom(ctx context.Context, cmd *cli.Command) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg, nil
	}

	return config.Load(cmd)
}
