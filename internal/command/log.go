package command

import (
	"fmt"
	"io"
	"log/slog"
)

// SetupLogger 以 level 设置默认 slog 文本日志，输出到 w。
func SetupLogger(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))

	return nil
}
