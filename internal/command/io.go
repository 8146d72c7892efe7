package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// StdStream 表示标准输入或标准输出的路径。
const StdStream = "-"

// ResolvePath 把相对路径拼接到 baseDir；绝对路径、空 baseDir 与 "-" 保持不变。
//
// 只计算路径，不修改进程的工作目录。
func ResolvePath(baseDir, path string) string {
	if path == StdStream || baseDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(baseDir, path)
}

// ReadSource 读取 path 的全部内容，path 为 "-" 时读取 stdin。
func ReadSource(stdin io.Reader, baseDir, path string) (string, error) {
	if path == StdStream {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	resolved := ResolvePath(baseDir, path)
	data, err := os.ReadFile(resolved) //nolint:gosec // path is from config
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	slog.Debug("Read source", "path", resolved, "bytes", len(data))

	return string(data), nil
}

// WriteSink 把 content 写入 path，必要时创建父目录；path 为 "-" 时写入 stdout。
func WriteSink(stdout io.Writer, baseDir, path, content string) error {
	if path == StdStream {
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}

		return nil
	}

	resolved := ResolvePath(baseDir, path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(resolved, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Debug("Wrote output", "path", resolved, "bytes", len(content))

	return nil
}
