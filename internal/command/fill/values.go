package fill

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	yamlv3 "go.yaml.in/yaml/v3"
)

// valuesDoc 位移文件的对象形式。
type valuesDoc struct {
	Values []int `json:"values" toml:"values" yaml:"values"`
}

// ParseValues 解析位移文件：整数列表，或含 values 键的对象 (TOML 只支持后者)。
//
// 按扩展名选择 JSON、TOML 或 YAML (默认)。
func ParseValues(path string, data []byte) ([]int, error) {
	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".toml":
		unmarshal = toml.Unmarshal
	default:
		unmarshal = yamlv3.Unmarshal
	}

	var list []int
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc valuesDoc
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse values file %s: %w", path, err)
	}

	return doc.Values, nil
}

// parseArgs 把位置参数解析为整数。
func parseArgs(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("invalid displacement %q: %w", arg, err)
		}
		values = append(values, n)
	}

	return values, nil
}
