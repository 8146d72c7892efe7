package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/pkg/templexp"
)

// AppName 应用名称，用于生成默认配置路径。
const AppName = "psqtfmt"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "PSQTFMT_"

// ConfigFlag 指定配置文件路径的 CLI flag 名称。
const ConfigFlag = "config"

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
//  1. ./.psqtfmt.yaml - 当前目录应用配置
//  2. ~/.psqtfmt.yaml - 用户主目录配置
//  3. /etc/psqtfmt/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths() []string {
	paths := []string{"." + AppName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+AppName+".yaml"))
	}

	return append(paths, "/etc/"+AppName+"/config.yaml", "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并：默认值 → 配置文件 → 环境变量 → CLI flags。
//
// cmd 设置了 --config 时只读取该文件，文件不存在视为错误；
// 否则按 paths 查找 (为空时使用 [DefaultPaths])，命中首个文件即停止。
// cmd 可以为 nil。
func Load(cmd *cli.Command, paths ...string) (*Config, error) {
	configMap, err := toMap(DefaultConfig())
	if err != nil {
		return nil, err
	}

	explicit := ""
	if cmd != nil {
		explicit = cmd.String(ConfigFlag)
	}

	fileMap, err := loadFile(explicit, paths)
	if err != nil {
		return nil, err
	}
	mergeMaps(configMap, fileMap)

	fields := collectFields(reflect.TypeFor[Config](), "")
	for _, f := range fields {
		if val, ok := os.LookupEnv(f.envName()); ok && val != "" {
			setByPath(configMap, f.key, val)
			slog.Debug("Loaded env binding", "env", f.envName(), "path", f.key)
		}
	}

	if cmd != nil {
		for _, f := range fields {
			f.applyFlag(cmd, configMap)
		}
	}

	var cfg Config
	if err := decode(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func loadFile(explicit string, paths []string) (map[string]any, error) {
	if explicit != "" {
		content, err := os.ReadFile(explicit) //nolint:gosec // path is from CLI
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		return parseFile(explicit, content)
	}

	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		return parseFile(path, content)
	}

	slog.Debug("No config file found, using defaults")

	return map[string]any{}, nil
}

func parseFile(path string, content []byte) (map[string]any, error) {
	expanded, err := templexp.ExpandTemplate(string(content))
	if err != nil {
		return nil, fmt.Errorf("expand template in %s: %w", path, err)
	}

	fileMap, err := ParseBytes(path, []byte(expanded))
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	slog.Debug("Loaded config from file", "path", path)

	return fileMap, nil
}

// ParseBytes 按扩展名解析 JSON、TOML 或 YAML (默认)，根节点必须是对象。
func ParseBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(content, &raw)
	case ".toml":
		table := map[string]any{}
		err = toml.Unmarshal(content, &table)
		raw = table
	default:
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalizeMapKeys(raw).(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

// field 配置叶子字段。
type field struct {
	key string // 以 json tag 拼接的完整路径，如 template.row-width
	typ reflect.Type
}

// envName 生成环境变量名：template.row-width → PSQTFMT_TEMPLATE_ROW_WIDTH。
func (f field) envName() string {
	return EnvPrefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(f.key))
}

// flagName 生成 CLI flag 名：template.row-width → template-row-width。
func (f field) flagName() string {
	return strings.ReplaceAll(f.key, ".", "-")
}

func (f field) applyFlag(cmd *cli.Command, configMap map[string]any) {
	name := f.flagName()
	if !cmd.IsSet(name) {
		return
	}

	switch {
	case f.typ.Kind() == reflect.String:
		setByPath(configMap, f.key, cmd.String(name))
	case f.typ.Kind() == reflect.Int:
		setByPath(configMap, f.key, cmd.Int(name))
	case f.typ.Kind() == reflect.Slice && f.typ.Elem().Kind() == reflect.Int:
		setByPath(configMap, f.key, cmd.IntSlice(name))
	default:
		return
	}
	slog.Debug("Loaded CLI flag", "flag", name, "path", f.key)
}

func collectFields(typ reflect.Type, prefix string) []field {
	var fields []field
	for i := range typ.NumField() {
		sf := typ.Field(i)
		key, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if key == "" || key == "-" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if sf.Type.Kind() == reflect.Struct {
			fields = append(fields, collectFields(sf.Type, key)...)

			continue
		}
		fields = append(fields, field{key: key, typ: sf.Type})
	}

	return fields
}

func toMap(cfg Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalizeMapKeys(value)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)

				continue
			}
		}

		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func decode(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncKind(stringToSliceHook),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}

// stringToSliceHook 把逗号分隔的字符串 (来自环境变量) 拆为切片，元素类型交给弱类型解码。
func stringToSliceHook(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.String || to != reflect.Slice {
		return data, nil
	}

	text := strings.TrimSpace(reflect.ValueOf(data).String())
	if text == "" {
		return []string{}, nil
	}
	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts, nil
}
