// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 指定，或按 DefaultPaths 顺序查找
//  3. 环境变量 - 前缀 PSQTFMT_
//  4. CLI flags - 仅当用户显式设置时生效
package config

import "github.com/lwmacct/251207-go-pkg-psqtfmt/pkg/psqt"

// Config 应用配置。
type Config struct {
	LogLevel string         `json:"log-level" desc:"日志级别 (debug/info/warn/error)"`
	BaseDir  string         `json:"base-dir" desc:"相对路径的基准目录，空表示当前目录"`
	Template TemplateConfig `json:"template" desc:"模板生成配置"`
	Fill     FillConfig     `json:"fill" desc:"位移填充配置"`
}

// TemplateConfig 模板生成配置。
type TemplateConfig struct {
	Input       string `json:"input" desc:"源码片段路径，- 表示标准输入"`
	Output      string `json:"output" desc:"模板输出路径，- 表示标准输出"`
	Placeholder string `json:"placeholder" desc:"占位符"`
	Operator    string `json:"operator" desc:"数值与占位符之间的连接符"`
	RowWidth    int    `json:"row-width" desc:"每行元素个数"`
	TableSize   int    `json:"table-size" desc:"每张表的元素个数"`
}

// FillConfig 位移填充配置。
type FillConfig struct {
	Input       string `json:"input" desc:"模板路径，- 表示标准输入"`
	Output      string `json:"output" desc:"输出路径，- 表示标准输出"`
	Placeholder string `json:"placeholder" desc:"占位符"`
	Values      []int  `json:"values" desc:"位移序列"`
	ValuesFile  string `json:"values-file" desc:"位移序列文件 (YAML/JSON/TOML)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Template: TemplateConfig{
			Input:       "data/weights0.h",
			Output:      "psqt_template.txt",
			Placeholder: psqt.DefaultPlaceholder,
			Operator:    psqt.DefaultOperator,
			RowWidth:    psqt.DefaultRowWidth,
			TableSize:   psqt.DefaultTableSize,
		},
		Fill: FillConfig{
			Input:       "psqt_template.txt",
			Output:      "psqt_filled.txt",
			Placeholder: psqt.DefaultPlaceholder,
		},
	}
}
