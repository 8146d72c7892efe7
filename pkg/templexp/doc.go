// Package templexp 提供配置文件的 Shell 参数展开。
//
// 仅识别 ${...}，不解析 $VAR、$1 等裸引用，因此 "%d"、"$1" 之类的占位符原样保留。
//
// # 语义说明
//
//  1. ${VAR} / ${VAR:-w} / ${VAR-w} / ${VAR:+w} / ${VAR+w}
//  2. ${VAR:?msg} / ${VAR?msg} 在变量缺失时返回 error
//  3. ${VAR:=w} / ${VAR=w} 的赋值仅作用于当前展开过程
//  4. 支持嵌套展开，"$$" 表示字面量 "$"
//  5. 无法识别的表达式与未闭合的 "${" 保持原样
//
// # 快速开始
//
//	expanded, err := templexp.ExpandTemplate(`output: "${OUT_DIR:-build}/psqt.txt"`)
package templexp
