package psqt

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultPlaceholder 默认占位符。
	DefaultPlaceholder = "%d"
	// DefaultOperator 数值与占位符之间的默认连接符，填充后仍是合法的 C 加法表达式。
	DefaultOperator = "+"
	// DefaultRowWidth 每行元素个数。
	DefaultRowWidth = 8
	// DefaultTableSize 每张表的元素个数。
	DefaultTableSize = 64
)

// Formatter 把数组声明整理为占位符模板。
//
// Formatter 不保存跨调用的状态，可被多个 goroutine 共享。
type Formatter struct {
	placeholder string
	operator    string
	rowWidth    int
	tableSize   int
}

// Option 格式化选项函数。
type Option func(*Formatter)

// WithPlaceholder 设置追加在每个元素后的占位符。
func WithPlaceholder(placeholder string) Option {
	return func(f *Formatter) {
		f.placeholder = placeholder
	}
}

// WithOperator 设置数值与占位符之间的连接符，空字符串表示直接拼接。
func WithOperator(operator string) Option {
	return func(f *Formatter) {
		f.operator = operator
	}
}

// WithRowWidth 设置每行元素个数，非正数使用 [DefaultRowWidth]。
func WithRowWidth(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.rowWidth = n
		}
	}
}

// WithTableSize 设置每张表的元素个数，非正数使用 [DefaultTableSize]。
//
// 第 n 个元素之后不再追加 ", "。
func WithTableSize(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.tableSize = n
		}
	}
}

// NewFormatter 创建 Formatter。
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		placeholder: DefaultPlaceholder,
		operator:    DefaultOperator,
		rowWidth:    DefaultRowWidth,
		tableSize:   DefaultTableSize,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Placeholder 返回当前占位符。
func (f *Formatter) Placeholder() string {
	return f.placeholder
}

// Format 使用默认选项格式化 src，见 [Formatter.Format]。
func Format(src string) (string, error) {
	return NewFormatter().Format(src)
}

// Format 对 src 做单遍扫描并生成模板。
//
// 数组外的 token 追加一个空格后原样输出。遇到数组声明后进入数组模式：
//   - 数值 token 经 [Evaluate] 化简，追加连接符与占位符；
//     不是表内最后一个元素时追加 ", "，序号是行宽的倍数时换行
//   - 含 "}" 的 token 退出数组模式，输出 "\t" 加 token
//   - 其他 token 追加一个空格后原样输出
//
// 表达式无法解析时返回空字符串与错误，不输出部分结果。
func (f *Formatter) Format(src string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(src) * 2)

	withinArray := false
	count := 0
	for _, tok := range Tokenize(src) {
		if !withinArray {
			if tok.Kind == KindDeclaration {
				withinArray = true
			}
			buf.WriteString(tok.Text)
			buf.WriteByte(' ')

			continue
		}

		switch {
		case tok.Kind == KindNumber:
			n, err := Evaluate(tok.Text)
			if err != nil {
				return "", fmt.Errorf("token %d: %w", tok.Index, err)
			}
			count++
			f.writeEntry(&buf, n, count)
		case strings.Contains(tok.Text, "}"):
			withinArray = false
			count = 0
			buf.WriteByte('\t')
			buf.WriteString(tok.Text)
		default:
			buf.WriteString(tok.Text)
			buf.WriteByte(' ')
		}
	}

	return buf.String(), nil
}

// writeEntry 输出第 count 个元素 (从 1 开始)。
func (f *Formatter) writeEntry(buf *strings.Builder, n, count int) {
	buf.WriteString(strconv.Itoa(n))
	buf.WriteString(f.operator)
	buf.WriteString(f.placeholder)
	if count != f.tableSize {
		buf.WriteString(", ")
	}
	if count%f.rowWidth == 0 {
		buf.WriteByte('\n')
	}
}
