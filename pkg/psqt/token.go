package psqt

import (
	"fmt"
	"strings"
)

// Kind token 类别。
type Kind int

const (
	// KindOther 无需特殊处理的文本，包括空 token。
	KindOther Kind = iota
	// KindDeclaration 数组声明，如 "table[64]"。
	KindDeclaration
	// KindNumber 数值或加法表达式，如 "-5"、"10+5"。
	KindNumber
	// KindCloseBrace 含 "}" 的 token，结束数组字面量。
	KindCloseBrace
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "Other"
	case KindDeclaration:
		return "Declaration"
	case KindNumber:
		return "Number"
	case KindCloseBrace:
		return "CloseBrace"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token 输入中的一个片段。
type Token struct {
	Text  string
	Kind  Kind
	Index int // 在 token 流中的位置
}

// Tokenize 按空格或逗号切分文本并为每个 token 分类。
//
// 相邻分隔符产生空 token，与 strings.Split 的行为一致。
// 同一个 token 可能同时满足多个类别，此处按 Number、Declaration、CloseBrace
// 的顺序取第一个；是否生效取决于 [Formatter] 当前所处的状态。
func Tokenize(text string) []Token {
	fields := splitFields(text)
	tokens := make([]Token, len(fields))
	for i, field := range fields {
		tokens[i] = Token{Text: field, Kind: classify(field), Index: i}
	}

	return tokens
}

func splitFields(text string) []string {
	fields := make([]string, 0, strings.Count(text, " ")+strings.Count(text, ",")+1)
	start := 0
	for i := range len(text) {
		if text[i] == ' ' || text[i] == ',' {
			fields = append(fields, text[start:i])
			start = i + 1
		}
	}

	return append(fields, text[start:])
}

func classify(tok string) Kind {
	switch {
	case isNumeric(tok):
		return KindNumber
	case IsArrayDecl(tok):
		return KindDeclaration
	case strings.Contains(tok, "}"):
		return KindCloseBrace
	}

	return KindOther
}

// IsArrayDecl 判断 token 是否为数组声明：至少一个 "["，且 "[" 与 "]" 数量相等。
//
// 只比较数量，不检查嵌套顺序。
func IsArrayDecl(tok string) bool {
	lb := strings.Count(tok, "[")

	return lb > 0 && lb == strings.Count(tok, "]")
}

// isNumeric 去掉空格与正负号后非空且全为 ASCII 数字。
func isNumeric(tok string) bool {
	digits := 0
	for i := range len(tok) {
		switch ch := tok[i]; {
		case ch == ' ' || ch == '-' || ch == '+':
		case ch >= '0' && ch <= '9':
			digits++
		default:
			return false
		}
	}

	return digits > 0
}
