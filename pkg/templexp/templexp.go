package templexp

import (
	"fmt"
	"os"
	"strings"
)

// LookupFunc 按名称查找变量，返回值与是否已设置。
type LookupFunc func(name string) (string, bool)

// Expander 执行一次或多次展开；":=" 写入的值在同一个 Expander 内可见。
type Expander struct {
	lookup   LookupFunc
	assigned map[string]string
}

// New 创建 Expander，lookup 为 nil 时使用 [os.LookupEnv]。
func New(lookup LookupFunc) *Expander {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	return &Expander{lookup: lookup, assigned: map[string]string{}}
}

// ExpandTemplate 使用当前环境变量展开 text。
//
// 仅在必填校验 (${VAR?msg}) 失败时返回 error。
func ExpandTemplate(text string) (string, error) {
	return New(nil).Expand(text)
}

// Expand 展开 text 中的 ${...} 引用。
func (e *Expander) Expand(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for rest := text; rest != ""; {
		i := strings.IndexByte(rest, '$')
		if i < 0 {
			buf.WriteString(rest)

			break
		}
		buf.WriteString(rest[:i])
		rest = rest[i:]

		switch {
		case strings.HasPrefix(rest, "$$"):
			buf.WriteByte('$')
			rest = rest[2:]
		case strings.HasPrefix(rest, "${"):
			end := closingBrace(rest, 2)
			if end < 0 {
				buf.WriteString("${")
				rest = rest[2:]

				continue
			}
			val, ok, err := e.expression(rest[2:end])
			if err != nil {
				return "", err
			}
			if ok {
				buf.WriteString(val)
			} else {
				buf.WriteString(rest[:end+1])
			}
			rest = rest[end+1:]
		default:
			buf.WriteByte('$')
			rest = rest[1:]
		}
	}

	return buf.String(), nil
}

func (e *Expander) get(name string) (string, bool) {
	if val, ok := e.assigned[name]; ok {
		return val, true
	}

	return e.lookup(name)
}

// expression 展开 "${" 与 "}" 之间的内容；ok 为 false 表示无法识别。
func (e *Expander) expression(expr string) (string, bool, error) {
	name, op, word, ok := splitExpression(expr)
	if !ok {
		return "", false, nil
	}

	val, set := e.get(name)
	colon := strings.HasPrefix(op, ":")
	// 带冒号的运算符把空值视为未设置
	present := set && (!colon || val != "")

	switch strings.TrimPrefix(op, ":") {
	case "":
		return val, true, nil
	case "-":
		if present {
			return val, true, nil
		}

		return e.word(word)
	case "+":
		if !present {
			return "", true, nil
		}

		return e.word(word)
	case "?":
		if present {
			return val, true, nil
		}
		if word == "" {
			return "", false, fmt.Errorf("templexp: %s: parameter null or not set", name)
		}

		return "", false, fmt.Errorf("templexp: %s: %s", name, word)
	case "=":
		if present {
			return val, true, nil
		}
		expanded, _, err := e.word(word)
		if err != nil {
			return "", false, err
		}
		e.assigned[name] = expanded

		return expanded, true, nil
	}

	return "", false, nil
}

func (e *Expander) word(word string) (string, bool, error) {
	expanded, err := e.Expand(word)
	if err != nil {
		return "", false, err
	}

	return expanded, true, nil
}

// splitExpression 拆分 "NAME", "NAME:-word", "NAME-word" 等形式。
func splitExpression(expr string) (name, op, word string, ok bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return "", "", "", false
	}

	i := 1
	for i < len(expr) && (isNameStart(expr[i]) || isDigit(expr[i])) {
		i++
	}
	name, rest := expr[:i], expr[i:]
	if rest == "" {
		return name, "", "", true
	}

	n := 1
	if rest[0] == ':' {
		n = 2
	}
	if len(rest) < n || !strings.ContainsRune("-+?=", rune(rest[n-1])) {
		return "", "", "", false
	}

	return name, rest[:n], rest[n:], true
}

// closingBrace 返回与 text[start-2:] 处 "${" 匹配的 "}" 位置，未找到返回 -1。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

func isNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
