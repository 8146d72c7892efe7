package psqt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformedExpression 表达式中存在无法解析为整数的项。
	ErrMalformedExpression = errors.New("psqt: malformed expression")

	// ErrUnsupportedOperator 表达式使用了加法以外的运算符。
	ErrUnsupportedOperator = errors.New("psqt: unsupported operator")
)

// Evaluate 计算仅由整数与 "+" 组成的表达式。
//
// 在第一个 "+" 处切分，两侧去除空白后递归求值并求和；
// 没有 "+" 时把去除空白后的文本按十进制整数解析。
// 项或和超出 int 范围时返回 [ErrMalformedExpression]，不会回绕。
//
//	Evaluate("10 + 5")   // 15
//	Evaluate(" -3+4+1 ") // 2
//	Evaluate("4 - 2")    // ErrUnsupportedOperator
func Evaluate(expr string) (int, error) {
	left, right, found := strings.Cut(expr, "+")
	if !found {
		return parseTerm(expr)
	}

	l, err := Evaluate(strings.TrimSpace(left))
	if err != nil {
		return 0, err
	}
	r, err := Evaluate(strings.TrimSpace(right))
	if err != nil {
		return 0, err
	}

	if (r > 0 && l > math.MaxInt-r) || (r < 0 && l < math.MinInt-r) {
		return 0, fmt.Errorf("%w: %q: sum out of range", ErrMalformedExpression, expr)
	}

	return l + r, nil
}

func parseTerm(term string) (int, error) {
	term = strings.TrimSpace(term)
	n, err := strconv.Atoi(term)
	if err == nil {
		return n, nil
	}

	if hasOperator(term) {
		return 0, fmt.Errorf("%w: %w: %q", ErrMalformedExpression, ErrUnsupportedOperator, term)
	}

	return 0, fmt.Errorf("%w: %q: %w", ErrMalformedExpression, term, err)
}

// hasOperator 判断项中是否出现符号位之外的运算符。
func hasOperator(term string) bool {
	if len(term) < 2 {
		return false
	}

	return strings.ContainsAny(term[1:], "-*/%()")
}
