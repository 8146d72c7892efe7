package psqt

import (
	"strconv"
	"strings"
)

// FillDisplacements 按从左到右的顺序用 values 替换 text 中的 placeholder。
//
// 替换次数为占位符个数与 len(values) 中的较小者：
// 多余的占位符保留原样，多余的值被忽略。placeholder 为空时返回原文。
//
//	FillDisplacements("a%db%dc", "%d", []int{1, 2, 3}) // "a1b2c"
//	FillDisplacements("a%db%d", "%d", []int{5})        // "a5b%d"
func FillDisplacements(text, placeholder string, values []int) string {
	if placeholder == "" || len(values) == 0 {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))

	rest := text
	for _, v := range values {
		before, after, found := strings.Cut(rest, placeholder)
		if !found {
			break
		}
		buf.WriteString(before)
		buf.WriteString(strconv.Itoa(v))
		rest = after
	}
	buf.WriteString(rest)

	return buf.String()
}

// CountPlaceholders 返回 text 中 placeholder 的出现次数。
func CountPlaceholders(text, placeholder string) int {
	if placeholder == "" {
		return 0
	}

	return strings.Count(text, placeholder)
}
