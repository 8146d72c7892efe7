package psqt_test

import (
	"strconv"
	"strings"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

// table 生成 "name[size]={ 1 2 ... size }"，元素之间只用空格分隔。
func table(name string, size int) string {
	nums := make([]string, size)
	for i := range size {
		nums[i] = strconv.Itoa(i + 1)
	}

	return name + "[" + strconv.Itoa(size) + "]={ " + strings.Join(nums, " ") + " }"
}
