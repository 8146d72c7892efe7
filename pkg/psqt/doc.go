// Package psqt 将 C 风格的棋子位置表 (piece-square table) 声明整理为占位符模板。
//
// 输入是一段包含数组声明的源码片段，例如：
//
//	int pawn_table[64] = { 0, 0, 0, 5+5, ... };
//
// [Format] 把数组内的每个元素化简为整数，追加占位符，并按每行 8 个、
// 每表 64 个重新排版；数组外的文本原样透传。
// [FillDisplacements] 按顺序把一组整数填回占位符。
//
// # 语义说明
//
//  1. 输入按空格或逗号切分为 token，相邻分隔符产生空 token 并原样保留
//  2. 方括号数量相等且非零的 token 视为数组声明，进入数组模式
//  3. 数组模式下，去掉空格与正负号后全为数字的 token 视为数值表达式
//  4. 含 "}" 的 token 结束数组模式并重置计数
//  5. 表达式仅支持加法，其他运算符返回 [ErrUnsupportedOperator]
//
// # 快速开始
//
//	tmpl, err := psqt.Format(src)
//	if err != nil {
//	    return err
//	}
//	filled := psqt.FillDisplacements(tmpl, psqt.DefaultPlaceholder, displacements)
//
// 需要其他行宽或表长时使用 [NewFormatter]：
//
//	f := psqt.NewFormatter(psqt.WithRowWidth(4), psqt.WithTableSize(16))
//	tmpl, err := f.Format(src)
package psqt
