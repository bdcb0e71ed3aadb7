package result

import (
	"fmt"
	"io"
	"strings"

	"cpjudge/internal/constants"

	"github.com/fatih/color"
)

// RenderDiff 渲染两列对照表：左列程序输出，右列期望答案
// 逐行按位置对比（第 i 行只和第 i 行比），行尾标记该行一致或不一致；
// 刻意不做最小编辑距离对齐，行错位时后面的行会整体标为不一致
func RenderDiff(w io.Writer, output, answer string, termWidth int) {
	outLines := splitLines(output)
	ansLines := splitLines(answer)

	width := columnWidth(outLines, termWidth)
	rows := len(outLines)
	if len(ansLines) > rows {
		rows = len(ansLines)
	}

	fmt.Fprintf(w, "%-*s  %-*s\n", width, "程序输出", width, "期望答案")
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(outLines) {
			left = outLines[i]
		}
		if i < len(ansLines) {
			right = ansLines[i]
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", width, clip(left, width), width, clip(right, width), rowMark(left, right))
	}
}

// clip 超过列宽的行截断显示，行标记仍按完整内容比较
func clip(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s
}

// splitLines 展示用拆分，末尾换行不算多出一个空行
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// columnWidth 列宽取输出最长行的长度，下限 16，上限 终端宽度-8
func columnWidth(outLines []string, termWidth int) int {
	width := 0
	for _, line := range outLines {
		if len(line) > width {
			width = len(line)
		}
	}
	if max := termWidth - constants.DiffMarginWidth; width > max {
		width = max
	}
	// 下限优先：终端再窄也保证 16 列
	if width < constants.DiffMinColumnWidth {
		width = constants.DiffMinColumnWidth
	}
	return width
}

// rowMark 行标记：去除首尾空白后按位置比较
func rowMark(left, right string) string {
	if strings.TrimSpace(left) == strings.TrimSpace(right) {
		return color.New(color.FgGreen).Sprint("✔")
	}
	return color.New(color.FgRed).Sprint("✘")
}
