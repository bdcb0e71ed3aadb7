package result

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// 测试断言纯文本，不要 ANSI 配色
	color.NoColor = true
}

func TestRenderDiff_RowCount(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		answer   string
		wantRows int
	}{
		{
			name:     "单行不同",
			output:   "5\n",
			answer:   "6\n",
			wantRows: 1,
		},
		{
			name:     "行数取两者较大值",
			output:   "1\n2\n3\n",
			answer:   "1\n",
			wantRows: 3,
		},
		{
			name:     "输出为空时行数取答案",
			output:   "",
			answer:   "1\n2\n",
			wantRows: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderDiff(&buf, tt.output, tt.answer, 80)

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			// 第一行是表头
			if got := len(lines) - 1; got != tt.wantRows {
				t.Errorf("diff rows = %d, want %d\n%s", got, tt.wantRows, buf.String())
			}
		})
	}
}

func TestRenderDiff_Marks(t *testing.T) {
	var buf bytes.Buffer
	RenderDiff(&buf, "1\n5\n3\n", "1\n6\n3\n", 80)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	wantMarks := []string{"✔", "✘", "✔"}
	for i, mark := range wantMarks {
		row := lines[i+1]
		if !strings.HasSuffix(row, mark) {
			t.Errorf("row %d = %q, want suffix %q", i, row, mark)
		}
	}
}

func TestRenderDiff_PositionalOnly(t *testing.T) {
	// 行错位时不做编辑距离对齐：插入一行后后面的行全部不一致
	var buf bytes.Buffer
	RenderDiff(&buf, "x\n1\n2\n", "1\n2\n", 80)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, row := range lines[1:] {
		if !strings.HasSuffix(row, "✘") {
			t.Errorf("row %d = %q, want differing mark", i, row)
		}
	}
}

func TestRenderDiff_ClipsLongLines(t *testing.T) {
	// 超过列宽上限的行截断显示，右列不随之漂移
	long := strings.Repeat("a", 200)
	var buf bytes.Buffer
	RenderDiff(&buf, long+"\n", "short\n", 80)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	row := lines[1]
	if strings.Contains(row, strings.Repeat("a", 73)) {
		t.Errorf("left column not clipped to width: %q", row)
	}
	if !strings.Contains(row, strings.Repeat("a", 72)) {
		t.Errorf("left column over-clipped: %q", row)
	}
	if !strings.Contains(row, "short") {
		t.Errorf("right column missing: %q", row)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "末尾换行不算空行",
			input: "5\n",
			want:  1,
		},
		{
			name:  "两行",
			input: "1\n2\n",
			want:  2,
		},
		{
			name:  "末尾空行要算",
			input: "1\n\n",
			want:  2,
		},
		{
			name:  "空串没有行",
			input: "",
			want:  0,
		},
		{
			name:  "没有末尾换行",
			input: "abc",
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(splitLines(tt.input)); got != tt.want {
				t.Errorf("splitLines(%q) has %d lines, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		name      string
		outLines  []string
		termWidth int
		want      int
	}{
		{
			name:      "短行用下限",
			outLines:  []string{"5"},
			termWidth: 80,
			want:      16,
		},
		{
			name:      "取最长行",
			outLines:  []string{"123", strings.Repeat("a", 30)},
			termWidth: 80,
			want:      30,
		},
		{
			name:      "上限是终端宽度减8",
			outLines:  []string{strings.Repeat("a", 200)},
			termWidth: 80,
			want:      72,
		},
		{
			name:      "终端太窄时保住下限",
			outLines:  []string{strings.Repeat("a", 50)},
			termWidth: 20,
			want:      16,
		},
		{
			name:      "没有输出行也有下限",
			outLines:  nil,
			termWidth: 80,
			want:      16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := columnWidth(tt.outLines, tt.termWidth); got != tt.want {
				t.Errorf("columnWidth = %d, want %d", got, tt.want)
			}
		})
	}
}
