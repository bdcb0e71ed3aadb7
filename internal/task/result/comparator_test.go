package result

import (
	"os"
	"path/filepath"
	"testing"

	"cpjudge/internal/model"
)

func writePair(t *testing.T, output, answer string) (string, string) {
	t.Helper()
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "a.out1")
	answerPath := filepath.Join(tempDir, "a.ans1")
	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		t.Fatalf("Failed to write output: %v", err)
	}
	if err := os.WriteFile(answerPath, []byte(answer), 0644); err != nil {
		t.Fatalf("Failed to write answer: %v", err)
	}
	return outputPath, answerPath
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name           string
		output         string
		answer         string
		wantVerdict    model.Verdict
		wantWhitespace bool
	}{
		{
			name:        "逐字节一致",
			output:      "5\n",
			answer:      "5\n",
			wantVerdict: model.VerdictAC,
		},
		{
			name:           "答案行尾多空格走第二级规则",
			output:         "5\n",
			answer:         "5 \n",
			wantVerdict:    model.VerdictAC,
			wantWhitespace: true,
		},
		{
			name:           "行首空白也走第二级规则",
			output:         "  hello\nworld\n",
			answer:         "hello\nworld\n",
			wantVerdict:    model.VerdictAC,
			wantWhitespace: true,
		},
		{
			name:        "内容不同",
			output:      "5\n",
			answer:      "6\n",
			wantVerdict: model.VerdictWA,
		},
		{
			name:        "行数不同",
			output:      "1\n2\n",
			answer:      "1\n",
			wantVerdict: model.VerdictWA,
		},
		{
			name:        "行内空白不同判错",
			output:      "1  2\n",
			answer:      "1 2\n",
			wantVerdict: model.VerdictWA,
		},
		{
			name:        "缺末尾换行判错",
			output:      "3",
			answer:      "3\n",
			wantVerdict: model.VerdictWA,
		},
		{
			name:        "末尾多一个空行判错",
			output:      "3\n\n",
			answer:      "3\n",
			wantVerdict: model.VerdictWA,
		},
		{
			name:        "都为空",
			output:      "",
			answer:      "",
			wantVerdict: model.VerdictAC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath, answerPath := writePair(t, tt.output, tt.answer)
			cmp, err := Evaluate(outputPath, answerPath)
			if err != nil {
				t.Fatalf("Evaluate error: %v", err)
			}
			if cmp.Verdict != tt.wantVerdict {
				t.Errorf("verdict = %s, want %s", cmp.Verdict, tt.wantVerdict)
			}
			if cmp.WhitespaceOnly != tt.wantWhitespace {
				t.Errorf("whitespaceOnly = %v, want %v", cmp.WhitespaceOnly, tt.wantWhitespace)
			}
		})
	}
}

func TestEvaluate_MissingArtifact(t *testing.T) {
	tempDir := t.TempDir()
	existing := filepath.Join(tempDir, "a.ans1")
	if err := os.WriteFile(existing, []byte("5\n"), 0644); err != nil {
		t.Fatalf("Failed to write answer: %v", err)
	}
	missing := filepath.Join(tempDir, "a.out1")

	// 任一文件缺失都沿用 RTE
	cmp, err := Evaluate(missing, existing)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if cmp.Verdict != model.VerdictRTE {
		t.Errorf("verdict = %s, want RTE when output missing", cmp.Verdict)
	}

	cmp, err = Evaluate(existing, missing)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if cmp.Verdict != model.VerdictRTE {
		t.Errorf("verdict = %s, want RTE when answer missing", cmp.Verdict)
	}
}

func TestEqualTrimmed(t *testing.T) {
	tests := []struct {
		name   string
		output string
		answer string
		want   bool
	}{
		{
			name:   "行尾空白抵消",
			output: "5 \n",
			answer: "5\n",
			want:   true,
		},
		{
			name:   "末尾换行不补齐",
			output: "5",
			answer: "5\n",
			want:   false,
		},
		{
			name:   "行内空白不抵消",
			output: "1  2\n",
			answer: "1 2\n",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := equalTrimmed(tt.output, tt.answer); got != tt.want {
				t.Errorf("equalTrimmed(%q, %q) = %v, want %v", tt.output, tt.answer, got, tt.want)
			}
		})
	}
}
