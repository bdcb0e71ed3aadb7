package result

import (
	"fmt"
	"os"
	"strings"

	"cpjudge/internal/model"
)

// Comparison 对比结论
type Comparison struct {
	Verdict        model.Verdict
	WhitespaceOnly bool   // 仅因行首尾空白不同而通过（需要向用户提示）
	Output         string // 程序输出原文
	Answer         string // 期望答案原文
}

// Evaluate 对比程序输出和期望答案，只在零退出码且未超时的运行后调用
// 两级规则：
//  1. 原文逐字节一致（含所有空白和末尾换行）⇒ AC
//  2. 严格按换行拆分、每行独立去除首尾空白后行数相同且逐行一致 ⇒ AC，附空白提示
//
// 两级都不满足 ⇒ WA。任一文件缺失沿用 RTE（经典判题结果集的约定，见 DESIGN.md）。
func Evaluate(outputPath, answerPath string) (*Comparison, error) {
	output, ok, err := readArtifact(outputPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Comparison{Verdict: model.VerdictRTE}, nil
	}

	answer, ok, err := readArtifact(answerPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Comparison{Verdict: model.VerdictRTE}, nil
	}

	cmp := &Comparison{Output: output, Answer: answer}
	switch {
	case output == answer:
		cmp.Verdict = model.VerdictAC
	case equalTrimmed(output, answer):
		cmp.Verdict = model.VerdictAC
		cmp.WhitespaceOnly = true
	default:
		cmp.Verdict = model.VerdictWA
	}
	return cmp, nil
}

// readArtifact 读产物文件，文件不存在时 ok 为 false
func readArtifact(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("读取对比文件失败: %w", err)
	}
	return string(data), true, nil
}

// equalTrimmed 行数相同且每行独立去除首尾空白后逐行一致
// 拆分不做任何归一化：末尾换行也产生一个（可被去空白抵消的）空行，
// 因此一侧缺末尾换行会因行数不同直接判错
func equalTrimmed(output, answer string) bool {
	outLines := strings.Split(output, "\n")
	ansLines := strings.Split(answer, "\n")
	if len(outLines) != len(ansLines) {
		return false
	}
	for i := range outLines {
		if strings.TrimSpace(outLines[i]) != strings.TrimSpace(ansLines[i]) {
			return false
		}
	}
	return true
}
