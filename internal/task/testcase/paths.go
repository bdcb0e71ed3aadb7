package testcase

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"cpjudge/internal/constants"
	"cpjudge/internal/model"
)

// Stem 去掉扩展名后的解答文件路径，三个产物文件都由它派生
func Stem(solution string) string {
	return strings.TrimSuffix(solution, filepath.Ext(solution))
}

// InputPath 测试点输入文件路径：stem.in{id}
func InputPath(solution string, id int) string {
	return fmt.Sprintf("%s%s%d", Stem(solution), constants.InputExt, id)
}

// AnswerPath 期望答案文件路径：stem.ans{id}
func AnswerPath(solution string, id int) string {
	return fmt.Sprintf("%s%s%d", Stem(solution), constants.AnswerExt, id)
}

// OutputPath 程序输出文件路径：stem.out{id}，每次正常运行后被重写
func OutputPath(solution string, id int) string {
	return fmt.Sprintf("%s%s%d", Stem(solution), constants.OutputExt, id)
}

// For 组装一个测试点的三个产物路径
func For(solution string, id int) model.TestCase {
	return model.TestCase{
		ID:         id,
		InputPath:  InputPath(solution, id),
		OutputPath: OutputPath(solution, id),
		AnswerPath: AnswerPath(solution, id),
	}
}

// ListIDs 枚举解答已有的测试点编号
// 扫描解答所在目录里形如 stem.in{数字} 的文件名，按编号升序返回；
// 升序是这里的契约，不依赖文件系统的枚举顺序
func ListIDs(solution string) ([]int, error) {
	dir := filepath.Dir(solution)
	prefix := filepath.Base(Stem(solution)) + constants.InputExt

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败: %w", err)
	}

	var ids []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		suffix := name[len(prefix):]
		if !isDigits(suffix) {
			continue
		}
		id, err := strconv.Atoi(suffix)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}

	sort.Ints(ids)
	return ids, nil
}

// NextID 下一个可用的测试点编号：已有最大编号加一，没有测试点时为 1
func NextID(solution string) (int, error) {
	ids, err := ListIDs(solution)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 1, nil
	}
	return ids[len(ids)-1] + 1, nil
}

// isDigits 是否全部由数字组成（非空）
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
