package testcase

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"cpjudge/internal/constants"
	"cpjudge/pkg/errors"

	"go.uber.org/zap"
)

// Recorder 交互式录入一组新的测试数据
// 依次读入输入和期望答案两段文本，各自以单独一行结束标记（或流结束）终止；
// 用结束标记而不是 Ctrl-D，是因为同一个标准输入给不出两次 EOF
type Recorder struct {
	In  io.Reader
	Out io.Writer
}

// NewRecorder 使用当前终端的录入器
func NewRecorder() *Recorder {
	return &Recorder{In: os.Stdin, Out: os.Stdout}
}

// Record 录入一个测试点并写盘，返回分配的编号
// 编号固定为已有最大编号加一；写盘失败直接上抛，不做重试
func (r *Recorder) Record(solution string) (int, error) {
	id, err := NextID(solution)
	if err != nil {
		return 0, err
	}

	sc := bufio.NewScanner(r.In)
	sc.Buffer(make([]byte, 0, 64*1024), constants.MaxOutputSize)

	fmt.Fprintf(r.Out, "输入数据（单独一行 %s 结束）:\n", constants.RecordEndMark)
	input, err := readBlock(sc)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeRecordFailed, "读取输入数据失败", err)
	}

	fmt.Fprintf(r.Out, "期望答案（单独一行 %s 结束）:\n", constants.RecordEndMark)
	answer, err := readBlock(sc)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeRecordFailed, "读取期望答案失败", err)
	}

	if err := os.WriteFile(InputPath(solution, id), []byte(input), constants.ArtifactPerm); err != nil {
		return 0, errors.Wrap(errors.ErrCodeRecordFailed, "写入输入文件失败", err)
	}
	if err := os.WriteFile(AnswerPath(solution, id), []byte(answer), constants.ArtifactPerm); err != nil {
		return 0, errors.Wrap(errors.ErrCodeRecordFailed, "写入答案文件失败", err)
	}

	zap.L().Info("录入测试点",
		zap.String("solution", solution),
		zap.Int("id", id),
		zap.Int("input_bytes", len(input)),
		zap.Int("answer_bytes", len(answer)),
	)
	return id, nil
}

// readBlock 逐行读到结束标记或流结束，保留行内内容并补回换行
func readBlock(sc *bufio.Scanner) (string, error) {
	var b strings.Builder
	for sc.Scan() {
		line := sc.Text()
		if line == constants.RecordEndMark {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), sc.Err()
}
