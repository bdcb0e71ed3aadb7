package compiler

import (
	"bytes"
	"context"
	"os/exec"

	"cpjudge/internal/constants"
	"cpjudge/pkg/errors"

	"go.uber.org/zap"
)

// compileTimeout 编译超时，测试里会调小
var compileTimeout = constants.CompileTimeout

// Compile 执行语言配置里的编译命令，整批评测前最多一次
// 编译是批量评测的前置步骤，失败属于结构性错误；返回编译器的标准错误输出便于展示
func Compile(argv []string, dir string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New(errors.ErrCodeCommandNotFound, "编译命令未配置")
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return "", errors.Wrap(errors.ErrCodeCompilerNotFound, "编译器不存在: "+argv[0], err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), compileTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		zap.L().Warn("编译失败",
			zap.Strings("argv", argv),
			zap.Error(err),
		)
		return stderr.String(), errors.Wrap(errors.ErrCodeCompile, "编译失败", err)
	}

	zap.L().Debug("编译完成", zap.Strings("argv", argv))
	return "", nil
}
