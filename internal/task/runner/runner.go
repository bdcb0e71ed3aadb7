package runner

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"cpjudge/internal/constants"
	"cpjudge/internal/model"

	"go.uber.org/zap"
)

// Runner 本地子进程运行器
// 严格串行：一个测试点的进程结束（或被杀）之前不会开始下一个
type Runner struct {
	Grace time.Duration // 超时宽限期
}

// New 使用默认宽限期的运行器
func New() *Runner {
	return &Runner{Grace: constants.TimeLimitGrace}
}

// Run 同步运行解答程序
// 输入文件全部内容送入标准输入；墙钟超过 timeLimitMs+宽限期 后杀掉整个进程组，
// 超时后产生的输出一概不要；标准输出和标准错误无论退出状态都完整捕获。
// 仅在零退出码且未超时时，把标准输出写入 outputPath（覆盖旧内容）。
func (r *Runner) Run(command string, args []string, inputPath, outputPath string, timeLimitMs int) (*model.ExecutionResult, error) {
	input, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("读取输入文件失败: %w", err)
	}

	cmd := exec.Command(command, args...)
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// 独立进程组，超时时连同解答自己起的子进程一起杀掉
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("启动命令失败: %w", err)
	}

	deadline := time.Duration(timeLimitMs)*time.Millisecond + r.Grace
	start := time.Now()

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var waitErr error
	timedOut := false
	select {
	case waitErr = <-done:
	case <-time.After(deadline):
		timedOut = true
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		<-done
	}
	timeUsed := time.Since(start)

	res := &model.ExecutionResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		TimedOut: timedOut,
		TimeUsed: timeUsed,
	}

	switch {
	case timedOut:
		// 退出码在超时路径上没有意义
		res.ExitCode = -1
	case waitErr != nil:
		exitErr, ok := waitErr.(*exec.ExitError)
		if !ok {
			return nil, fmt.Errorf("等待命令结束失败: %w", waitErr)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	if !timedOut && res.ExitCode == 0 {
		if err := os.WriteFile(outputPath, []byte(res.Stdout), constants.ArtifactPerm); err != nil {
			return nil, fmt.Errorf("写入输出文件失败: %w", err)
		}
	}

	zap.L().Debug("运行结束",
		zap.String("command", command),
		zap.Int("exit_code", res.ExitCode),
		zap.Bool("timed_out", timedOut),
		zap.Duration("time_used", timeUsed),
	)
	return res, nil
}

// Debug 调试模式运行
// 进程的输入输出直接接到当前终端，不捕获、不限时，也不写任何产物文件
func (r *Runner) Debug(command string, args []string) error {
	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
