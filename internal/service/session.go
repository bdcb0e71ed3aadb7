package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cpjudge/internal/model"
	"cpjudge/internal/task/compiler"
	"cpjudge/internal/task/directive"
	"cpjudge/internal/task/language"
	"cpjudge/internal/task/result"
	"cpjudge/internal/task/runner"
	"cpjudge/internal/task/testcase"
	"cpjudge/pkg/errors"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Session 一个解答文件的一轮评测
// 测试点之间严格串行，没有共享可变状态，AC 计数只在 RunAll 里累加
type Session struct {
	Solution  string
	Command   language.Command
	TimeLimit int // 毫秒

	runner *runner.Runner
	out    io.Writer
}

// NewSession 构建评测会话
// 解答文件必须存在、语言必须有命令配置——这两类问题作为带码错误返回，
// 是否终止进程由 cmd 入口决定，核心逻辑自己不退出
func NewSession(solution string, table language.Table) (*Session, error) {
	if _, err := os.Stat(solution); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSolutionNotFound, "解答文件不存在: "+solution, err)
	}

	lang := language.DetectByExtension(solution)
	if lang == language.LanguageUnknown {
		return nil, errors.New(errors.ErrCodeUnknownLanguage, "无法识别解答语言: "+solution)
	}

	cmd, err := table.Lookup(lang)
	if err != nil {
		return nil, err
	}

	return &Session{
		Solution:  solution,
		Command:   cmd,
		TimeLimit: directive.ExtractTimeLimitFromFile(solution, cmd.CommentMarker),
		runner:    runner.New(),
		out:       os.Stdout,
	}, nil
}

// RunOne 评测单个测试点并打印结论标签
// 每个测试点的结果都落成一个 Verdict，不会中断整批；compile 只在一批的
// 第一个测试点前有意义
func (s *Session) RunOne(id int, compile bool) (model.Verdict, error) {
	if compile {
		if err := s.compile(); err != nil {
			return "", err
		}
	}

	tc := testcase.For(s.Solution, id)
	argv := language.Expand(s.Command.Run, s.Solution)
	if len(argv) == 0 {
		return "", errors.New(errors.ErrCodeCommandNotFound, "运行命令未配置")
	}

	res, err := s.runner.Run(argv[0], argv[1:], tc.InputPath, tc.OutputPath, s.TimeLimit)
	if err != nil {
		// 运行前的失败（输入缺失、命令起不来）归为 RTE，让后面的测试点继续跑
		zap.L().Warn("测试点无法运行", zap.Int("id", id), zap.Error(err))
		s.printVerdict(id, model.VerdictRTE, 0)
		fmt.Fprintln(s.out, err)
		return model.VerdictRTE, nil
	}

	var verdict model.Verdict
	var cmp *result.Comparison
	switch {
	case res.TimedOut:
		verdict = model.VerdictTLE
	case res.ExitCode != 0:
		verdict = model.VerdictRTE
	default:
		cmp, err = result.Evaluate(tc.OutputPath, tc.AnswerPath)
		if err != nil {
			return "", err
		}
		verdict = cmp.Verdict
	}

	s.printVerdict(id, verdict, res.TimeUsed)
	switch {
	case verdict == model.VerdictWA:
		result.RenderDiff(s.out, cmp.Output, cmp.Answer, result.TermWidth())
	case verdict == model.VerdictAC && cmp.WhitespaceOnly:
		fmt.Fprintln(s.out, "提示: 输出与答案仅行首尾空白不同")
	case verdict == model.VerdictRTE && res.ExitCode != 0:
		fmt.Fprintf(s.out, "退出码 %d\n", res.ExitCode)
		if res.Stderr != "" {
			fmt.Fprintln(s.out, strings.TrimRight(res.Stderr, "\n"))
		}
	case verdict == model.VerdictRTE:
		fmt.Fprintln(s.out, "输出或答案文件缺失")
	}

	zap.L().Info("测试点评测完成",
		zap.String("solution", s.Solution),
		zap.Int("id", id),
		zap.String("verdict", string(verdict)),
		zap.Duration("time_used", res.TimeUsed),
	)
	return verdict, nil
}

// RunAll 依次评测全部测试点
// 不因单个测试点失败提前终止，最后打印 “N / M AC” 汇总行
func (s *Session) RunAll(compile bool) (ac, total int, err error) {
	ids, err := testcase.ListIDs(s.Solution)
	if err != nil {
		return 0, 0, err
	}
	if len(ids) == 0 {
		fmt.Fprintln(s.out, "没有测试数据，可先用 record 命令录入")
		return 0, 0, nil
	}

	for i, id := range ids {
		verdict, err := s.RunOne(id, compile && i == 0)
		if err != nil {
			return ac, len(ids), err
		}
		if verdict == model.VerdictAC {
			ac++
		}
	}

	s.printSummary(ac, len(ids))
	return ac, len(ids), nil
}

// Debug 调试模式：进程输入输出直连终端，不对比、不写产物
func (s *Session) Debug(compile bool) error {
	if compile {
		if err := s.compile(); err != nil {
			return err
		}
	}
	argv := language.Expand(s.Command.Debug, s.Solution)
	if len(argv) == 0 {
		return errors.New(errors.ErrCodeCommandNotFound, "调试命令未配置")
	}
	return s.runner.Debug(argv[0], argv[1:])
}

// compile 批量评测前的编译步骤，不需要编译的语言直接跳过
func (s *Session) compile() error {
	if !s.Command.NeedCompile {
		return nil
	}
	argv := language.Expand(s.Command.Compile, s.Solution)
	stderr, err := compiler.Compile(argv, filepath.Dir(s.Solution))
	if err != nil {
		if stderr != "" {
			fmt.Fprintln(s.out, strings.TrimRight(stderr, "\n"))
		}
		return err
	}
	return nil
}

func (s *Session) printVerdict(id int, v model.Verdict, used time.Duration) {
	fmt.Fprintf(s.out, "测试点 %d: %s  (%dms)\n", id, result.Label(v), used.Milliseconds())
}

func (s *Session) printSummary(ac, total int) {
	banner := fmt.Sprintf("%d / %d AC", ac, total)
	if ac == total {
		fmt.Fprintf(s.out, "%s 🎉\n", color.New(color.FgGreen, color.Bold).Sprint(banner))
		return
	}
	fmt.Fprintln(s.out, banner)
}
