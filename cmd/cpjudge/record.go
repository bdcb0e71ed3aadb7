package main

import (
	"fmt"
	"os"

	"cpjudge/internal/task/testcase"
	"cpjudge/pkg/errors"

	"github.com/urfave/cli"
)

var recordCmd = cli.Command{
	Name:      "record",
	Usage:     "交互式录入一组新的测试数据（输入和期望答案）",
	ArgsUsage: "<解答文件>",

	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("用法: cpjudge record <解答文件>")
		}
		solution := ctx.Args().First()
		if _, err := os.Stat(solution); err != nil {
			return errors.Wrap(errors.ErrCodeSolutionNotFound, "解答文件不存在: "+solution, err)
		}

		id, err := testcase.NewRecorder().Record(solution)
		if err != nil {
			return err
		}
		fmt.Printf("已保存测试点 %d\n", id)
		return nil
	},
}
