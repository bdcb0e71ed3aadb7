package main

import (
	"fmt"

	"cpjudge/internal/conf"
	"cpjudge/internal/service"

	"github.com/urfave/cli"
)

var debugCmd = cli.Command{
	Name:      "debug",
	Usage:     "调试模式：进程输入输出直连当前终端，不做结果对比",
	ArgsUsage: "<解答文件>",

	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "no-compile",
			Usage: "跳过编译步骤",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("用法: cpjudge debug <解答文件>")
		}

		sess, err := service.NewSession(ctx.Args().First(), conf.GetLanguageTable(appConf))
		if err != nil {
			return err
		}
		return sess.Debug(!ctx.Bool("no-compile"))
	},
}
