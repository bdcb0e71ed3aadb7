package main

import (
	"fmt"

	"cpjudge/internal/conf"
	"cpjudge/internal/service"

	"github.com/urfave/cli"
)

var runCmd = cli.Command{
	Name:      "run",
	Usage:     "运行解答并对比全部（或指定）测试点",
	ArgsUsage: "<解答文件>",

	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "id,i",
			Usage: "只运行指定编号的测试点",
		},
		cli.BoolFlag{
			Name:  "no-compile",
			Usage: "跳过编译步骤",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return fmt.Errorf("用法: cpjudge run <解答文件>")
		}

		sess, err := service.NewSession(ctx.Args().First(), conf.GetLanguageTable(appConf))
		if err != nil {
			return err
		}

		compile := !ctx.Bool("no-compile")
		if id := ctx.Int("id"); id > 0 {
			_, err = sess.RunOne(id, compile)
			return err
		}
		_, _, err = sess.RunAll(compile)
		return err
	},
}
