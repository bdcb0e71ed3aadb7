package main

import (
	"fmt"
	"io"
	"os"

	"cpjudge/internal/conf"
	"cpjudge/pkg/logging"

	"github.com/spf13/viper"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const usage = `local judge for competitive programming

cpjudge 在本地运行解答程序、用预存的输入和答案对比输出，
给出 AC / WA / TLE / RTE 结论`

// appConf 全局配置，在 Before 里装配好供各子命令使用
var appConf *viper.Viper

func main() {
	app := cli.NewApp()
	app.Name = "cpjudge"
	app.Usage = usage
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "配置文件路径（默认 ~/.config/cpjudge/config.yaml）",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "输出调试级别日志",
		},
	}
	app.Commands = []cli.Command{
		runCmd,
		recordCmd,
		debugCmd,
	}

	app.Before = func(ctx *cli.Context) error {
		cfg, err := conf.Load(ctx.GlobalString("config"))
		if err != nil {
			return err
		}
		if ctx.GlobalBool("debug") {
			cfg.Set("log.level", "debug")
		}
		if _, err := logging.NewLogger(cfg); err != nil {
			return err
		}
		appConf = cfg
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		_ = zap.L().Sync()
		return nil
	}

	// 子命令出错时 cli 会自行打印并退出，让这份输出同时进日志
	cli.ErrWriter = &FatalWriter{cli.ErrWriter}
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// fatal 结构性错误的统一出口：打印诊断信息后退出进程
// 这是整个程序里唯一会主动终止进程的地方
func fatal(err error) {
	zap.L().Error("运行失败", zap.Error(err))
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

type FatalWriter struct {
	cliErrWriter io.Writer
}

func (f *FatalWriter) Write(p []byte) (n int, err error) {
	zap.L().Error(string(p))
	return f.cliErrWriter.Write(p)
}
