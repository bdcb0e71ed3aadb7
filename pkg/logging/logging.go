package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"cpjudge/internal/constants"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger 按配置构建日志器并注册为全局 zap.L()
// 日志只写滚动日志文件，终端留给评测结果输出
func NewLogger(cfg *viper.Viper) (*zap.Logger, error) {
	filename := cfg.GetString("log.filename")
	if filename == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		filename = filepath.Join(dir, constants.ConfigDirName, constants.DefaultLogFile)
	}

	level, err := zapcore.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("日志级别无效: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    cfg.GetInt("log.max_size"),
		MaxAge:     cfg.GetInt("log.max_age"),
		MaxBackups: cfg.GetInt("log.max_backups"),
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), level)

	logger := zap.New(core)
	zap.ReplaceGlobals(logger)
	return logger, nil
}
