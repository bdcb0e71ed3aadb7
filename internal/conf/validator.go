package conf

import (
	"fmt"

	"cpjudge/internal/constants"
	"cpjudge/internal/task/language"
	"cpjudge/pkg/errors"

	"github.com/spf13/viper"
)

// SetDefaultValues 设置默认配置值
func SetDefaultValues(cfg *viper.Viper) {
	// 评测默认值
	cfg.SetDefault("judge.time_limit", constants.DefaultTimeLimit)

	// 日志默认值
	cfg.SetDefault("log.level", constants.LogLevelInfo)
	cfg.SetDefault("log.filename", "")
	cfg.SetDefault("log.max_size", constants.DefaultLogMaxSize)
	cfg.SetDefault("log.max_age", constants.DefaultLogMaxAge)
	cfg.SetDefault("log.max_backups", constants.DefaultLogBackups)
}

// ValidateConfig 验证配置文件
func ValidateConfig(cfg *viper.Viper) error {
	if err := validateJudgeConfig(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "评测配置错误", err)
	}
	if err := validateLogConfig(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "日志配置错误", err)
	}
	if err := validateLanguageConfig(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "语言配置错误", err)
	}
	return nil
}

// validateJudgeConfig 验证评测配置
func validateJudgeConfig(cfg *viper.Viper) error {
	limit := cfg.GetInt("judge.time_limit")
	if limit < constants.MinTimeLimit || limit > constants.MaxTimeLimit {
		return fmt.Errorf("默认时间限制无效: %d (应在%d-%d毫秒之间)",
			limit, constants.MinTimeLimit, constants.MaxTimeLimit)
	}
	return nil
}

// validateLogConfig 验证日志配置
func validateLogConfig(cfg *viper.Viper) error {
	level := cfg.GetString("log.level")
	switch level {
	case constants.LogLevelDebug, constants.LogLevelInfo, constants.LogLevelWarn, constants.LogLevelError:
	default:
		return fmt.Errorf("日志级别无效: %s (应为debug/info/warn/error)", level)
	}

	if size := cfg.GetInt("log.max_size"); size <= 0 {
		return fmt.Errorf("日志大小上限无效: %d", size)
	}
	return nil
}

// validateLanguageConfig 验证语言配置只覆盖已知语言
func validateLanguageConfig(cfg *viper.Viper) error {
	known := language.DefaultTable()
	for key := range cfg.GetStringMap("languages") {
		if _, ok := known[language.Language(key)]; !ok {
			return fmt.Errorf("不支持的语言: %s", key)
		}
	}
	return nil
}
