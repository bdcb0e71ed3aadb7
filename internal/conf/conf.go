package conf

import (
	"os"
	"path/filepath"

	"cpjudge/internal/constants"
	"cpjudge/internal/task/language"
	"cpjudge/pkg/errors"

	"github.com/spf13/viper"
)

// Load 加载配置文件
// confPath 为空时用默认路径 ~/.config/cpjudge/config.yaml，默认路径不存在则
// 全部走默认值；显式指定的配置文件读不到属于结构性错误
func Load(confPath string) (*viper.Viper, error) {
	cfg := viper.New()
	SetDefaultValues(cfg)

	explicit := confPath != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		confPath = filepath.Join(home, ".config", constants.ConfigDirName, constants.ConfigFileName)
	}

	cfg.SetConfigFile(confPath)
	if err := cfg.ReadInConfig(); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "读取配置文件失败: "+confPath, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetLanguageTable 在内置命令表之上套用配置文件里的逐项覆盖
// 键形如 languages.cpp.run / languages.cpp.compile / languages.cpp.comment_marker
func GetLanguageTable(cfg *viper.Viper) language.Table {
	table := language.DefaultTable()
	for lang, cmd := range table {
		key := "languages." + string(lang)
		if !cfg.IsSet(key) {
			continue
		}
		if v := cfg.GetString(key + ".run"); v != "" {
			cmd.Run = v
		}
		if v := cfg.GetString(key + ".debug"); v != "" {
			cmd.Debug = v
		}
		if v := cfg.GetString(key + ".compile"); v != "" {
			cmd.Compile = v
		}
		if cfg.IsSet(key + ".need_compile") {
			cmd.NeedCompile = cfg.GetBool(key + ".need_compile")
		}
		if v := cfg.GetString(key + ".comment_marker"); v != "" {
			cmd.CommentMarker = v
		}
		table[lang] = cmd
	}
	return table
}
