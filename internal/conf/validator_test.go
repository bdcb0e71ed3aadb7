package conf

import (
	"testing"

	"github.com/spf13/viper"
)

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := viper.New()
	SetDefaultValues(cfg)

	if err := ValidateConfig(cfg); err != nil {
		t.Errorf("defaults should validate, got: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   interface{}
		wantErr bool
	}{
		{
			name:    "时间限制为0",
			key:     "judge.time_limit",
			value:   0,
			wantErr: true,
		},
		{
			name:    "时间限制超上限",
			key:     "judge.time_limit",
			value:   10000000,
			wantErr: true,
		},
		{
			name:    "合法时间限制",
			key:     "judge.time_limit",
			value:   5000,
			wantErr: false,
		},
		{
			name:    "日志级别无效",
			key:     "log.level",
			value:   "verbose",
			wantErr: true,
		},
		{
			name:    "日志级别合法",
			key:     "log.level",
			value:   "debug",
			wantErr: false,
		},
		{
			name:    "覆盖未知语言",
			key:     "languages.rust",
			value:   map[string]interface{}{"run": "cargo run"},
			wantErr: true,
		},
		{
			name:    "覆盖已知语言",
			key:     "languages.cpp",
			value:   map[string]interface{}{"compile": "g++ -O3 -o {bin} {src}"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := viper.New()
			SetDefaultValues(cfg)
			cfg.Set(tt.key, tt.value)

			err := ValidateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetLanguageTable_Override(t *testing.T) {
	cfg := viper.New()
	SetDefaultValues(cfg)
	cfg.Set("languages.cpp.compile", "g++ -O3 -o {bin} {src}")
	cfg.Set("languages.python.run", "pypy3 {src}")

	table := GetLanguageTable(cfg)

	if got := table["cpp"].Compile; got != "g++ -O3 -o {bin} {src}" {
		t.Errorf("cpp compile = %q, override lost", got)
	}
	// 没覆盖的字段保持内置值
	if got := table["cpp"].Run; got != "{bin}" {
		t.Errorf("cpp run = %q, want builtin {bin}", got)
	}
	if got := table["python"].Run; got != "pypy3 {src}" {
		t.Errorf("python run = %q, override lost", got)
	}
	if table["python"].NeedCompile {
		t.Error("python should not need compile")
	}
}
