package language

import (
	"fmt"
	"path/filepath"
	"strings"

	"cpjudge/pkg/errors"
)

// Language 支持的语言（封闭集合，按查表分发）
type Language string

const (
	LanguageC       Language = "c"
	LanguageCpp     Language = "cpp"
	LanguageJava    Language = "java"
	LanguagePython  Language = "python"
	LanguageGo      Language = "go"
	LanguageShell   Language = "shell"
	LanguageUnknown Language = ""
)

// Command 一种语言的命令配置
// 命令串按空白分词为可执行文件加参数，不支持引号和转义——
// 这是已知限制，保持与配置文件里写的内容逐字一致，不做更聪明的解析
type Command struct {
	Run           string // 运行命令
	Debug         string // 调试命令（输入输出直连终端）
	Compile       string // 编译命令
	NeedCompile   bool   // 是否需要编译
	CommentMarker string // 行注释前缀（用于识别 time-limit 指令）
}

// Table 语言到命令配置的查表
type Table map[Language]Command

// DefaultTable 内置命令配置，可被配置文件逐项覆盖
func DefaultTable() Table {
	return Table{
		LanguageC: {
			Run:           "{bin}",
			Debug:         "{bin}",
			Compile:       "gcc -O2 -Wall -std=c11 -o {bin} {src}",
			NeedCompile:   true,
			CommentMarker: "//",
		},
		LanguageCpp: {
			Run:           "{bin}",
			Debug:         "{bin}",
			Compile:       "g++ -O2 -Wall -std=c++17 -o {bin} {src}",
			NeedCompile:   true,
			CommentMarker: "//",
		},
		LanguageJava: {
			Run:           "java -cp {dir} {class}",
			Debug:         "java -cp {dir} {class}",
			Compile:       "javac -d {dir} {src}",
			NeedCompile:   true,
			CommentMarker: "//",
		},
		LanguagePython: {
			Run:           "python3 {src}",
			Debug:         "python3 -m pdb {src}",
			NeedCompile:   false,
			CommentMarker: "#",
		},
		LanguageGo: {
			Run:           "{bin}",
			Debug:         "{bin}",
			Compile:       "go build -o {bin} {src}",
			NeedCompile:   true,
			CommentMarker: "//",
		},
		LanguageShell: {
			Run:           "sh {src}",
			Debug:         "sh {src}",
			NeedCompile:   false,
			CommentMarker: "#",
		},
	}
}

// Lookup 查找语言的命令配置
func (t Table) Lookup(lang Language) (Command, error) {
	cmd, ok := t[lang]
	if !ok {
		return Command{}, errors.New(errors.ErrCodeCommandNotFound,
			fmt.Sprintf("语言 %q 没有配置运行命令", lang))
	}
	return cmd, nil
}

// DetectByExtension 根据文件扩展名判断编程语言
func DetectByExtension(filename string) Language {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".c":
		return LanguageC
	case ".cpp", ".cxx", ".cc":
		return LanguageCpp
	case ".java":
		return LanguageJava
	case ".py", ".py3":
		return LanguagePython
	case ".go":
		return LanguageGo
	case ".sh":
		return LanguageShell
	default:
		return LanguageUnknown
	}
}

// Expand 替换命令串中的占位符并按空白分词
// {src} 解答文件路径；{bin} 去掉扩展名的路径（编译产物）；
// {dir} 解答所在目录；{class} 文件名去扩展名（Java 主类名）
func Expand(cmdline, src string) []string {
	stem := strings.TrimSuffix(src, filepath.Ext(src))
	bin := stem
	// 相对路径下 {bin} 补 ./ 前缀，不带分隔符的命令名会被 exec 去 $PATH 解析
	if !strings.ContainsRune(bin, filepath.Separator) {
		bin = "." + string(filepath.Separator) + bin
	}
	repl := strings.NewReplacer(
		"{src}", src,
		"{bin}", bin,
		"{dir}", filepath.Dir(src),
		"{class}", filepath.Base(stem),
	)
	return strings.Fields(repl.Replace(cmdline))
}
