package constants

import "time"

// 评测相关常量
const (
	// 默认时间限制（毫秒），源码中无 time-limit 指令时使用
	DefaultTimeLimit = 3000

	// 超时宽限期：墙钟超过 时间限制+宽限期 后强制终止进程
	TimeLimitGrace = 500 * time.Millisecond

	// 编译超时时间
	CompileTimeout = 30 * time.Second

	// 时间限制取值范围（毫秒）
	MinTimeLimit = 1
	MaxTimeLimit = 600000

	// 最大输出大小（10MB）
	MaxOutputSize = 10 * 1024 * 1024
)

// 测试数据文件相关常量
// 对于解答文件 P.ext 和编号 id，三个产物文件是 P.in{id}、P.ans{id}、P.out{id}
const (
	InputExt  = ".in"
	AnswerExt = ".ans"
	OutputExt = ".out"

	ArtifactPerm = 0644

	// 录入测试数据时每段文本的结束标记（单独一行）
	RecordEndMark = "EOF"
)

// 输出对照表相关常量
const (
	DiffMinColumnWidth = 16 // 列宽下限
	DiffMarginWidth    = 8  // 终端右侧预留宽度
	DefaultTermWidth   = 80 // 无法获取终端宽度时的默认值
)

// 评测结果标签（固定宽度）
const (
	LabelAC  = " A C "
	LabelWA  = " W A "
	LabelTLE = " T L E "
	LabelRTE = " R T E "
)

// 配置相关常量
const (
	ConfigDirName  = "cpjudge"
	ConfigFileName = "config.yaml"
)

// 日志相关常量
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	DefaultLogFile    = "cpjudge.log"
	DefaultLogMaxSize = 10 // MB
	DefaultLogMaxAge  = 30 // days
	DefaultLogBackups = 3
)
