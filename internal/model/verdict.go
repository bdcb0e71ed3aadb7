package model

// Verdict 单个测试点的终态
type Verdict string

const (
	VerdictAC  Verdict = "AC"  // 答案正确
	VerdictWA  Verdict = "WA"  // 答案错误
	VerdictTLE Verdict = "TLE" // 时间超限
	VerdictRTE Verdict = "RTE" // 运行时错误（也用于对比文件缺失，见 DESIGN.md）
)
