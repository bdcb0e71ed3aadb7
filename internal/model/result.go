package model

import "time"

// ExecutionResult 一次运行的原始结果
// 超时 > 非零退出 > 正常退出，三者有且只有一个成立
type ExecutionResult struct {
	ExitCode int           // 退出码（超时被终止时为 -1）
	Stdout   string        // 标准输出
	Stderr   string        // 标准错误
	TimedOut bool          // 是否超过时间限制被强制终止
	TimeUsed time.Duration // 墙钟耗时
}

// TestCase 一个编号的测试点及其三个产物文件路径
// 输入和答案由录入或手工提供；输出仅在正常退出的运行后被重写
type TestCase struct {
	ID         int
	InputPath  string
	OutputPath string
	AnswerPath string
}
