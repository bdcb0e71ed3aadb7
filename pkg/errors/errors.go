package errors

import (
	"fmt"
)

// ErrorCode 错误码类型
type ErrorCode int

const (
	// 系统错误 (1000-1999)
	ErrCodeInternal ErrorCode = 1000 + iota
	ErrCodeTimeout

	// 结构性错误 (2000-2999)：这些会让整批评测无法开始
	ErrCodeSolutionNotFound ErrorCode = 2000 + iota
	ErrCodeUnknownLanguage
	ErrCodeCommandNotFound
	ErrCodeConfigInvalid

	// 编译错误 (3000-3999)
	ErrCodeCompile ErrorCode = 3000 + iota
	ErrCodeCompilerNotFound

	// 测试数据错误 (4000-4999)
	ErrCodeRecordFailed ErrorCode = 4000 + iota
)

// JudgeError 评测工具错误
// 核心逻辑不直接退出进程，结构性问题一律包装成带错误码的错误向外返回，
// 由 cmd 入口决定如何终止
type JudgeError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error 实现 error 接口
func (e *JudgeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持错误链
func (e *JudgeError) Unwrap() error {
	return e.Err
}

// New 创建新的评测错误
func New(code ErrorCode, message string) *JudgeError {
	return &JudgeError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装已有错误
func Wrap(code ErrorCode, message string, err error) *JudgeError {
	return &JudgeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsErrorCode 判断错误是否为指定错误码
func IsErrorCode(err error, code ErrorCode) bool {
	if judgeErr, ok := err.(*JudgeError); ok {
		return judgeErr.Code == code
	}
	return false
}

// GetErrorCode 获取错误码
func GetErrorCode(err error) ErrorCode {
	if judgeErr, ok := err.(*JudgeError); ok {
		return judgeErr.Code
	}
	return ErrCodeInternal
}
