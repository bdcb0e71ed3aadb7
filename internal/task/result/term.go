package result

import (
	"os"

	"cpjudge/internal/constants"

	"golang.org/x/sys/unix"
)

// TermWidth 当前终端宽度，重定向到文件或获取失败时退回默认值
func TermWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return constants.DefaultTermWidth
	}
	return int(ws.Col)
}
