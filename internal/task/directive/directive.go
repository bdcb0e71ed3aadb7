package directive

import (
	"os"
	"regexp"
	"strconv"

	"cpjudge/internal/constants"
)

// ExtractTimeLimit 从源码中提取时间限制指令（毫秒）
// 匹配形如 “// time-limit: 2000” 的整行注释：行首空白可选，注释前缀后跟
// time-limit、冒号和纯数字，首个匹配生效；没有指令时返回默认值 3000。
// 每个解答文件只承认一条指令，这是解答文件自带的元数据，不进配置。
func ExtractTimeLimit(source, marker string) int {
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(marker) + `[ \t]*time-limit[ \t]*:[ \t]*([0-9]+)[ \t]*\r?$`)
	m := re.FindStringSubmatch(source)
	if m == nil {
		return constants.DefaultTimeLimit
	}
	limit, err := strconv.Atoi(m[1])
	if err != nil {
		// 首个匹配生效：数字溢出按无指令处理，不再继续找
		return constants.DefaultTimeLimit
	}
	return limit
}

// ExtractTimeLimitFromFile 从解答文件中提取时间限制
// 文件读不到时按无指令处理
func ExtractTimeLimitFromFile(path, marker string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		return constants.DefaultTimeLimit
	}
	return ExtractTimeLimit(string(source), marker)
}
