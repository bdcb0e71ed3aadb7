package result

import (
	"cpjudge/internal/constants"
	"cpjudge/internal/model"

	"github.com/fatih/color"
)

// Label 固定宽度的结果标签，配色只是展示层约定，可替换
func Label(v model.Verdict) string {
	switch v {
	case model.VerdictAC:
		return color.New(color.BgGreen, color.FgBlack).Sprint(constants.LabelAC)
	case model.VerdictWA:
		return color.New(color.BgRed, color.FgWhite).Sprint(constants.LabelWA)
	case model.VerdictTLE:
		return color.New(color.BgYellow, color.FgBlack).Sprint(constants.LabelTLE)
	case model.VerdictRTE:
		return color.New(color.BgMagenta, color.FgWhite).Sprint(constants.LabelRTE)
	default:
		return string(v)
	}
}
