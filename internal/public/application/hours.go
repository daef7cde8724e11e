package application

import (
	"regexp"
	"strconv"
)

// openingHoursPattern は「H:MM-H:MM」形式（時は1〜2桁、分は2桁）を受け付ける。
var openingHoursPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})`)

// defaultOperatingHours はパターンに一致しない入力へのフォールバック値。
const defaultOperatingHours = 11

// parseOperatingHours は営業時間の自由記述から1日の営業時間数を求める。
// 閉店時刻が開店時刻以下の場合は深夜営業として日またぎ（24-start+end）で数える。
// 分の指定は一致判定にのみ使い、時間数の計算では切り捨てる。
func parseOperatingHours(text string) int {
	match := openingHoursPattern.FindStringSubmatch(text)
	if match == nil {
		return defaultOperatingHours
	}

	startHour, _ := strconv.Atoi(match[1])
	endHour, _ := strconv.Atoi(match[3])

	if endHour > startHour {
		return endHour - startHour
	}
	return 24 - startHour + endHour
}
