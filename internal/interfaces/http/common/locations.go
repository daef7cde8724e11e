package common

import "strings"

// CanonicalLocationCode normalises location aliases into canonical enum codes.
// 未知の値はトリムしてそのまま返し、最終的なフォールバック判断はエンジン側の
// デフォルト解決（station）に委ねる。
func CanonicalLocationCode(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	switch strings.ToLower(trimmed) {
	case "station", "eki", "ekimae":
		return "station"
	case "office", "business":
		return "office"
	case "residential", "suburb":
		return "residential"
	case "shopping", "mall":
		return "shopping"
	case "roadside", "highway":
		return "roadside"
	}

	switch trimmed {
	case "駅前", "駅前・駅近":
		return "station"
	case "オフィス街":
		return "office"
	case "住宅街":
		return "residential"
	case "商業施設", "商業施設内":
		return "shopping"
	case "ロードサイド":
		return "roadside"
	}

	return trimmed
}
