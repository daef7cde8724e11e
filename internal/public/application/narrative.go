package application

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/omise-ai/omise-ai-services/api/internal/public/domain"
)

// conceptLocationNames はコンセプト文面用の短い立地名。
// ピッカー表示用のラベル（駅前・駅近 など）とは別管理。
var conceptLocationNames = map[string]string{
	"station":     "駅前",
	"office":      "オフィス街",
	"residential": "住宅街",
	"shopping":    "商業施設",
	"roadside":    "ロードサイド",
}

// storeNamePrefixes は業態ごとの屋号の冠。未登録の業態は汎用の「お店」。
var storeNamePrefixes = map[string]string{
	"ramen":   "麺屋",
	"sushi":   "鮨処",
	"izakaya": "酒場",
	"cafe":    "カフェ",
	"coffee":  "コーヒーハウス",
	"italian": "リストランテ",
	"french":  "ビストロ",
	"bar":     "バー",
}

const fallbackStoreNamePrefix = "お店"

// marketingTips は立地別の集客施策。各立地ちょうど3件。
var marketingTips = map[string][]string{
	"station": {
		"駅看板・のぼり旗での視認性向上",
		"モバイルオーダー・テイクアウト対応",
		"SNS映えするメニュー開発",
	},
	"office": {
		"ランチタイムの回転率重視オペレーション",
		"法人向け宴会プランの開発",
		"Googleマップ・食べログでの上位表示対策",
	},
	"residential": {
		"地域密着型のイベント参加",
		"ポスティング・地域情報誌への掲載",
		"リピーター向けポイントカード制度",
	},
	"shopping": {
		"施設内イベントとの連動企画",
		"ファミリー向けメニューの充実",
		"施設のポイントシステム活用",
	},
	"roadside": {
		"目立つ外観・看板デザイン",
		"駐車場の確保と案内表示",
		"ドライブスルー・テイクアウト強化",
	},
}

var baseOperationTips = []string{
	"食材の一括仕入れによるコスト削減",
	"ピークタイム対応のシフト最適化",
	"POSシステムによる在庫・売上管理",
}

// largeStoreOperationTips は席数が largeStoreSeats を超える場合に追加する施策。
var largeStoreOperationTips = []string{
	"キッチン動線の効率化",
	"パート・アルバイトの教育システム構築",
}

const largeStoreSeats = 30

// signatureItemPriceRatio は看板メニューの推奨価格（客単価比）。
const signatureItemPriceRatio = 0.8

// buildConcept generates the store concept narrative.
// 入力が同じなら常に同じ文面を返す決定的なテンプレート生成で、乱数や時刻に
// は依存しない。subCategory / location は解決済みキーを渡す。
func buildConcept(genreName string, info domain.BasicInfo, subCategory, location string) domain.Concept {
	locationName := conceptLocationNames[location]

	prefix := storeNamePrefixes[subCategory]
	if prefix == "" {
		prefix = fallbackStoreNamePrefix
	}
	storeName := prefix + "・○○（仮）"

	var concept string
	if info.SpecialFeature != "" {
		target := info.TargetCustomer
		if target == "" {
			target = "地域のお客様"
		}
		concept = fmt.Sprintf("%sを活かした%s店。%sの立地を活かし、%sに愛される店づくりを目指します。",
			info.SpecialFeature, genreName, locationName, target)
	} else {
		concept = fmt.Sprintf("%sで展開する%s店。%d席のアットホームな空間で、本格的な味をお手頃価格で提供します。",
			locationName, genreName, info.Seats)
	}

	targetMessage := "地域に愛される、何度も来たくなるお店を目指します。"
	if info.TargetCustomer != "" {
		targetMessage = fmt.Sprintf("%sに向けて、くつろげる空間と満足のいく料理を提供します。", info.TargetCustomer)
	}

	uniquePoints := []string{
		fmt.Sprintf("客単価%s円のコストパフォーマンス", formatYen(info.UnitPrice)),
		fmt.Sprintf("%sという好立地", locationName),
		fmt.Sprintf("%d席で目の届くサービス", info.Seats),
	}
	if info.SpecialFeature != "" {
		uniquePoints = append([]string{info.SpecialFeature}, uniquePoints...)
	}

	return domain.Concept{
		StoreName:     storeName,
		Concept:       concept,
		TargetMessage: targetMessage,
		UniquePoints:  uniquePoints,
	}
}

// buildStrategy generates marketing/operation/menu recommendations.
// location は解決済みキーを渡すため、marketingTips の参照は常に3件を返す。
func buildStrategy(info domain.BasicInfo, location string) domain.Strategy {
	marketing := append([]string(nil), marketingTips[location]...)

	operation := append([]string(nil), baseOperationTips...)
	if info.Seats > largeStoreSeats {
		operation = append(operation, largeStoreOperationTips...)
	}

	signaturePrice := int(math.Round(float64(info.UnitPrice) * signatureItemPriceRatio))
	menuRecommendations := []string{
		fmt.Sprintf("看板メニュー（客単価%s円）の開発", formatYen(signaturePrice)),
		"季節限定メニューによるリピート促進",
		"ドリンク・サイドメニューの利益率向上",
	}

	return domain.Strategy{
		Marketing:           marketing,
		Operation:           operation,
		MenuRecommendations: menuRecommendations,
	}
}

// formatYen は金額を3桁区切りで表記する。
func formatYen(amount int) string {
	digits := strconv.Itoa(amount)
	if amount < 0 || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
