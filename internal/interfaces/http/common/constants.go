package common

const (
	// MaxSimulateRequestBody limits JSON request bodies for the simulate endpoint.
	MaxSimulateRequestBody = 1 << 20

	// 席数・客単価の受付レンジ。レンジ検証は呼び出し側である HTTP 層の責務で、
	// エンジンは範囲外の数値を拒否しない。
	MinSeats     = 1
	MaxSeats     = 500
	MinUnitPrice = 100
	MaxUnitPrice = 100000
)
