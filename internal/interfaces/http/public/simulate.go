package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omise-ai/omise-ai-services/api/internal/interfaces/http/common"
	"github.com/omise-ai/omise-ai-services/api/internal/public/domain"
)

func (h *Handler) simulateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxSimulateRequestBody)
		var req simulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, simulateResponse{
				Success: false,
				Error:   "リクエストの形式が不正です",
			})
			return
		}

		if err := validateSimulateRequest(req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, simulateResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		input := domain.SimulationInput{
			MainCategory: strings.TrimSpace(req.MainCategory),
			SubCategory:  strings.TrimSpace(req.SubCategory),
			BasicInfo: domain.BasicInfo{
				Seats:          req.BasicInfo.Seats,
				UnitPrice:      req.BasicInfo.UnitPrice,
				OpeningHours:   strings.TrimSpace(req.BasicInfo.OpeningHours),
				Location:       common.CanonicalLocationCode(req.BasicInfo.Location),
				TargetCustomer: strings.TrimSpace(req.BasicInfo.TargetCustomer),
				SpecialFeature: strings.TrimSpace(req.BasicInfo.SpecialFeature),
			},
		}

		result, err := h.simulations.Simulate(r.Context(), input)
		if err != nil {
			h.logger.Printf("シミュレーション計算に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, simulateResponse{
				Success: false,
				Error:   "シミュレーション処理中にエラーが発生しました",
			})
			return
		}

		payload := buildSimulationResultPayload(*result)
		common.WriteJSON(h.logger, w, http.StatusOK, simulateResponse{
			Success: true,
			Data:    &payload,
			Meta: &simulationMetaPayload{
				SimulationID: uuid.New().String(),
				DurationMs:   time.Since(started).Milliseconds(),
			},
		})
	}
}

// validateSimulateRequest はレンジ制約を呼び出し側の責務として検証する。
// ここを通過した入力をエンジンは再検証しない。
func validateSimulateRequest(req simulateRequest) error {
	if strings.TrimSpace(req.MainCategory) == "" {
		return fmt.Errorf("メインジャンルを指定してください")
	}
	if strings.TrimSpace(req.SubCategory) == "" {
		return fmt.Errorf("サブジャンルを指定してください")
	}
	if req.BasicInfo.Seats < common.MinSeats || req.BasicInfo.Seats > common.MaxSeats {
		return fmt.Errorf("席数は%d〜%dの範囲で指定してください", common.MinSeats, common.MaxSeats)
	}
	if req.BasicInfo.UnitPrice < common.MinUnitPrice || req.BasicInfo.UnitPrice > common.MaxUnitPrice {
		return fmt.Errorf("客単価は%d〜%d円の範囲で指定してください", common.MinUnitPrice, common.MaxUnitPrice)
	}
	if strings.TrimSpace(req.BasicInfo.OpeningHours) == "" {
		return fmt.Errorf("営業時間を入力してください")
	}
	return nil
}
