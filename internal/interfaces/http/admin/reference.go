package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/omise-ai/omise-ai-services/api/internal/interfaces/http/common"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

type referenceSummaryResponse struct {
	Source        string    `json:"source"`
	LoadedAt      time.Time `json:"loadedAt"`
	CategoryCount int       `json:"categoryCount"`
	LocationCount int       `json:"locationCount"`
	GenreCount    int       `json:"genreCount"`
}

func buildReferenceSummary(catalog *reference.Catalog) referenceSummaryResponse {
	return referenceSummaryResponse{
		Source:        catalog.Source(),
		LoadedAt:      catalog.LoadedAt(),
		CategoryCount: len(catalog.SubCategoryKeys()),
		LocationCount: len(catalog.LocationKeys()),
		GenreCount:    len(catalog.Genres()),
	}
}

// referenceSummaryHandler は現在のカタログスナップショットの概要を返す。
func (h *Handler) referenceSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, buildReferenceSummary(h.catalogs.Current()))
	}
}

// referenceReloadHandler は外部ソースからカタログを読み直し、スナップショットを
// アトミックに差し替える。進行中のシミュレーションは古いスナップショットを
// 読み切るため影響を受けない。
func (h *Handler) referenceReloadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.loader == nil {
			common.WriteJSON(h.logger, w, http.StatusServiceUnavailable, map[string]string{
				"error": "リファレンスデータの外部ソースが構成されていません",
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		catalog, err := h.loader.LoadCatalog(ctx)
		if err != nil {
			h.logger.Printf("カタログ再読込に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{
				"error": "リファレンスデータの再読込に失敗しました",
			})
			return
		}

		h.catalogs.Replace(catalog)

		operator := "unknown"
		if user, ok := common.UserFromContext(r.Context()); ok {
			operator = user.ID
		}
		h.logger.Printf("カタログを再読込しました: source=%s operator=%s", catalog.Source(), operator)

		common.WriteJSON(h.logger, w, http.StatusOK, buildReferenceSummary(catalog))
	}
}
