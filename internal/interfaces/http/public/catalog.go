package public

import (
	"net/http"

	"github.com/omise-ai/omise-ai-services/api/internal/interfaces/http/common"
)

// genreListHandler はジャンルピッカー描画用の分類一覧を返す。
func (h *Handler) genreListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		catalog := h.catalogs.Current()
		common.WriteJSON(h.logger, w, http.StatusOK, genreListResponse{
			Items: buildGenrePayloads(catalog.Genres()),
		})
	}
}

// locationListHandler は立地ピッカー描画用のオプション一覧を返す。
func (h *Handler) locationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		catalog := h.catalogs.Current()
		common.WriteJSON(h.logger, w, http.StatusOK, locationListResponse{
			Items: buildLocationPayloads(catalog.Locations()),
		})
	}
}
