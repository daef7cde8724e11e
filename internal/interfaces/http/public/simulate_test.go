package public

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	publicapp "github.com/omise-ai/omise-ai-services/api/internal/public/application"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

func newTestRouter() chi.Router {
	store := reference.NewStore(reference.Default())
	handler := NewHandler(Config{
		Logger:      log.New(io.Discard, "", 0),
		Simulations: publicapp.NewSimulationService(store),
		Catalogs:    store,
	})

	r := chi.NewRouter()
	handler.Register(r)
	return r
}

func postSimulate(t *testing.T, router chi.Router, body string) (*httptest.ResponseRecorder, simulateResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp simulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestSimulateEndpoint(t *testing.T) {
	router := newTestRouter()

	rec, resp := postSimulate(t, router, `{
		"mainCategory": "japanese",
		"subCategory": "teishoku",
		"basicInfo": {
			"seats": 20,
			"unitPrice": 1500,
			"openingHours": "11:00-22:00",
			"location": "station"
		}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)

	require.NotNil(t, resp.Data)
	assert.Equal(t, 3150000, resp.Data.KPI.MonthlyRevenue)
	assert.Equal(t, 84, resp.Data.KPI.DailyCustomers)
	assert.Equal(t, 2, resp.Data.FinancialForecast.BreakEvenMonths)
	assert.NotEmpty(t, resp.Data.Concept.StoreName)

	require.NotNil(t, resp.Meta)
	assert.NotEmpty(t, resp.Meta.SimulationID)
}

func TestSimulateEndpointLocationLabel(t *testing.T) {
	router := newTestRouter()

	// 日本語ラベルで届いた立地もコードに正規化して処理する。
	_, labeled := postSimulate(t, router, `{
		"mainCategory": "japanese",
		"subCategory": "teishoku",
		"basicInfo": {"seats": 20, "unitPrice": 1500, "openingHours": "11:00-22:00", "location": "駅前・駅近"}
	}`)
	_, coded := postSimulate(t, router, `{
		"mainCategory": "japanese",
		"subCategory": "teishoku",
		"basicInfo": {"seats": 20, "unitPrice": 1500, "openingHours": "11:00-22:00", "location": "station"}
	}`)

	require.NotNil(t, labeled.Data)
	require.NotNil(t, coded.Data)
	assert.Equal(t, coded.Data, labeled.Data)
}

func TestSimulateEndpointValidation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "broken json",
			body: `{"mainCategory": `,
		},
		{
			name: "missing main category",
			body: `{"subCategory": "teishoku", "basicInfo": {"seats": 20, "unitPrice": 1500, "openingHours": "11:00-22:00", "location": "station"}}`,
		},
		{
			name: "seats below range",
			body: `{"mainCategory": "japanese", "subCategory": "teishoku", "basicInfo": {"seats": 0, "unitPrice": 1500, "openingHours": "11:00-22:00", "location": "station"}}`,
		},
		{
			name: "seats above range",
			body: `{"mainCategory": "japanese", "subCategory": "teishoku", "basicInfo": {"seats": 501, "unitPrice": 1500, "openingHours": "11:00-22:00", "location": "station"}}`,
		},
		{
			name: "unit price below range",
			body: `{"mainCategory": "japanese", "subCategory": "teishoku", "basicInfo": {"seats": 20, "unitPrice": 99, "openingHours": "11:00-22:00", "location": "station"}}`,
		},
		{
			name: "empty opening hours",
			body: `{"mainCategory": "japanese", "subCategory": "teishoku", "basicInfo": {"seats": 20, "unitPrice": 1500, "openingHours": "", "location": "station"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := postSimulate(t, router, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestGenreListEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp genreListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 6)
	assert.Equal(t, "japanese", resp.Items[0].ID)
	assert.NotEmpty(t, resp.Items[0].SubCategories)
}

func TestLocationListEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp locationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 5)
	assert.Equal(t, "station", resp.Items[0].Value)
}
