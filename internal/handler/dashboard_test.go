package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotedesk/quotedesk/internal/domain"
)

func TestDashboardStatsHandler(t *testing.T) {
	t.Run("returns counts", func(t *testing.T) {
		dashboard := &MockDashboardService{
			MockStats: func() (domain.Stats, error) {
				return domain.Stats{Total: 10, Pending: 5, Approved: 3, Rejected: 2}, nil
			},
		}
		h := New(&MockAuthService{}, &MockQuotationService{}, dashboard, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodGet, "/dashboard/stats", nil), testAdmin)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Stats domain.Stats `json:"stats"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, domain.Stats{Total: 10, Pending: 5, Approved: 3, Rejected: 2}, resp.Stats)
	})

	t.Run("storage failure is a generic 500", func(t *testing.T) {
		dashboard := &MockDashboardService{
			MockStats: func() (domain.Stats, error) {
				return domain.Stats{}, errors.New("connection refused: 10.0.0.5:5432")
			},
		}
		h := New(&MockAuthService{}, &MockQuotationService{}, dashboard, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodGet, "/dashboard/stats", nil), testAdmin)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		// internal detail must not leak to the client
		assert.NotContains(t, rr.Body.String(), "10.0.0.5")
		assert.Contains(t, rr.Body.String(), "Internal server error")
	})
}
