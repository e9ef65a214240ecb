package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotedesk/quotedesk/internal/domain"
	"github.com/quotedesk/quotedesk/internal/errors"
)

func TestCreateQuotationHandler(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockCreate: func(caller domain.User, draft domain.QuotationDraft) (domain.Quotation, error) {
				assert.Equal(t, testCustomer.Id, caller.Id)
				assert.Equal(t, 2500.0, draft.Budget)
				return domain.Quotation{Id: "q-1", CustomerId: caller.Id, Status: domain.StatusPending, CreatedAt: time.Now()}, nil
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		body := []byte(`{"name":"Alice","email":"alice@x.com","phone":"5550102030","company":"Acme Inc","requirementDescription":"We need a full rebuild of our site.","budget":2500}`)
		req := asUser(createRequest(t, http.MethodPost, "/quotations", body), testCustomer)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Message   string           `json:"message"`
			Quotation domain.Quotation `json:"quotation"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Quotation created successfully", resp.Message)
		assert.Equal(t, domain.StatusPending, resp.Quotation.Status)
	})

	t.Run("validation failure returns every violated rule", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockCreate: func(caller domain.User, draft domain.QuotationDraft) (domain.Quotation, error) {
				return domain.Quotation{}, &errors.ValidationError{Messages: []string{
					"Budget must be greater than 0",
					"Requirement description must be at least 10 characters",
				}}
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		body := []byte(`{"name":"Alice","email":"alice@x.com","phone":"5550102030","company":"Acme Inc","requirementDescription":"short","budget":-5}`)
		req := asUser(createRequest(t, http.MethodPost, "/quotations", body), testCustomer)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp struct {
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors, "Budget must be greater than 0")
		assert.Len(t, resp.Errors, 2)
	})
}

func TestMyQuotationsHandler(t *testing.T) {
	quotation := &MockQuotationService{
		MockGetOwn: func(caller domain.User) ([]domain.Quotation, error) {
			assert.Equal(t, testCustomer.Id, caller.Id)
			return []domain.Quotation{{Id: "q-2"}, {Id: "q-1"}}, nil
		},
	}
	h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

	req := asUser(createRequest(t, http.MethodGet, "/quotations/my-quotations", nil), testCustomer)
	rr := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Count      int                `json:"count"`
		Quotations []domain.Quotation `json:"quotations"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "q-2", resp.Quotations[0].Id)
}

func TestGetQuotationHandler(t *testing.T) {
	t.Run("owner gets record", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockGet: func(caller domain.User, id domain.QuotationId) (domain.Quotation, error) {
				return domain.Quotation{Id: id, CustomerId: caller.Id}, nil
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodGet, "/quotations/q-1", nil), testCustomer)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"q-1"`)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockGet: func(caller domain.User, id domain.QuotationId) (domain.Quotation, error) {
				return domain.Quotation{}, &errors.ErrorWithStatusCode{Message: "Not authorized", StatusCode: http.StatusForbidden}
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodGet, "/quotations/q-1", nil), testCustomer)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing record", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockGet: func(caller domain.User, id domain.QuotationId) (domain.Quotation, error) {
				return domain.Quotation{}, &errors.ErrorWithStatusCode{Message: "Quotation not found", StatusCode: http.StatusNotFound}
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodGet, "/quotations/missing", nil), testCustomer)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Quotation not found")
	})
}

func TestAllQuotationsHandler(t *testing.T) {
	quotation := &MockQuotationService{
		MockListAll: func(caller domain.User) ([]domain.AdminQuotation, error) {
			return []domain.AdminQuotation{
				{
					Quotation:     domain.Quotation{Id: "q-1", CustomerId: testCustomer.Id},
					CustomerName:  "Alice",
					CustomerEmail: "alice@x.com",
				},
			}, nil
		},
	}
	h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

	req := asUser(createRequest(t, http.MethodGet, "/quotations", nil), testAdmin)
	rr := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Count      int                     `json:"count"`
		Quotations []domain.AdminQuotation `json:"quotations"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Alice", resp.Quotations[0].CustomerName)
	assert.Equal(t, "alice@x.com", resp.Quotations[0].CustomerEmail)
}

func TestUpdateQuotationStatusHandler(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockUpdateStatus: func(caller domain.User, id domain.QuotationId, rawStatus string) (domain.Quotation, error) {
				assert.Equal(t, "q-1", id)
				assert.Equal(t, "Approved", rawStatus)
				return domain.Quotation{Id: id, Status: domain.StatusApproved}, nil
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		body := []byte(`{"status":"Approved"}`)
		req := asUser(createRequest(t, http.MethodPatch, "/quotations/q-1/status", body), testAdmin)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Quotation status updated")
	})

	t.Run("invalid status", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockUpdateStatus: func(caller domain.User, id domain.QuotationId, rawStatus string) (domain.Quotation, error) {
				return domain.Quotation{}, &errors.ErrorWithStatusCode{Message: "Invalid status", StatusCode: http.StatusBadRequest}
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		body := []byte(`{"status":"Cancelled"}`)
		req := asUser(createRequest(t, http.MethodPatch, "/quotations/q-1/status", body), testAdmin)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid status")
	})

	t.Run("missing status field", func(t *testing.T) {
		h := New(&MockAuthService{}, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodPatch, "/quotations/q-1/status", []byte(`{}`)), testAdmin)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteQuotationHandler(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockDelete: func(caller domain.User, id domain.QuotationId) error {
				assert.Equal(t, "q-1", id)
				return nil
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodDelete, "/quotations/q-1", nil), testAdmin)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Quotation deleted successfully")
	})

	t.Run("missing record", func(t *testing.T) {
		quotation := &MockQuotationService{
			MockDelete: func(caller domain.User, id domain.QuotationId) error {
				return &errors.ErrorWithStatusCode{Message: "Quotation not found", StatusCode: http.StatusNotFound}
			},
		}
		h := New(&MockAuthService{}, quotation, &MockDashboardService{}, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodDelete, "/quotations/missing", nil), testAdmin)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
