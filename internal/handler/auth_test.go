package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotedesk/quotedesk/internal/domain"
	"github.com/quotedesk/quotedesk/internal/errors"
)

func TestRegisterHandler(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		auth := &MockAuthService{
			MockRegister: func(name string, email domain.Email, password domain.Password, role domain.Role) (string, domain.User, error) {
				assert.Equal(t, "Alice", name)
				assert.Equal(t, "alice@x.com", email)
				assert.Equal(t, domain.Role("Customer"), role)
				return "issued_token", domain.User{Id: "u-1", Name: name, Email: email, Role: domain.RoleCustomer}, nil
			},
		}
		h := New(auth, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		body := []byte(`{"name":"Alice","email":"alice@x.com","password":"secret1","role":"Customer"}`)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, createRequest(t, http.MethodPost, "/auth/register", body))

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Message string      `json:"message"`
			Token   string      `json:"token"`
			User    domain.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User registered successfully", resp.Message)
		assert.Equal(t, "issued_token", resp.Token)
		assert.Equal(t, "u-1", resp.User.Id)
	})

	t.Run("missing required fields", func(t *testing.T) {
		h := New(&MockAuthService{}, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, createRequest(t, http.MethodPost, "/auth/register", []byte(`{"email":"alice@x.com"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		auth := &MockAuthService{
			MockRegister: func(name string, email domain.Email, password domain.Password, role domain.Role) (string, domain.User, error) {
				return "", domain.User{}, &errors.ErrorWithStatusCode{Message: "Email already exists", StatusCode: http.StatusBadRequest}
			},
		}
		h := New(auth, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		body := []byte(`{"name":"Alice","email":"alice@x.com","password":"secret1"}`)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, createRequest(t, http.MethodPost, "/auth/register", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Email already exists")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		auth := &MockAuthService{
			MockLogin: func(email domain.Email, password domain.Password) (string, domain.User, error) {
				return "issued_token", domain.User{Id: "u-1", Email: email}, nil
			},
		}
		h := New(auth, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		body := []byte(`{"email":"alice@x.com","password":"secret1"}`)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, createRequest(t, http.MethodPost, "/auth/login", body))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Message string `json:"message"`
			Token   string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, "issued_token", resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		auth := &MockAuthService{
			MockLogin: func(email domain.Email, password domain.Password) (string, domain.User, error) {
				return "", domain.User{}, &errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
			},
		}
		h := New(auth, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		body := []byte(`{"email":"alice@x.com","password":"wrong"}`)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, createRequest(t, http.MethodPost, "/auth/login", body))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid email or password")
	})

	t.Run("invalid request body", func(t *testing.T) {
		h := New(&MockAuthService{}, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, createRequest(t, http.MethodPost, "/auth/login", []byte(`{invalid json::}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMeHandler(t *testing.T) {
	t.Run("returns own profile", func(t *testing.T) {
		auth := &MockAuthService{
			MockMe: func(userId domain.UserId) (domain.User, error) {
				assert.Equal(t, testCustomer.Id, userId)
				return testCustomer, nil
			},
		}
		h := New(auth, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		req := asUser(createRequest(t, http.MethodGet, "/auth/me", nil), testCustomer)
		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			User domain.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, testCustomer.Id, resp.User.Id)
		assert.Equal(t, testCustomer.Email, resp.User.Email)
	})

	t.Run("no user in context", func(t *testing.T) {
		h := New(&MockAuthService{}, &MockQuotationService{}, &MockDashboardService{}, &MockHealthChecker{})

		rr := httptest.NewRecorder()
		testRouter(h).ServeHTTP(rr, createRequest(t, http.MethodGet, "/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
