package handler

import (
	"context"
	"net/http"

	"github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/middleware"
	"github.com/quotedesk/quotedesk/internal/service"

	"github.com/quotedesk/quotedesk/internal/domain"
	"github.com/quotedesk/quotedesk/internal/utils"
)

// HealthChecker reports whether the storage dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth      service.AuthService
	quotation service.QuotationService
	dashboard service.DashboardService
	health    HealthChecker
}

func New(auth service.AuthService, quotation service.QuotationService, dashboard service.DashboardService, health HealthChecker) *Handler {
	return &Handler{auth, quotation, dashboard, health}
}

// callerFromContext returns the authenticated user placed in the context
// by the auth middleware. A nil user on a protected route means the route
// was wired without the middleware; reject rather than proceed.
func callerFromContext(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Please sign in", StatusCode: http.StatusUnauthorized})
		return domain.User{}, false
	}
	return *user, true
}
