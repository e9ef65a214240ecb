package service

import (
	"net/http"
	"strings"

	"github.com/quotedesk/quotedesk/internal/domain"
	"github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/utils"
	"github.com/quotedesk/quotedesk/internal/validation"
)

// to mock service in tests
type QuotationService interface {
	Create(caller domain.User, draft domain.QuotationDraft) (domain.Quotation, error)
	GetOwn(caller domain.User) ([]domain.Quotation, error)
	Get(caller domain.User, id domain.QuotationId) (domain.Quotation, error)
	UpdateStatus(caller domain.User, id domain.QuotationId, rawStatus string) (domain.Quotation, error)
	Delete(caller domain.User, id domain.QuotationId) error
	ListAll(caller domain.User) ([]domain.AdminQuotation, error)
}

type Quotation struct {
	storage QuotationStorage
}

type QuotationStorage interface {
	SaveQuotation(q domain.Quotation) (domain.Quotation, error)
	QuotationById(id domain.QuotationId) (domain.Quotation, error)
	QuotationsByCustomer(customerId domain.UserId) ([]domain.Quotation, error)
	AllQuotations() ([]domain.AdminQuotation, error)
	UpdateQuotationStatus(id domain.QuotationId, status domain.Status) (domain.Quotation, error)
	DeleteQuotation(id domain.QuotationId) error
}

func NewQuotation(storage QuotationStorage) *Quotation {
	return &Quotation{storage}
}

// Create validates the draft (accumulating every violation), sanitizes
// free-text fields and persists the quotation. Ownership comes from the
// caller and status always starts Pending, whatever the client sent.
func (s *Quotation) Create(caller domain.User, draft domain.QuotationDraft) (domain.Quotation, error) {
	draft.Name = utils.SanitizeText(draft.Name)
	draft.Company = utils.SanitizeText(draft.Company)
	draft.RequirementDescription = utils.SanitizeText(draft.RequirementDescription)
	draft.Email = strings.ToLower(strings.TrimSpace(draft.Email))

	if err := validation.QuotationDraft(draft); err != nil {
		return domain.Quotation{}, err
	}

	return s.storage.SaveQuotation(domain.Quotation{
		CustomerId:             caller.Id,
		Name:                   draft.Name,
		Email:                  draft.Email,
		Phone:                  draft.Phone,
		Company:                draft.Company,
		RequirementDescription: draft.RequirementDescription,
		Budget:                 draft.Budget,
		Status:                 domain.StatusPending,
	})
}

// GetOwn returns the caller's quotations, newest first.
func (s *Quotation) GetOwn(caller domain.User) ([]domain.Quotation, error) {
	return s.storage.QuotationsByCustomer(caller.Id)
}

// Get returns one quotation. Owners and admins may view; anyone else is
// rejected, but only after the 404 check so absence is reported first.
func (s *Quotation) Get(caller domain.User, id domain.QuotationId) (domain.Quotation, error) {
	q, err := s.storage.QuotationById(id)
	if err != nil {
		return domain.Quotation{}, err
	}
	if q.CustomerId != caller.Id && !caller.IsAdmin() {
		return domain.Quotation{}, &errors.ErrorWithStatusCode{Message: "Not authorized", StatusCode: http.StatusForbidden}
	}
	return q, nil
}

// UpdateStatus overwrites a quotation's status. The raw value is checked
// before any storage write, so an invalid status never touches the record.
// Admin-ness is enforced upstream by the router's AdminOnly middleware.
func (s *Quotation) UpdateStatus(caller domain.User, id domain.QuotationId, rawStatus string) (domain.Quotation, error) {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return domain.Quotation{}, &errors.ErrorWithStatusCode{Message: "Invalid status", StatusCode: http.StatusBadRequest}
	}

	current, err := s.storage.QuotationById(id)
	if err != nil {
		return domain.Quotation{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		return domain.Quotation{}, &errors.ErrorWithStatusCode{Message: "Invalid status transition", StatusCode: http.StatusBadRequest}
	}

	return s.storage.UpdateQuotationStatus(id, status)
}

// Delete removes a quotation permanently. Admin-only, enforced upstream.
func (s *Quotation) Delete(caller domain.User, id domain.QuotationId) error {
	return s.storage.DeleteQuotation(id)
}

// ListAll returns every quotation with owner contact details, newest
// first. Admin-only, enforced upstream.
func (s *Quotation) ListAll(caller domain.User) ([]domain.AdminQuotation, error) {
	return s.storage.AllQuotations()
}
