package client

import (
	"fmt"
	"net/http"

	"github.com/quotedesk/quotedesk/internal/domain"
)

type quotationEnvelope struct {
	Message   string           `json:"message"`
	Quotation domain.Quotation `json:"quotation"`
}

// CreateQuotation submits a new quotation request for the authenticated user.
func (c *Client) CreateQuotation(draft domain.QuotationDraft) (domain.Quotation, error) {
	var response quotationEnvelope
	if err := c.doInto("POST", "/quotations", draft, http.StatusCreated, &response); err != nil {
		return domain.Quotation{}, err
	}
	return response.Quotation, nil
}

// MyQuotations lists the authenticated user's own quotations, newest first.
func (c *Client) MyQuotations() ([]domain.Quotation, error) {
	var response struct {
		Count      int                `json:"count"`
		Quotations []domain.Quotation `json:"quotations"`
	}
	if err := c.doInto("GET", "/quotations/my-quotations", nil, http.StatusOK, &response); err != nil {
		return nil, err
	}
	return response.Quotations, nil
}

// Quotation fetches a single quotation. The caller must own it or be an admin.
func (c *Client) Quotation(id domain.QuotationId) (domain.Quotation, error) {
	var response quotationEnvelope
	if err := c.doInto("GET", fmt.Sprintf("/quotations/%s", id), nil, http.StatusOK, &response); err != nil {
		return domain.Quotation{}, err
	}
	return response.Quotation, nil
}

// AllQuotations lists every quotation with owner details. Admin only.
func (c *Client) AllQuotations() ([]domain.AdminQuotation, error) {
	var response struct {
		Count      int                     `json:"count"`
		Quotations []domain.AdminQuotation `json:"quotations"`
	}
	if err := c.doInto("GET", "/quotations", nil, http.StatusOK, &response); err != nil {
		return nil, err
	}
	return response.Quotations, nil
}

// UpdateQuotationStatus sets a quotation's status. Admin only.
func (c *Client) UpdateQuotationStatus(id domain.QuotationId, status domain.Status) (domain.Quotation, error) {
	body := map[string]string{"status": string(status)}

	var response quotationEnvelope
	if err := c.doInto("PATCH", fmt.Sprintf("/quotations/%s/status", id), body, http.StatusOK, &response); err != nil {
		return domain.Quotation{}, err
	}
	return response.Quotation, nil
}

// DeleteQuotation removes a quotation. Admin only.
func (c *Client) DeleteQuotation(id domain.QuotationId) error {
	return c.doInto("DELETE", fmt.Sprintf("/quotations/%s", id), nil, http.StatusOK, nil)
}
