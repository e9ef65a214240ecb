package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quotedesk/quotedesk/internal/domain"
	"github.com/quotedesk/quotedesk/internal/utils"
)

type createQuotationRequest struct {
	Name                   string  `json:"name"`
	Email                  string  `json:"email"`
	Phone                  string  `json:"phone"`
	Company                string  `json:"company"`
	RequirementDescription string  `json:"requirementDescription"`
	Budget                 float64 `json:"budget"`
	// Status is deliberately absent: new quotations always start Pending.
}

type updateStatusRequest struct {
	Status string `validate:"required" json:"status"`
}

type quotationResponse struct {
	Message   string           `json:"message,omitempty"`
	Quotation domain.Quotation `json:"quotation"`
}

type quotationListResponse struct {
	Count      int                `json:"count"`
	Quotations []domain.Quotation `json:"quotations"`
}

type adminQuotationListResponse struct {
	Count      int                     `json:"count"`
	Quotations []domain.AdminQuotation `json:"quotations"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	// Plain decode: missing fields fall through to the accumulated
	// field validation so the client gets every violation at once.
	var body createQuotationRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	quotation, err := h.quotation.Create(caller, domain.QuotationDraft{
		Name:                   body.Name,
		Email:                  body.Email,
		Phone:                  body.Phone,
		Company:                body.Company,
		RequirementDescription: body.RequirementDescription,
		Budget:                 body.Budget,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSONStatus(w, http.StatusCreated, quotationResponse{
		Message:   "Quotation created successfully",
		Quotation: quotation,
	})
}

func (h *Handler) MyQuotations(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	quotations, err := h.quotation.GetOwn(caller)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, quotationListResponse{Count: len(quotations), Quotations: quotations})
}

func (h *Handler) GetQuotation(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	quotation, err := h.quotation.Get(caller, chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, quotationResponse{Quotation: quotation})
}

func (h *Handler) AllQuotations(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	quotations, err := h.quotation.ListAll(caller)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, adminQuotationListResponse{Count: len(quotations), Quotations: quotations})
}

func (h *Handler) UpdateQuotationStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	var body updateStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	quotation, err := h.quotation.UpdateStatus(caller, chi.URLParam(r, "id"), body.Status)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, quotationResponse{
		Message:   "Quotation status updated",
		Quotation: quotation,
	})
}

func (h *Handler) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	if err := h.quotation.Delete(caller, chi.URLParam(r, "id")); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, messageResponse{Message: "Quotation deleted successfully"})
}
