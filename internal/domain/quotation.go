package domain

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// ParseStatus validates a raw status value coming from a client.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q", raw)
	}
	return s, nil
}

// CanTransitionTo reports whether a status change is allowed. Every
// transition between valid statuses is currently permitted; keeping the
// check here means a restricted state machine is a one-place change.
func (s Status) CanTransitionTo(to Status) bool {
	return to.Valid()
}

type Quotation struct {
	Id                     QuotationId `json:"id"`
	CustomerId             UserId      `json:"customerId"`
	Name                   string      `json:"name"`
	Email                  Email       `json:"email"`
	Phone                  string      `json:"phone"`
	Company                string      `json:"company"`
	RequirementDescription string      `json:"requirementDescription"`
	Budget                 float64     `json:"budget"`
	Status                 Status      `json:"status"`
	CreatedAt              time.Time   `json:"createdAt"`
	UpdatedAt              time.Time   `json:"updatedAt"`
}

// QuotationDraft carries the customer-supplied fields of a new quotation.
// Owner and status are never taken from the client.
type QuotationDraft struct {
	Name                   string  `json:"name"`
	Email                  Email   `json:"email"`
	Phone                  string  `json:"phone"`
	Company                string  `json:"company"`
	RequirementDescription string  `json:"requirementDescription"`
	Budget                 float64 `json:"budget"`
}

// AdminQuotation is a quotation joined with its owner's contact details
// for the admin listing.
type AdminQuotation struct {
	Quotation
	CustomerName  string `json:"customerName"`
	CustomerEmail Email  `json:"customerEmail"`
}

type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
