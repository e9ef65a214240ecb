package domain

type (
	Email    = string
	Password = string

	// Ids are opaque uuid strings generated at insert time.
	UserId      = string
	QuotationId = string
)
