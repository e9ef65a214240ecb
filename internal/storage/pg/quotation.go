package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/quotedesk/quotedesk/internal/domain"
	internal_errors "github.com/quotedesk/quotedesk/internal/errors"
)

const quotationColumns = "id, customer_id, name, email, phone, company, requirement_description, budget, status, created_at, updated_at"

// Listings are newest-first; the seq column breaks created_at ties in
// insertion order.
const quotationOrder = "ORDER BY created_at DESC, seq ASC"

// SaveQuotation inserts a new quotation and returns the stored record
// with its generated id and timestamps.
func (s *Storage) SaveQuotation(q domain.Quotation) (domain.Quotation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	q.Id = uuid.NewString()

	var saved domain.Quotation
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return insertQuotation(tx, q, &saved)
	})
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("failed to insert quotation: %w", err)
	}
	return saved, nil
}

func insertQuotation(db Querier, q domain.Quotation, saved *domain.Quotation) error {
	return scanQuotation(db.QueryRow(`
        INSERT INTO quotations(id, customer_id, name, email, phone, company, requirement_description, budget, status)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING `+quotationColumns,
		q.Id, q.CustomerId, q.Name, q.Email, q.Phone, q.Company, q.RequirementDescription, q.Budget, q.Status,
	), saved)
}

// QuotationById fetches a single quotation.
func (s *Storage) QuotationById(id domain.QuotationId) (domain.Quotation, error) {
	var q domain.Quotation
	err := scanQuotation(s.db.QueryRow(
		"SELECT "+quotationColumns+" FROM quotations WHERE id = $1", id,
	), &q)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Quotation{}, &internal_errors.ErrorWithStatusCode{Message: "Quotation not found", StatusCode: http.StatusNotFound}
		}
		return domain.Quotation{}, fmt.Errorf("failed to query quotation: %w", err)
	}
	return q, nil
}

// QuotationsByCustomer returns the customer's quotations, newest first.
func (s *Storage) QuotationsByCustomer(customerId domain.UserId) ([]domain.Quotation, error) {
	rows, err := s.db.Query(
		"SELECT "+quotationColumns+" FROM quotations WHERE customer_id = $1 "+quotationOrder,
		customerId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotations: %w", err)
	}
	defer rows.Close()

	quotations := []domain.Quotation{}
	for rows.Next() {
		var q domain.Quotation
		if err := scanQuotation(rows, &q); err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		quotations = append(quotations, q)
	}
	return quotations, rows.Err()
}

// AllQuotations returns every quotation joined with its owner's name and
// email for the admin listing, newest first.
func (s *Storage) AllQuotations() ([]domain.AdminQuotation, error) {
	rows, err := s.db.Query(`
        SELECT q.id, q.customer_id, q.name, q.email, q.phone, q.company, q.requirement_description,
               q.budget, q.status, q.created_at, q.updated_at, u.name, u.email
        FROM quotations q
        JOIN users u ON u.id = q.customer_id
        ORDER BY q.created_at DESC, q.seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotations: %w", err)
	}
	defer rows.Close()

	quotations := []domain.AdminQuotation{}
	for rows.Next() {
		var q domain.AdminQuotation
		err := rows.Scan(&q.Id, &q.CustomerId, &q.Name, &q.Email, &q.Phone, &q.Company,
			&q.RequirementDescription, &q.Budget, &q.Status, &q.CreatedAt, &q.UpdatedAt,
			&q.CustomerName, &q.CustomerEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		quotations = append(quotations, q)
	}
	return quotations, rows.Err()
}

// UpdateQuotationStatus overwrites the status and bumps updated_at,
// returning the updated record.
func (s *Storage) UpdateQuotationStatus(id domain.QuotationId, status domain.Status) (domain.Quotation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var updated domain.Quotation
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := scanQuotation(tx.QueryRow(`
            UPDATE quotations SET status = $1, updated_at = now()
            WHERE id = $2
            RETURNING `+quotationColumns,
			status, id,
		), &updated)
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.ErrorWithStatusCode{Message: "Quotation not found", StatusCode: http.StatusNotFound}
		}
		return err
	})
	if err != nil {
		return domain.Quotation{}, err
	}
	return updated, nil
}

// DeleteQuotation removes the record permanently.
func (s *Storage) DeleteQuotation(id domain.QuotationId) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM quotations WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete quotation: %w", err)
		}
		rowsDeleted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows for quotation deletion: %w", err)
		}
		if rowsDeleted == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Quotation not found", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}

// QuotationCount returns the total number of quotations.
func (s *Storage) QuotationCount() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT count(*) FROM quotations").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quotations: %w", err)
	}
	return count, nil
}

// QuotationCountByStatus returns the number of quotations in one status.
func (s *Storage) QuotationCountByStatus(status domain.Status) (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT count(*) FROM quotations WHERE status = $1", status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quotations by status: %w", err)
	}
	return count, nil
}

// scanner lets scanQuotation work with both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanQuotation(row scanner, q *domain.Quotation) error {
	return row.Scan(&q.Id, &q.CustomerId, &q.Name, &q.Email, &q.Phone, &q.Company,
		&q.RequirementDescription, &q.Budget, &q.Status, &q.CreatedAt, &q.UpdatedAt)
}
