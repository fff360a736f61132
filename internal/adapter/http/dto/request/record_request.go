package request

import (
	"errors"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Creatable is a create payload that converts into a record.
type Creatable[T any] interface {
	ToEntity(now time.Time) (T, error)
}

// CustomerRequest creates a customer. ID is optional; the store assigns one.
type CustomerRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	NeedsEstimate bool   `json:"needs_estimate"`
}

func (r CustomerRequest) ToEntity(now time.Time) (entities.Customer, error) {
	now = now.UTC()
	return entities.Customer{
		ID:            strings.TrimSpace(r.ID),
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.TrimSpace(r.Email),
		Phone:         strings.TrimSpace(r.Phone),
		Address:       strings.TrimSpace(r.Address),
		NeedsEstimate: r.NeedsEstimate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// EstimateRequest creates an estimate; status defaults to pending.
type EstimateRequest struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id" binding:"required"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
}

func (r EstimateRequest) ToEntity(now time.Time) (entities.Estimate, error) {
	status := entities.EstimateStatus(normalizeStatus(r.Status, string(entities.EstimateStatusPending)))
	if !status.Valid() {
		return entities.Estimate{}, ErrInvalidStatus
	}
	if r.Amount < 0 {
		return entities.Estimate{}, ErrInvalidAmount
	}
	now = now.UTC()
	return entities.Estimate{
		ID:         strings.TrimSpace(r.ID),
		CustomerID: strings.TrimSpace(r.CustomerID),
		Amount:     r.Amount,
		Status:     status,
		Notes:      r.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// JobRequest creates a job; status defaults to scheduled.
type JobRequest struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id" binding:"required"`
	EstimateID    string     `json:"estimate_id"`
	Description   string     `json:"description" binding:"required"`
	Status        string     `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date"`
}

func (r JobRequest) ToEntity(now time.Time) (entities.Job, error) {
	status := entities.JobStatus(normalizeStatus(r.Status, string(entities.JobStatusScheduled)))
	if !status.Valid() {
		return entities.Job{}, ErrInvalidStatus
	}
	now = now.UTC()
	return entities.Job{
		ID:            strings.TrimSpace(r.ID),
		CustomerID:    strings.TrimSpace(r.CustomerID),
		EstimateID:    strings.TrimSpace(r.EstimateID),
		Description:   strings.TrimSpace(r.Description),
		Status:        status,
		ScheduledDate: r.ScheduledDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// InvoiceRequest creates an invoice; status defaults to draft.
type InvoiceRequest struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id" binding:"required"`
	JobID      string     `json:"job_id"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	DueDate    *time.Time `json:"due_date"`
}

func (r InvoiceRequest) ToEntity(now time.Time) (entities.Invoice, error) {
	status := entities.InvoiceStatus(normalizeStatus(r.Status, string(entities.InvoiceStatusDraft)))
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidStatus
	}
	if r.Amount < 0 {
		return entities.Invoice{}, ErrInvalidAmount
	}
	now = now.UTC()
	return entities.Invoice{
		ID:         strings.TrimSpace(r.ID),
		CustomerID: strings.TrimSpace(r.CustomerID),
		JobID:      strings.TrimSpace(r.JobID),
		Amount:     r.Amount,
		Status:     status,
		DueDate:    r.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func normalizeStatus(s, def string) string {
	if v := strings.ToLower(strings.TrimSpace(s)); v != "" {
		return v
	}
	return def
}
