package entities

import "time"

// InvoiceStatus represents the collection state of an invoice.
//
// draft and overdue are both waiting for money; paid and void are settled.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

// Invoice bills a customer, usually for one completed job.
//
// Storage model:
//   - PK: id
//   - customer_id references Customer.ID
//   - job_id optionally references Job.ID
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	JobID      string        `json:"job_id,omitempty"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	DueDate    *time.Time    `json:"due_date,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (i Invoice) RecordID() string { return i.ID }

func (i Invoice) WithRecordID(id string) Invoice {
	i.ID = id
	return i
}

// IsSettled reports whether nothing more is owed on the invoice.
func (i Invoice) IsSettled() bool {
	return i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusVoid
}

// IsOutstanding reports whether the invoice still waits for payment.
func (i Invoice) IsOutstanding() bool {
	return i.Status == InvoiceStatusDraft || i.Status == InvoiceStatusOverdue
}

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusOverdue, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}
