package entities

import "time"

// EstimateStatus represents the lifecycle of a customer estimate.
//
// Domain notes:
//   - A pending estimate has been sent and awaits the customer's answer.
//   - An approved estimate becomes billable work once a job is scheduled.
//   - A customer whose estimates are all rejected is considered inactive.
type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// Estimate is a priced proposal for a customer.
//
// Storage model:
//   - PK: id
//   - customer_id references Customer.ID
type Estimate struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Amount     float64        `json:"amount"`
	Status     EstimateStatus `json:"status"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (e Estimate) RecordID() string { return e.ID }

func (e Estimate) WithRecordID(id string) Estimate {
	e.ID = id
	return e
}

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusPending, EstimateStatusApproved, EstimateStatusRejected:
		return true
	}
	return false
}
