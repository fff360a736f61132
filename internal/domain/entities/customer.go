package entities

import "time"

// Customer is the root of the estimate -> job -> invoice pipeline.
//
// NeedsEstimate is raised by the office when the customer asked for a quote
// that has not been written yet; it places the customer in the estimates
// queue.
type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	NeedsEstimate bool      `json:"needs_estimate"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c Customer) RecordID() string { return c.ID }

func (c Customer) WithRecordID(id string) Customer {
	c.ID = id
	return c
}
