package entities

import (
	"strings"
	"time"
)

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// estimateVisitMarker identifies jobs booked only to look at the site before
// quoting. They are never billable.
const estimateVisitMarker = "estimate visit"

// Job is scheduled field work for a customer.
//
// Storage model:
//   - PK: id
//   - customer_id references Customer.ID
//   - estimate_id optionally references the approved Estimate
type Job struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	EstimateID    string     `json:"estimate_id,omitempty"`
	Description   string     `json:"description"`
	Status        JobStatus  `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (j Job) RecordID() string { return j.ID }

func (j Job) WithRecordID(id string) Job {
	j.ID = id
	return j
}

// IsEstimateVisit reports whether the job is a pre-estimate site visit.
func (j Job) IsEstimateVisit() bool {
	return strings.Contains(strings.ToLower(j.Description), estimateVisitMarker)
}

// IsActive reports whether the job is on the calendar or being worked.
func (j Job) IsActive() bool {
	return j.Status == JobStatusScheduled || j.Status == JobStatusInProgress
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}
