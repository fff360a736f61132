// Package lifecycle derives where each customer sits in the
// estimate -> job -> invoice pipeline. Everything here is pure: no I/O, no
// shared state, identical inputs give identical output.
package lifecycle

import (
	"fieldservice/internal/domain/entities"
)

// customerView is the slice of the three collections that concerns one
// customer, precomputed once per derivation.
type customerView struct {
	needsEstimate  bool
	estimates      []entities.Estimate
	jobs           []entities.Job // excludes estimate visits
	estimateVisits []entities.Job
	invoices       []entities.Invoice
	invoicedJobs   map[string]struct{}
}

func newCustomerView(customerID string, needsEstimate bool, estimates []entities.Estimate, jobs []entities.Job, invoices []entities.Invoice) customerView {
	v := customerView{
		needsEstimate: needsEstimate,
		invoicedJobs:  map[string]struct{}{},
	}
	for _, e := range estimates {
		if e.CustomerID == customerID {
			v.estimates = append(v.estimates, e)
		}
	}
	for _, j := range jobs {
		if j.CustomerID != customerID {
			continue
		}
		if j.IsEstimateVisit() {
			v.estimateVisits = append(v.estimateVisits, j)
		} else {
			v.jobs = append(v.jobs, j)
		}
	}
	for _, inv := range invoices {
		if inv.CustomerID != customerID {
			continue
		}
		v.invoices = append(v.invoices, inv)
		if inv.JobID != "" {
			v.invoicedJobs[inv.JobID] = struct{}{}
		}
	}
	return v
}

func (v customerView) invoiced(j entities.Job) bool {
	_, ok := v.invoicedJobs[j.ID]
	return ok
}

// rule appends stage when applies holds. Rules are evaluated in slice order.
type rule struct {
	applies func(v customerView) bool
	stage   entities.Stage
}

// completed reports every real job invoiced and every invoice settled. A
// customer with no real jobs never counts as complete.
func (v customerView) completed() bool {
	if len(v.jobs) == 0 {
		return false
	}
	for _, j := range v.jobs {
		if !v.invoiced(j) {
			return false
		}
	}
	for _, inv := range v.invoices {
		if !inv.IsSettled() {
			return false
		}
	}
	return true
}

func (v customerView) onlyRejectedEstimates() bool {
	if len(v.estimates) == 0 {
		return false
	}
	for _, e := range v.estimates {
		if e.Status != entities.EstimateStatusRejected {
			return false
		}
	}
	return true
}

var pipelineRules = []rule{
	{
		applies: func(v customerView) bool {
			for _, inv := range v.invoices {
				if inv.IsOutstanding() {
					return true
				}
			}
			return false
		},
		stage: entities.StagePendingPayment,
	},
	{
		applies: func(v customerView) bool {
			for _, j := range v.jobs {
				if j.IsActive() {
					return true
				}
			}
			return false
		},
		stage: entities.StageJobScheduled,
	},
	{
		applies: func(v customerView) bool {
			for _, j := range v.estimateVisits {
				if j.IsActive() {
					return true
				}
			}
			return false
		},
		stage: entities.StageScheduledEstimate,
	},
	{
		applies: func(v customerView) bool { return v.hasEstimate(entities.EstimateStatusPending) },
		stage:   entities.StagePendingEstimate,
	},
	{
		applies: func(v customerView) bool { return v.hasEstimate(entities.EstimateStatusApproved) },
		stage:   entities.StageJobsQueue,
	},
	{
		applies: func(v customerView) bool {
			for _, j := range v.jobs {
				if j.Status == entities.JobStatusCompleted && !v.invoiced(j) {
					return true
				}
			}
			return false
		},
		stage: entities.StageNeedsInvoice,
	},
}

func (v customerView) hasEstimate(status entities.EstimateStatus) bool {
	for _, e := range v.estimates {
		if e.Status == status {
			return true
		}
	}
	return false
}

// DeriveStages returns the ordered stages a customer currently occupies. An
// empty result means the customer has nothing in flight.
func DeriveStages(customerID string, needsEstimate bool, estimates []entities.Estimate, jobs []entities.Job, invoices []entities.Invoice) []entities.Stage {
	v := newCustomerView(customerID, needsEstimate, estimates, jobs, invoices)

	if v.completed() {
		return []entities.Stage{}
	}

	stages := []entities.Stage{}
	if v.needsEstimate {
		stages = append(stages, entities.StageEstimatesQueue)
	}

	if v.onlyRejectedEstimates() {
		return []entities.Stage{}
	}

	for _, r := range pipelineRules {
		if r.applies(v) {
			stages = append(stages, r.stage)
		}
	}
	return stages
}
