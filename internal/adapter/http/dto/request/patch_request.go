package request

import (
	"errors"
	"fmt"

	"fieldservice/internal/domain/entities"
)

var ErrUnknownField = errors.New("unknown field")

// PatchRules lists the fields a client may change on one record type.
type PatchRules struct {
	Fields      map[string]bool
	ValidStatus func(status string) bool
}

var (
	CustomerPatchRules = PatchRules{
		Fields: fields("name", "email", "phone", "address", "needs_estimate"),
	}
	EstimatePatchRules = PatchRules{
		Fields:      fields("customer_id", "amount", "status", "notes"),
		ValidStatus: func(s string) bool { return entities.EstimateStatus(s).Valid() },
	}
	JobPatchRules = PatchRules{
		Fields:      fields("customer_id", "estimate_id", "description", "status", "scheduled_date"),
		ValidStatus: func(s string) bool { return entities.JobStatus(s).Valid() },
	}
	InvoicePatchRules = PatchRules{
		Fields:      fields("customer_id", "job_id", "amount", "status", "due_date"),
		ValidStatus: func(s string) bool { return entities.InvoiceStatus(s).Valid() },
	}
)

func fields(names ...string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}

// PatchRequest is a partial update keyed by JSON field name.
type PatchRequest map[string]any

func (r PatchRequest) ToPatch(rules PatchRules) (entities.Patch, error) {
	if len(r) == 0 {
		return nil, entities.ErrEmptyPatch
	}
	out := make(entities.Patch, len(r))
	for k, v := range r {
		if !rules.Fields[k] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, k)
		}
		if k == "status" && rules.ValidStatus != nil {
			s, ok := v.(string)
			if !ok || !rules.ValidStatus(s) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, v)
			}
		}
		out[k] = v
	}
	return out, nil
}
