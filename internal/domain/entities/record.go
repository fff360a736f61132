package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DataType names one cached entity collection. It is also the fetch ledger
// key, the mirror namespace and the default remote table name.
type DataType string

const (
	DataTypeCustomers DataType = "customers"
	DataTypeEstimates DataType = "estimates"
	DataTypeJobs      DataType = "jobs"
	DataTypeInvoices  DataType = "invoices"
)

// DataTypes lists every collection in a stable order.
var DataTypes = []DataType{DataTypeCustomers, DataTypeEstimates, DataTypeJobs, DataTypeInvoices}

func ParseDataType(s string) (DataType, bool) {
	for _, dt := range DataTypes {
		if string(dt) == s {
			return dt, true
		}
	}
	return "", false
}

// Record is implemented by every entity held in an entity store.
type Record[T any] interface {
	RecordID() string
	WithRecordID(id string) T
}

// Patch is a partial update keyed by JSON field name.
type Patch map[string]any

const (
	patchFieldID        = "id"
	patchFieldUpdatedAt = "updated_at"
)

var ErrEmptyPatch = errors.New("empty patch")

// Normalized returns a copy without the immutable id field and stamped with
// updated_at.
func (p Patch) Normalized(now time.Time) (Patch, error) {
	out := make(Patch, len(p)+1)
	for k, v := range p {
		if k == patchFieldID {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil, ErrEmptyPatch
	}
	out[patchFieldUpdatedAt] = now.UTC().Format(time.RFC3339Nano)
	return out, nil
}

// ApplyPatch overlays patch onto rec through the record's JSON shape.
func ApplyPatch[T any](rec T, patch Patch) (T, error) {
	var zero T
	raw, err := json.Marshal(rec)
	if err != nil {
		return zero, err
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return zero, err
	}
	for k, v := range patch {
		if k == patchFieldID {
			continue
		}
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, fmt.Errorf("apply patch: %w", err)
	}
	return out, nil
}
