package response

import (
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/lifecycle"
	"fieldservice/internal/resilience"
	"fieldservice/internal/usecase"
)

type ErrorResponse struct {
	Category    string   `json:"category"`
	Code        string   `json:"code,omitempty"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	CanRetry    bool     `json:"can_retry"`
}

func FromStandardError(e *resilience.Error) *ErrorResponse {
	if e == nil {
		return nil
	}
	return &ErrorResponse{
		Category:    string(e.Category),
		Code:        e.Code,
		Message:     e.Message,
		Suggestions: e.Suggestions,
		CanRetry:    e.CanRetry(),
	}
}

// ListResponse is the observable state of one entity store.
type ListResponse[T any] struct {
	Records []T            `json:"records"`
	Count   int            `json:"count"`
	Loading bool           `json:"loading"`
	Notice  string         `json:"notice,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

func FromStoreState[T any](s usecase.StoreState[T]) ListResponse[T] {
	records := s.Records
	if records == nil {
		records = []T{}
	}
	return ListResponse[T]{
		Records: records,
		Count:   len(records),
		Loading: s.Loading,
		Notice:  s.Notice,
		Error:   FromStandardError(s.Error),
	}
}

type CreatedResponse[T any] struct {
	Records []T `json:"records"`
}

type StagesResponse struct {
	CustomerID string                 `json:"customer_id"`
	Stages     []entities.Stage       `json:"stages"`
	Groups     []lifecycle.StageGroup `json:"groups"`
}

func FromStages(customerID string, stages []entities.Stage) StagesResponse {
	if stages == nil {
		stages = []entities.Stage{}
	}
	return StagesResponse{
		CustomerID: customerID,
		Stages:     stages,
		Groups:     lifecycle.GroupByCategory(stages),
	}
}

type BoardColumnResponse struct {
	Category string                `json:"category"`
	Total    int                   `json:"total"`
	Cards    []lifecycle.BoardCard `json:"cards"`
}

type BoardResponse struct {
	Page    int                   `json:"page"`
	Size    int                   `json:"size"`
	Columns []BoardColumnResponse `json:"columns"`
}

// FromBoard pages every column of the board. A non-empty category keeps only
// that column.
func FromBoard(b lifecycle.Board, category entities.StageCategory, page, size int) BoardResponse {
	out := BoardResponse{Page: page, Size: size, Columns: []BoardColumnResponse{}}
	for _, col := range b.Columns {
		if category != "" && col.Category != category {
			continue
		}
		out.Columns = append(out.Columns, BoardColumnResponse{
			Category: string(col.Category),
			Total:    len(col.Cards),
			Cards:    col.Page(page, size),
		})
	}
	return out
}

type SyncOperationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Operation string    `json:"operation"`
	Data      any       `json:"data"`
	QueuedAt  time.Time `json:"queued_at"`
}

type PendingSyncResponse struct {
	Count      int                     `json:"count"`
	Operations []SyncOperationResponse `json:"operations"`
}

func FromSyncOperations(ops []entities.SyncOperation) PendingSyncResponse {
	out := PendingSyncResponse{Count: len(ops), Operations: make([]SyncOperationResponse, 0, len(ops))}
	for _, op := range ops {
		out.Operations = append(out.Operations, SyncOperationResponse{
			ID:        op.ID,
			Type:      string(op.Type),
			Operation: string(op.Operation),
			Data:      op.Data,
			QueuedAt:  op.QueuedAt,
		})
	}
	return out
}
