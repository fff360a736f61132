package entities

import "time"

// SyncAction is the kind of mutation recorded while offline.
type SyncAction string

const (
	SyncActionCreate SyncAction = "create"
	SyncActionUpdate SyncAction = "update"
	SyncActionDelete SyncAction = "delete"
)

func (a SyncAction) Valid() bool {
	switch a {
	case SyncActionCreate, SyncActionUpdate, SyncActionDelete:
		return true
	}
	return false
}

// SyncOperation is one mutation waiting for the sync queue to flush it.
//
// Data holds the created record for create, {"id", "patch"} for update and
// {"id"} for delete. Operations read back from a queue carry Data decoded as
// generic maps.
type SyncOperation struct {
	ID        int64      `json:"id,omitempty"`
	Type      DataType   `json:"type"`
	Operation SyncAction `json:"operation"`
	Data      any        `json:"data"`
	QueuedAt  time.Time  `json:"queued_at"`
}
