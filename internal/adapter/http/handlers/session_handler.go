package handlers

import (
	"net/http"

	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// SessionHandler controls the loaded data of the current session and
// reports mutations still waiting to sync.
type SessionHandler struct {
	session usecase.ISessionUseCase
	queue   interfaces.ISyncQueue
}

func NewSessionHandler(session usecase.ISessionUseCase, queue interfaces.ISyncQueue) *SessionHandler {
	return &SessionHandler{session: session, queue: queue}
}

// Reset forgets everything loaded so the next request refetches.
func (h *SessionHandler) Reset(c *gin.Context) {
	h.session.ResetSession()
	c.Status(http.StatusNoContent)
}

// Refresh force-fetches every collection.
func (h *SessionHandler) Refresh(c *gin.Context) {
	if err := h.session.RefreshAll(c.Request.Context(), true); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) PendingSync(c *gin.Context) {
	if h.queue == nil {
		c.JSON(http.StatusOK, response.FromSyncOperations(nil))
		return
	}
	ops, err := h.queue.Pending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSyncOperations(ops))
}
