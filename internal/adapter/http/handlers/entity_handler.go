package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// EntityHandler exposes one entity store over HTTP. R is the create payload
// accepted for T.
type EntityHandler[T entities.Record[T], R request.Creatable[T]] struct {
	store usecase.IEntityStore[T]
	rules request.PatchRules
	now   func() time.Time
}

func NewEntityHandler[T entities.Record[T], R request.Creatable[T]](store usecase.IEntityStore[T], rules request.PatchRules) *EntityHandler[T, R] {
	return &EntityHandler[T, R]{store: store, rules: rules, now: time.Now}
}

// List returns the store state, fetching first when the collection is stale.
// refresh=true bypasses the freshness window.
func (h *EntityHandler[T, R]) List(c *gin.Context) {
	force := false
	if raw := c.Query("refresh"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
			return
		}
		force = v
	}

	if err := h.store.Fetch(c.Request.Context(), force); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStoreState(h.store.Snapshot()))
}

// Create accepts a single object or an array of objects.
func (h *EntityHandler[T, R]) Create(c *gin.Context) {
	payloads, err := decodePayloads[R](c)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	now := h.now()
	records := make([]T, 0, len(payloads))
	for _, p := range payloads {
		rec, err := p.ToEntity(now)
		if err != nil {
			respondError(c, err)
			return
		}
		records = append(records, rec)
	}

	created, err := h.store.Add(c.Request.Context(), records...)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse[T]{Records: created})
}

func (h *EntityHandler[T, R]) Update(c *gin.Context) {
	var payload request.PatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	patch, err := payload.ToPatch(h.rules)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EntityHandler[T, R]) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// decodePayloads reads either a JSON object or a JSON array of objects and
// validates each element's binding tags.
func decodePayloads[R any](c *gin.Context) ([]R, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errInvalidPayload
	}

	var payloads []R
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &payloads); err != nil {
			return nil, err
		}
	} else {
		var one R
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, err
		}
		payloads = []R{one}
	}
	if len(payloads) == 0 {
		return nil, errInvalidPayload
	}
	for i := range payloads {
		if err := binding.Validator.ValidateStruct(&payloads[i]); err != nil {
			return nil, err
		}
	}
	return payloads, nil
}
