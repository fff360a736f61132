package handlers

import (
	"net/http"
	"strconv"

	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 0
	defaultPageSize = 20
	maxPageSize     = 100
)

// PipelineHandler serves derived lifecycle stages.
type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

func (h *PipelineHandler) GetCustomerStages(c *gin.Context) {
	id := c.Param("id")
	stages, err := h.usecase.StagesFor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStages(id, stages))
}

// GetBoard returns every pipeline column, or only ?category=, paged with
// ?page= (zero-based) and ?size=.
func (h *PipelineHandler) GetBoard(c *gin.Context) {
	category := entities.StageCategory(c.Query("category"))
	if category != "" && !validCategory(category) {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	page, ok := intQuery(c, "page", defaultPage)
	if !ok || page < 0 {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	size, ok := intQuery(c, "size", defaultPageSize)
	if !ok || size <= 0 || size > maxPageSize {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	board, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBoard(board, category, page, size))
}

func validCategory(cat entities.StageCategory) bool {
	for _, c := range entities.StageCategories {
		if c == cat {
			return true
		}
	}
	return false
}

func intQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}
