package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "fieldservice/internal/adapter/http/dto/request"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/resilience"
	"fieldservice/internal/usecase"
	"fieldservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

var categoryStatus = map[resilience.Category]int{
	resilience.CategoryValidation:     http.StatusBadRequest,
	resilience.CategoryAuthentication: http.StatusUnauthorized,
	resilience.CategoryAuthorization:  http.StatusForbidden,
	resilience.CategoryNotFound:       http.StatusNotFound,
	resilience.CategoryOffline:        http.StatusServiceUnavailable,
	resilience.CategoryNetwork:        http.StatusServiceUnavailable,
	resilience.CategoryServer:         http.StatusServiceUnavailable,
	resilience.CategoryDatabase:       http.StatusServiceUnavailable,
	resilience.CategoryUnknown:        http.StatusInternalServerError,
}

func mapStoreError(err error) *pkg.AppError {
	var stdErr *resilience.Error
	switch {
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidRecordID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrNoRecords),
		errors.Is(err, entities.ErrEmptyPatch),
		errors.Is(err, request.ErrUnknownField),
		errors.Is(err, request.ErrInvalidStatus),
		errors.Is(err, request.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.As(err, &stdErr):
		status, ok := categoryStatus[stdErr.Category]
		if !ok {
			status = http.StatusInternalServerError
		}
		code := strings.ToUpper(string(stdErr.Category)) + "_ERROR"
		return pkg.NewDomainError(code, stdErr.Message, stdErr, status).WithSuggestions(stdErr.Suggestions)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapStoreError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
