// internal/handlers/common.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanatevi/storefront-api/internal/services"
	"github.com/sanatevi/storefront-api/internal/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP: invalid
// input is a 400 validation failure, anything else is a storage failure
// propagated unchanged.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidInput) {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}

// parseUUIDQuery reads an optional UUID query parameter. The bool result
// reports whether parsing failed; an absent parameter yields (nil, false).
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, true
	}
	return &id, false
}

// parseIntQuery reads an optional integer query parameter, nil if absent.
// A supplied value comes back as-is; range checks belong to the services.
func parseIntQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
