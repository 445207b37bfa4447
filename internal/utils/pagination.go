// internal/utils/pagination.go
package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// LimitOffset is the pagination window shared by list endpoints. A nil
// Limit means "not supplied"; bound checks and defaulting belong to the
// service layer, which rejects out-of-range values instead of clamping.
// An explicit limit of 0 is out of bounds, not a request for the default,
// so supplied and absent must stay distinguishable.
type LimitOffset struct {
	Limit  *int
	Offset int
}

// ParseLimitOffset reads limit/offset query parameters. Absent parameters
// stay unset; malformed values are an error, never silently defaulted.
func ParseLimitOffset(c *gin.Context) (LimitOffset, error) {
	var window LimitOffset

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return window, fmt.Errorf("limit must be an integer")
		}
		window.Limit = &limit
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return window, fmt.Errorf("offset must be an integer")
		}
		window.Offset = offset
	}

	return window, nil
}

// HasMore reports whether rows exist beyond the current window.
func HasMore(total int64, limit, offset int) bool {
	return total > int64(offset+limit)
}
