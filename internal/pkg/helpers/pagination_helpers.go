package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseLimitOffset extracts limit and offset query parameters, clamping the
// limit to [1, MaxLimit] and the offset to >= 0.
func ParseLimitOffset(c *gin.Context) (limit, offset int) {
	limit = DefaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil {
		if v > 0 && v <= MaxLimit {
			limit = v
		} else if v > MaxLimit {
			limit = MaxLimit
		}
	}

	if v, err := strconv.Atoi(c.DefaultQuery("offset", "")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
