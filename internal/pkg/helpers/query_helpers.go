package helpers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// OptionalBoolQuery returns a pointer to the boolean value of key, or nil when the
// parameter is absent. Only the literal "true" is true.
func OptionalBoolQuery(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v := raw == "true"
	return &v
}

// OptionalInt64Query returns the positive int64 value of key, or nil when absent.
// ok is false when the parameter is present but not a positive number.
func OptionalInt64Query(c *gin.Context, key string) (value *int64, ok bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, false
	}
	return &v, true
}

// ParseID parses a positive int64 path parameter.
func ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
