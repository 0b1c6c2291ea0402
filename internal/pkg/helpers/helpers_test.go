package helpers

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        PageRequest
	}{
		{"defaults", 0, 0, PageRequest{1, 10}},
		{"negative page", -3, 20, PageRequest{1, 20}},
		{"capped limit", 2, 500, PageRequest{2, 100}},
		{"negative limit", 4, -1, PageRequest{4, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageRequest(tt.page, tt.limit))
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, uint64(0), NewPageRequest(1, 10).Offset())
	assert.Equal(t, uint64(40), NewPageRequest(3, 20).Offset())

	assert.Equal(t, uint64(10), NewPageRequest(2, 0).Offset())
}

func TestNewPageRequest_ClampsHugePage(t *testing.T) {
	p := NewPageRequest(math.MaxInt, MaxPageSize)
	assert.Equal(t, MaxPage, p.Page)
	assert.Equal(t, uint64(MaxPage-1)*MaxPageSize, p.Offset())

	parsed := ParsePaginationParams(testContext(t, "/x?page=9223372036854775807&limit=100"))
	assert.Equal(t, MaxPage, parsed.Page)
	assert.Less(t, parsed.Offset(), uint64(math.MaxInt32))
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, PageRequest{Page: 2, Limit: 10})
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(25), info.TotalItems)
	assert.Equal(t, 10, info.ItemsPerPage)
	assert.True(t, info.HasNextPage)
	assert.True(t, info.HasPrevPage)

	last := NewPaginationInfo(25, PageRequest{Page: 3, Limit: 10})
	assert.False(t, last.HasNextPage)

	empty := NewPaginationInfo(0, PageRequest{Page: 1, Limit: 10})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPrevPage)
}

func TestParsePaginationParams(t *testing.T) {
	assert.Equal(t, PageRequest{2, 5}, ParsePaginationParams(testContext(t, "/x?page=2&limit=5")))
	assert.Equal(t, PageRequest{1, 30}, ParsePaginationParams(testContext(t, "/x?size=30")))
	assert.Equal(t, PageRequest{1, 100}, ParsePaginationParams(testContext(t, "/x?limit=1000")))
	assert.Equal(t, PageRequest{1, 10}, ParsePaginationParams(testContext(t, "/x?page=abc&limit=zz")))
}

func TestOptionalBoolQuery(t *testing.T) {
	assert.Nil(t, OptionalBoolQuery(testContext(t, "/x"), "isActive"))

	v := OptionalBoolQuery(testContext(t, "/x?isActive=true"), "isActive")
	require.NotNil(t, v)
	assert.True(t, *v)

	v = OptionalBoolQuery(testContext(t, "/x?isActive=yes"), "isActive")
	require.NotNil(t, v)
	assert.False(t, *v)
}

func TestOptionalInt64Query(t *testing.T) {
	v, ok := OptionalInt64Query(testContext(t, "/x"), "courseId")
	assert.True(t, ok)
	assert.Nil(t, v)

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		v, ok = OptionalInt64Query(testContext(t, "/x?courseId="+raw), "courseId")
		assert.False(t, ok, raw)
		assert.Nil(t, v, raw)
	}

	v, ok = OptionalInt64Query(testContext(t, "/x?courseId=12"), "courseId")
	assert.True(t, ok)
	require.NotNil(t, v)
	assert.Equal(t, int64(12), *v)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
