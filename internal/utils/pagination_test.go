// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseLimitOffset(t *testing.T) {
	window, err := ParseLimitOffset(testContext("limit=15&offset=30"))
	require.NoError(t, err)
	require.NotNil(t, window.Limit)
	assert.Equal(t, 15, *window.Limit)
	assert.Equal(t, 30, window.Offset)
}

func TestParseLimitOffsetAbsent(t *testing.T) {
	window, err := ParseLimitOffset(testContext(""))
	require.NoError(t, err)
	assert.Nil(t, window.Limit)
	assert.Zero(t, window.Offset)
}

func TestParseLimitOffsetKeepsSuppliedZero(t *testing.T) {
	// limit=0 is supplied, not absent; the services reject it.
	window, err := ParseLimitOffset(testContext("limit=0"))
	require.NoError(t, err)
	require.NotNil(t, window.Limit)
	assert.Equal(t, 0, *window.Limit)
}

func TestParseLimitOffsetMalformed(t *testing.T) {
	_, err := ParseLimitOffset(testContext("limit=abc"))
	assert.Error(t, err)

	_, err = ParseLimitOffset(testContext("offset=1.5"))
	assert.Error(t, err)
}

func TestHasMore(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		limit  int
		offset int
		want   bool
	}{
		{"empty result", 0, 20, 0, false},
		{"single page", 10, 20, 0, false},
		{"exactly one page", 20, 20, 0, false},
		{"second page exists", 21, 20, 0, true},
		{"last page", 40, 20, 20, false},
		{"middle page", 50, 20, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMore(tt.total, tt.limit, tt.offset))
		})
	}
}
