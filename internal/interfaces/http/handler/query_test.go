package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackcase/backend/internal/domain/shared"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseID(t *testing.T) {
	c := testContext(t, "")
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, err := parseID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, err := parseID(c, "id")
		assert.Error(t, err, raw)
	}
}

func TestParseReadOptions(t *testing.T) {
	opts := parseReadOptions(testContext(t, "is_include_extra=true&is_include_history=true"))
	assert.True(t, opts.IncludeExtra)
	assert.True(t, opts.IncludeHistory)
	assert.False(t, opts.IncludeDeleted)

	opts = parseReadOptions(testContext(t, "is_include_deleted=nonsense"))
	assert.False(t, opts.IncludeDeleted)
}

func TestParseListQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := parseListQuery(testContext(t, ""))
		require.NoError(t, err)
		assert.Equal(t, 1, q.PageNumber)
		assert.Equal(t, shared.DefaultPerPage, q.PerPage)
		assert.Nil(t, q.Sort)
		assert.Empty(t, q.Filters)
	})

	t.Run("pagination and sort", func(t *testing.T) {
		q, err := parseListQuery(testContext(t, "page_number=3&per_page=25&sort_field=name&sort_direction=DESC"))
		require.NoError(t, err)
		assert.Equal(t, 3, q.PageNumber)
		assert.Equal(t, 25, q.PerPage)
		require.NotNil(t, q.Sort)
		assert.Equal(t, "name", q.Sort.Column)
		assert.Equal(t, "DESC", q.Sort.Direction)
	})

	t.Run("rejects bad pagination", func(t *testing.T) {
		_, err := parseListQuery(testContext(t, "page_number=0"))
		assert.Error(t, err)
		_, err = parseListQuery(testContext(t, "per_page=abc"))
		assert.Error(t, err)
	})

	t.Run("filter triplets", func(t *testing.T) {
		q, err := parseListQuery(testContext(t,
			"filter_column=name&filter_op=eq&filter_value=Boston&filter_column=court_id&filter_op=gt&filter_value=5"))
		require.NoError(t, err)
		require.Len(t, q.Filters, 2)
		assert.Equal(t, shared.FilterSpec{Column: "name", Op: shared.OpEq, Value: "Boston"}, q.Filters[0])
		assert.Equal(t, shared.FilterSpec{Column: "court_id", Op: shared.OpGt, Value: "5"}, q.Filters[1])
	})

	t.Run("filter op defaults to eq", func(t *testing.T) {
		q, err := parseListQuery(testContext(t, "filter_column=name&filter_value=Boston"))
		require.NoError(t, err)
		require.Len(t, q.Filters, 1)
		assert.Equal(t, shared.OpEq, q.Filters[0].Op)
	})

	t.Run("rejects misaligned filters", func(t *testing.T) {
		_, err := parseListQuery(testContext(t, "filter_column=name"))
		assert.Error(t, err)
		_, err = parseListQuery(testContext(t, "filter_column=name&filter_op=eq&filter_op=gt&filter_value=x"))
		assert.Error(t, err)
	})
}
