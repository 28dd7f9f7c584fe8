package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trackcase/backend/internal/application/cases"
	"github.com/trackcase/backend/internal/domain/shared"
)

// parseID parses the :id path parameter.
func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, shared.NewValidation("invalid id " + c.Param(param))
	}
	return uint(id), nil
}

// parseBoolQuery parses a boolean query flag, defaulting to false.
func parseBoolQuery(c *gin.Context, name string) bool {
	value, ok := c.GetQuery(name)
	if !ok {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}

// parseReadOptions extracts the enrichment flags from the query string.
func parseReadOptions(c *gin.Context) cases.ReadOptions {
	return cases.ReadOptions{
		IncludeExtra:   parseBoolQuery(c, "is_include_extra"),
		IncludeHistory: parseBoolQuery(c, "is_include_history"),
		IncludeDeleted: parseBoolQuery(c, "is_include_deleted"),
	}
}

// parseListQuery builds a list query from pagination, sort and filter query
// parameters. Filters arrive as aligned filter_column / filter_op /
// filter_value triplets; filter_op defaults to eq when omitted.
func parseListQuery(c *gin.Context) (shared.ListQuery, error) {
	q := shared.ListQuery{
		PageNumber:     1,
		PerPage:        shared.DefaultPerPage,
		IncludeDeleted: parseBoolQuery(c, "is_include_deleted"),
	}

	if raw, ok := c.GetQuery("page_number"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, shared.NewValidation("invalid page_number " + raw)
		}
		q.PageNumber = n
	}
	if raw, ok := c.GetQuery("per_page"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, shared.NewValidation("invalid per_page " + raw)
		}
		q.PerPage = n
	}

	if field, ok := c.GetQuery("sort_field"); ok && field != "" {
		q.Sort = &shared.SortSpec{
			Column:    field,
			Direction: c.Query("sort_direction"),
		}
	}

	columns := c.QueryArray("filter_column")
	ops := c.QueryArray("filter_op")
	values := c.QueryArray("filter_value")
	if len(values) != len(columns) || (len(ops) > 0 && len(ops) != len(columns)) {
		return q, shared.NewValidation("filter_column, filter_op and filter_value must align")
	}
	for i, column := range columns {
		op := shared.OpEq
		if len(ops) > 0 && ops[i] != "" {
			op = shared.FilterOp(ops[i])
		}
		q.Filters = append(q.Filters, shared.FilterSpec{
			Column: column,
			Op:     op,
			Value:  values[i],
		})
	}

	return q, nil
}
