package shared

// FilterOp is a comparison operator supported by the persistence engine.
type FilterOp string

// Supported filter operators
const (
	OpEq  FilterOp = "eq"
	OpGt  FilterOp = "gt"
	OpLt  FilterOp = "lt"
	OpGte FilterOp = "gte"
	OpLte FilterOp = "lte"
)

// SQLOperator returns the SQL comparison for the operator, or false if the
// operator is not supported.
func (op FilterOp) SQLOperator() (string, bool) {
	switch op {
	case OpEq:
		return "=", true
	case OpGt:
		return ">", true
	case OpLt:
		return "<", true
	case OpGte:
		return ">=", true
	case OpLte:
		return "<=", true
	}
	return "", false
}

// FilterSpec is a single column predicate.
type FilterSpec struct {
	Column string   `json:"column"`
	Op     FilterOp `json:"operator"`
	Value  any      `json:"value"`
}

// Sort directions
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// SortSpec is a single sort key with direction.
type SortSpec struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

// Pagination limits
const (
	DefaultPerPage = 100
	MaxPerPage     = 1000
)

// ListQuery carries filter, sort and pagination options for a collection read.
type ListQuery struct {
	Filters        []FilterSpec
	Sort           *SortSpec
	PageNumber     int
	PerPage        int
	IncludeDeleted bool
}

// Normalize applies pagination defaults and the per-page clamp.
func (q ListQuery) Normalize() ListQuery {
	if q.PageNumber <= 0 {
		q.PageNumber = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	return q
}

// Paginated represents one page of a collection read plus metadata.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	PageNumber int   `json:"page_number"`
	PerPage    int   `json:"per_page"`
}

// NewPaginated creates a paginated result with computed total pages.
func NewPaginated[T any](items []T, total int64, pageNumber, perPage int) Paginated[T] {
	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		TotalItems: total,
		TotalPages: totalPages,
		PageNumber: pageNumber,
		PerPage:    perPage,
	}
}
