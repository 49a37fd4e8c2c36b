package model

type SortField string

const (
	SortCreatedAt   SortField = "createdAt"
	SortPrice       SortField = "price"
	SortVehicleYear SortField = "vehicleYear"
)

func (f SortField) Valid() bool {
	switch f {
	case SortCreatedAt, SortPrice, SortVehicleYear:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Valid() bool { return d == SortAsc || d == SortDesc }

type Sort struct {
	Field     SortField
	Direction SortDirection
}

type PagingMode string

const (
	PagingOffset PagingMode = "offset"
	PagingCursor PagingMode = "cursor"
)

const (
	DefaultPageSize = 20
	PublicPageSize  = 24
	MaxPageSize     = 100

	DefaultRecent = 5
	MaxRecent     = 24
)

// PartsQuery describes one catalog listing request.
type PartsQuery struct {
	// Equality filters, applied by the store.
	Status    StockStatus
	Category  Category
	Condition Condition
	Make      string
	Year      int

	// Case-insensitive substring filters, applied in memory.
	MakeContains  string
	ModelContains string
	Search        string

	Paging   PagingMode
	Cursor   string
	Offset   int
	PageSize int

	Sort Sort
}

func (q PartsQuery) HasSubstringFilter() bool {
	return q.MakeContains != "" || q.ModelContains != "" || q.Search != ""
}

// Filter returns the equality part of the query.
func (q PartsQuery) Filter() PartsFilter {
	return PartsFilter{
		Status:    q.Status,
		Category:  q.Category,
		Condition: q.Condition,
		Make:      q.Make,
		Year:      q.Year,
	}
}

// PartsFilter is the set of equality predicates understood by the store.
type PartsFilter struct {
	Status    StockStatus
	Category  Category
	Condition Condition
	Make      string
	Year      int
}

func (f PartsFilter) Empty() bool {
	return f.Status == "" &&
		f.Category == "" &&
		f.Condition == "" &&
		f.Make == "" &&
		f.Year == 0
}

type PartsPage struct {
	Parts   []*Part
	Total   int
	HasMore bool
	// Set only in cursor mode when HasMore is true.
	NextCursor string
}

func EmptyPage() *PartsPage {
	return &PartsPage{Parts: []*Part{}}
}

// ValueOf returns the sort key of p for the field. Time keys are Unix milliseconds.
func (f SortField) ValueOf(p *Part) int64 {
	switch f {
	case SortPrice:
		return p.PriceCents
	case SortVehicleYear:
		return int64(p.VehicleYear)
	default:
		return p.CreatedAt.UnixMilli()
	}
}

// Keyset is the position after which a cursor page starts.
type Keyset struct {
	Value int64
	ID    string
}

// FindOptions controls ordering and windowing of a store read.
// Records are ordered by the sort field, ties broken by id in the same direction.
type FindOptions struct {
	Sort  Sort
	After *Keyset
	Skip  int
	// Zero means no limit.
	Limit int
}
