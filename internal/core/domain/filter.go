package domain

type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
	SortPriority SortKey = "priority"
	SortDueDate  SortKey = "due_date"
	SortName     SortKey = "name"
)

func (s SortKey) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriority, SortDueDate, SortName:
		return true
	}
	return false
}

// TaskQuery is what the HTTP layer is allowed to ask for: request-supplied
// filters plus the explicit all-owners flag. The service combines it with
// the resolved actor to produce a TaskFilter.
type TaskQuery struct {
	All        bool
	CategoryID *string
	Priority   *Priority
	Completed  *bool
	Search     string
	Sort       SortKey
	Limit      int
}

// TaskFilter composes a scoped task query. All supplied constraints are
// intersected; omitted fields impose none. OwnerID is set by the service
// layer from the resolved actor, never from request input: nil means
// unscoped and is only ever produced for an admin asking for all tasks.
type TaskFilter struct {
	OwnerID    *string
	CategoryID *string
	Priority   *Priority
	Completed  *bool
	Search     string
	Sort       SortKey
	Limit      int
}
