package domain

// Filter matches one field of a collection record against a value.
// Numeric and boolean fields always compare for equality. Text fields
// match by case-insensitive substring unless Exact is set.
type Filter struct {
	Field string
	Value string
	Exact bool
}

// ListOptions carries filtering and offset/limit paging for a
// collection listing. A Limit of zero or less means no limit.
type ListOptions struct {
	Filters []Filter
	Start   int
	Limit   int
}
