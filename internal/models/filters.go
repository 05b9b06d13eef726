package models

// List filters. Zero values mean "no filtering" for every field; services
// validate and normalize them before they reach a repository.

// SearchFilter narrows a listing by a case-insensitive substring match over
// the resource's text fields. For confidential details only the title is
// matched; stored ciphertext is never decrypted to filter.
type SearchFilter struct {
	Q string
}

type GoalFilter struct {
	Q      string
	Status string
}

// ExpenseFilter combines independent conditions with AND semantics.
// Date bounds are inclusive YYYY-MM-DD strings; amount bounds are inclusive
// and nil when absent.
type ExpenseFilter struct {
	Q         string
	Category  string
	StartDate string
	EndDate   string
	MinAmount *float64
	MaxAmount *float64
}
