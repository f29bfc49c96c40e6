package domain

// FilterAll is the selector value meaning "no constraint".
const FilterAll = "All"

// FilterCriteria is the value object read by the filter engine. Each
// filter pass reevaluates every dimension against the full canonical
// set; criteria are never partially applied.
type FilterCriteria struct {
	Search     string
	City       string
	Client     string
	AssignedTo string
	Priority   string
	Status     string
}

// DefaultCriteria returns criteria that match every issue.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		City:       FilterAll,
		Client:     FilterAll,
		AssignedTo: FilterAll,
		Priority:   FilterAll,
		Status:     FilterAll,
	}
}
