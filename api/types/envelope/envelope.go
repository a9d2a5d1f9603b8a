package envelope

// Pagination is the metadata the backend attaches to list endpoints.
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

func (a Pagination) Equal(b Pagination) bool {
	return a == b
}

// ErrorMessage is the error payload convention of the backend.
//
// 400 responses carry either Message or Errors (field-by-field),
// 409 responses carry Message only.
type ErrorMessage struct {
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
