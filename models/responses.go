package models

// Response is the envelope every endpoint answers with.
type Response struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data"`
}

// ErrorResponse is the envelope of a failed request. ResponseTime is the
// number of milliseconds spent on the request; Detail is only populated in a
// development environment.
type ErrorResponse struct {
	Message      string `json:"message"`
	Success      bool   `json:"success"`
	Data         any    `json:"data"`
	ResponseTime int64  `json:"responseTime"`
	Detail       string `json:"__error__,omitempty"`
}

// Page is a paginated list of items.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

// NewPage builds a [Page] computing the number of pages from total and limit.
func NewPage[T any](items []T, total int64, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// ServerStatus is returned by the root endpoint.
type ServerStatus struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}
