// Package dto contains request and response shapes for the HTTP surface.
package dto

// ErrorResponse is the body returned on any handler failure.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CountResponse wraps a single count value.
type CountResponse struct {
	Count int64 `json:"count"`
}
