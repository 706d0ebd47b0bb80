package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the body of mutations that return nothing else
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the body of a successful create
type CreatedResponse struct {
	ID      uint64 `json:"id"`
	Message string `json:"message"`
}
