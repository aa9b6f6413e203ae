package dto

// MessageResponse is the body for message-only success responses
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body for every error response. Unexpected failures
// carry a generic message; internal detail is never surfaced.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
