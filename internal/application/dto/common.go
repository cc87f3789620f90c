package dto

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
