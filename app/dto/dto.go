package dto

// ErrorResponse is the standard envelope for failed requests
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
