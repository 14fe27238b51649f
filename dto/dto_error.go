package dto

// ===== Error Response =====
type ErrorResponse struct {
	Error   string `json:"error"             example:"Post not found"`
	Message string `json:"message,omitempty" example:"context deadline exceeded"`
	Details any    `json:"details,omitempty"`
}
