package models

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error" example:"username already taken"`
	Code  string `json:"code" example:"conflict"`
}
