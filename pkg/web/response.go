// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// ErrorDetail carries machine-readable context for business failures.
type ErrorDetail struct {
	AccountID       int32  `json:"account_id,omitempty"`
	CurrentBalance  string `json:"current_balance,omitempty"`
	RequestedAmount string `json:"requested_amount,omitempty"`
}

// Response holds the common response type for all APIs.
type Response struct {
	Data   any          `json:"data,omitempty"`
	Error  string       `json:"error,omitempty"`
	Detail *ErrorDetail `json:"detail,omitempty"`
}

// Error wraps a given err into json frinedly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for a failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return " is required"
	case "min":
		return " must be greater or equal than " + fe.Param()
	case "max":
		return " must be less or equal than " + fe.Param()
	case "gt":
		return " must be greater than " + fe.Param()
	case "gte":
		return " must be greater or equal than " + fe.Param()
	}

	return " is invalid"
}
