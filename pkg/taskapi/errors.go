package taskapi

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response decoded into a usable error value.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("taskapi: %d %s", e.StatusCode, e.Message)
}

func parseAPIError(statusCode int, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{StatusCode: statusCode, Message: string(body)}
	}
	return &APIError{StatusCode: statusCode, Message: er.Error}
}
