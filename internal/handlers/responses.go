// Package handlers contains HTTP request handlers for the hello service.
package handlers

import (
	"time"
)

// MessageResponse carries a greeting or confirmation message
type MessageResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// DeleteByNameResponse reports how many greetings were removed for a name
type DeleteByNameResponse struct {
	Message   string `json:"message"`
	Deleted   int64  `json:"deleted"`
	Timestamp int64  `json:"timestamp"`
}

// CountResponse represents the greeting count for a name
type CountResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ExistsResponse reports whether a name has been greeted
type ExistsResponse struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	Application string `json:"application"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// nowMillis returns the current time as epoch milliseconds
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func newMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message, Timestamp: nowMillis()}
}

func newErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message, Timestamp: nowMillis()}
}
