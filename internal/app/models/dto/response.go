package dto

import (
	"net/http"
	"time"
)

// Envelope status values
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Status     string          `json:"status" example:"success" enums:"success,fail,error"`
	Message    string          `json:"message,omitempty" example:"Operation completed successfully"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Timestamp  time.Time       `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// ErrorResponse documents the failure shape of APIResponse
type ErrorResponse struct {
	Status    string       `json:"status" example:"fail" enums:"fail,error"`
	Message   string       `json:"message" example:"Course not found"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// PaginationInfo describes the page returned by a list endpoint
type PaginationInfo struct {
	CurrentPage  int   `json:"currentPage" example:"1"`
	TotalPages   int   `json:"totalPages" example:"5"`
	TotalItems   int64 `json:"totalItems" example:"42"`
	ItemsPerPage int   `json:"itemsPerPage" example:"10"`
	HasNextPage  bool  `json:"hasNextPage" example:"true"`
	HasPrevPage  bool  `json:"hasPrevPage" example:"false"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Status:    StatusSuccess,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewPaginatedResponse wraps a page of items and its pagination block
func NewPaginatedResponse(items interface{}, pagination *PaginationInfo) APIResponse {
	return APIResponse{
		Status:     StatusSuccess,
		Data:       items,
		Pagination: pagination,
		Timestamp:  time.Now(),
	}
}

// NewMessageResponse is a success envelope carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse creates a client error (fail) response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return NewErrorResponseForStatus(http.StatusBadRequest, errorDetail)
}

// NewErrorResponseForStatus picks fail or error from the HTTP status code
func NewErrorResponseForStatus(httpStatus int, errorDetail *ErrorDetail) *ErrorResponse {
	status := StatusFail
	if httpStatus >= http.StatusInternalServerError {
		status = StatusError
	}
	return &ErrorResponse{
		Status:    status,
		Message:   errorDetail.Message,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}
