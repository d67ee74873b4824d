package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/vocify/internal/model"
)

// APIError represents an API error response.
// Title and Root are only set for word rejections.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Title   string `json:"title,omitempty"`
	Root    string `json:"root,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeNoActiveRound    = "NO_ACTIVE_ROUND"
	CodeDuplicateWord    = "DUPLICATE_WORD"
	CodeNotFormable      = "NOT_FORMABLE"
	CodeUnrecognizedWord = "UNRECOGNIZED_WORD"
	CodeNoRootWords      = "NO_ROOT_WORDS"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var rejection *model.RejectionError
	if errors.As(err, &rejection) {
		return &httpError{http.StatusUnprocessableEntity, APIError{
			Code:    rejectionCode(rejection),
			Message: rejection.Message(),
			Title:   rejection.Title(),
			Root:    string(rejection.Root),
		}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeSessionNotFound, Message: "Session not found"}}
	case errors.Is(err, model.ErrNoActiveRound):
		return &httpError{http.StatusConflict, APIError{Code: CodeNoActiveRound, Message: "No round in progress"}}
	case errors.Is(err, model.ErrEmptyPool):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeNoRootWords, Message: "No root words available"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

func rejectionCode(r *model.RejectionError) string {
	switch r.Outcome() {
	case model.OutcomeDuplicate:
		return CodeDuplicateWord
	case model.OutcomeNotFormable:
		return CodeNotFormable
	default:
		return CodeUnrecognizedWord
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
