package result

import (
	"net/http"
	"time"

	"inventory-api/internal/paging"
)

// Version is the envelope protocol version reported with every response.
const Version = "1.1"

// Status is the closed set of operation outcomes. Values double as the
// transport status code for anything outside the known set.
type Status int

const (
	StatusSuccess         Status = 200
	StatusNoContent       Status = 204
	StatusBadRequest      Status = 400
	StatusUnauthenticated Status = 401
	StatusUnauthorized    Status = 403
	StatusNotFound        Status = 404
	StatusAlreadyExist    Status = 409
	StatusInternalError   Status = 500
)

// HTTPStatus maps a status to its transport code. Unknown values fall back
// to their own numeric value.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusSuccess:
		return http.StatusOK
	case StatusNoContent:
		return http.StatusNoContent
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusUnauthenticated:
		return http.StatusUnauthorized
	case StatusUnauthorized:
		return http.StatusForbidden
	case StatusNotFound:
		return http.StatusNotFound
	case StatusAlreadyExist:
		return http.StatusConflict
	case StatusInternalError:
		return http.StatusInternalServerError
	default:
		return int(s)
	}
}

// Result is the uniform success/error/pagination envelope every operation
// returns. It is constructed empty at the start of an operation and exactly
// one terminal status is assigned before it is handed back.
type Result[T any] struct {
	Version        string           `json:"version"`
	Status         Status           `json:"statusCode"`
	ErrorMessages  []string         `json:"errorMessages,omitempty"`
	Data           T                `json:"data"`
	Paging         *paging.PageInfo `json:"pagingInfo,omitempty"`
	SuccessMessage string           `json:"successMessage,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

// New returns an empty envelope ready to be filled by the operation.
func New[T any]() *Result[T] {
	return &Result[T]{
		Version:   Version,
		Timestamp: time.Now().UTC(),
	}
}

// Fail assigns a terminal error status with an ordered list of messages.
// The payload stays at its zero value.
func (r *Result[T]) Fail(status Status, messages ...string) *Result[T] {
	r.Status = status
	r.ErrorMessages = append(r.ErrorMessages, messages...)
	return r
}

// Succeed assigns the success status together with the payload.
func (r *Result[T]) Succeed(data T, message string) *Result[T] {
	r.Status = StatusSuccess
	r.Data = data
	r.SuccessMessage = message
	return r
}

// WithPaging attaches page metadata to a list response.
func (r *Result[T]) WithPaging(info paging.PageInfo) *Result[T] {
	r.Paging = &info
	return r
}

// OK reports whether the envelope carries a success-shaped status.
func (r *Result[T]) OK() bool {
	return r.Status == StatusSuccess || r.Status == StatusNoContent
}
