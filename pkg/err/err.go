package errprocess

import (
	"errors"
	"net/http"

	"video_platform_service/pkg/logger"

	"go.uber.org/zap"
)

// Kind classifies an AppError and decides its HTTP status
type Kind int

const (
	// KindInternal storage or unexpected failure
	KindInternal Kind = iota
	// KindBadRequest missing or invalid input
	KindBadRequest
	// KindNotFound referenced entity absent
	KindNotFound
	// KindForbidden actor does not own the entity
	KindForbidden
	// KindMedia remote object upload/delete failure
	KindMedia
)

// AppError 分類過的錯誤，回應時轉成 envelope
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode http status of the error kind
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest 400
func BadRequest(msg string) error {
	return &AppError{Kind: KindBadRequest, Message: msg}
}

// NotFound 404
func NotFound(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

// Forbidden 403
func Forbidden(msg string) error {
	return &AppError{Kind: KindForbidden, Message: msg}
}

// Internal 500, the cause is logged here and hidden from the caller
func Internal(msg string, err error) error {
	logger.Log.Error(msg, zap.Error(err))
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// Media 500 for object storage failures
func Media(msg string, err error) error {
	logger.Log.Error(msg, zap.Error(err), zap.String("kind", "media"))
	return &AppError{Kind: KindMedia, Message: msg, Err: err}
}

// IsKind check err chain for an AppError of kind k
func IsKind(err error, k Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == k
}
