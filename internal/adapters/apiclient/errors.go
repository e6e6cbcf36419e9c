package apiclient

import (
	"context"
	"errors"
	"net"
	"net/http"

	apperrors "github.com/careerhub/portal/internal/errors"
)

// transportError classifies a failure to get any response at all.
func transportError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, op)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, op)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, op)
	}
	return apperrors.Wrap(err, apperrors.ErrCodeNetwork, op)
}

// statusError maps a non-2xx response onto an application error.
func statusError(op string, status int, payload []byte) error {
	msg := errorMessage(payload)
	if msg == "" {
		msg = http.StatusText(status)
	}
	code := codeForStatus(status)
	return &apperrors.AppError{
		Code:    code,
		Message: op + ": " + msg,
		Status:  status,
	}
}

func codeForStatus(status int) apperrors.ErrorCode {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return apperrors.ErrCodeValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return apperrors.ErrCodeUnauthorized
	case status == http.StatusNotFound:
		return apperrors.ErrCodeNotFound
	case status == http.StatusConflict:
		return apperrors.ErrCodeConflict
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return apperrors.ErrCodeTimeout
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable:
		return apperrors.ErrCodeNetwork
	default:
		return apperrors.ErrCodeInternal
	}
}
