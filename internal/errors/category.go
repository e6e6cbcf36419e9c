package errors

import (
	"context"
	"errors"
)

// Category is the user-facing error taxonomy shown in toasts and banners.
type Category string

const (
	CategoryNetwork    Category = "network"
	CategoryValidation Category = "validation"
	CategoryConflict   Category = "conflict"
	CategoryUnknown    Category = "unknown"
)

// CategoryOf collapses an error into the user-facing taxonomy.
// A nil error has no category.
func CategoryOf(err error) Category {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryNetwork
	}
	switch GetCode(err) {
	case ErrCodeNetwork, ErrCodeTimeout:
		return CategoryNetwork
	case ErrCodeValidation:
		return CategoryValidation
	case ErrCodeConflict:
		return CategoryConflict
	default:
		return CategoryUnknown
	}
}

// IsSilent reports whether err should not be surfaced to the user at all,
// which is the case when the browser went away and the request was canceled.
func IsSilent(err error) bool {
	return IsCanceled(err) || errors.Is(err, context.Canceled)
}

// Hint returns a short suffix explaining what the user can do about an error category.
func (c Category) Hint() string {
	switch c {
	case CategoryNetwork:
		return "The service could not be reached. Please try again later."
	case CategoryValidation:
		return "Please check the highlighted fields."
	case CategoryConflict:
		return "The item was changed by someone else. Reload and try again."
	case CategoryUnknown:
		return "An unexpected error occurred."
	default:
		return ""
	}
}
