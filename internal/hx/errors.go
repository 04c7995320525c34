package hx

import (
	"errors"
	"net/http"

	"github.com/pthm/backlog/internal/hx/encoding"
)

// Sentinel errors for component operations.
var (
	ErrNotFound         = errors.New("hx: resource not found")
	ErrDecryptFailed    = errors.New("hx: parameter decryption failed")
	ErrSignatureInvalid = errors.New("hx: signature verification failed")
	ErrInvalidFormat    = errors.New("hx: invalid parameter format")
	ErrHydrationFailed  = errors.New("hx: hydration failed")
	ErrNotRegistered    = errors.New("hx: component not registered")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecryptionError checks if err is a decryption, signature or format error
// coming from props decoding.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrInvalidFormat)
}

// wrapEncodingError maps encoding package errors onto hx sentinels.
func wrapEncodingError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, encoding.ErrSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, encoding.ErrDecryptFailed):
		return ErrDecryptFailed
	case errors.Is(err, encoding.ErrInvalidFormat):
		return ErrInvalidFormat
	}
	return err
}

// defaultOnError is used when no registry error handler is set.
func defaultOnError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case IsDecryptionError(err):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
