// Package apperrors defines the sentinel errors shared by the stores and
// the conversion applied at the HTTP boundary.
package apperrors

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound covers both a missing record and one owned by someone
	// else; the two cases are deliberately indistinguishable so callers
	// cannot probe for other hosts' events.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ToHuma converts a store error into the matching huma status error.
// Unrecognized errors become a 500 with the detail withheld.
func ToHuma(err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, ErrUnauthorized):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound(err.Error())
	default:
		return huma.Error500InternalServerError("Internal server error")
	}
}
