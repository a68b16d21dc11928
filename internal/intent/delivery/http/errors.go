package http

import (
	"errors"
	"net/http"

	"intent-engine/internal/intent"
	pkgErrors "intent-engine/pkg/errors"
)

var (
	errInvalidDays  = pkgErrors.NewHTTPError(http.StatusBadRequest, "days must be a non-negative integer")
	errInvalidQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "q is required")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, intent.ErrUnknownTaskType), errors.Is(err, intent.ErrUnknownIntent):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, intent.ErrNoExamples):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, intent.ErrNoCorpus):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// mapBindError maps domain validation errors raised while processing a
// request and passes binding errors through.
func (h *handler) mapBindError(err error) error {
	if errors.Is(err, intent.ErrUnknownTaskType) {
		return h.mapError(err)
	}
	return err
}
