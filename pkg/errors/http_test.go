package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "intent-engine/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusNotFound, "unknown intent")
	if err.Error() != "unknown intent" {
		t.Errorf("Error() = %q", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var httpErr *pkgErrors.HTTPError
	if !stderrors.As(wrapped, &httpErr) || httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("errors.As failed for %v", wrapped)
	}
}
