package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler maps validation errors to 400, echo errors to their own
// code and anything else to 500.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationBody(ve))
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "uri", c.Request().RequestURI, "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// validationBody keeps field and source out of the body when they are unset.
func validationBody(ve *ValidationError) map[string]string {
	body := map[string]string{"error": ve.Message, "title": "validation error"}
	if ve.Field != "" {
		body["field"] = ve.Field
	}
	if ve.Source != "" {
		body["source"] = ve.Source
	}
	return body
}
