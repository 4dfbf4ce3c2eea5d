package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEcho(buf *bytes.Buffer, opts ...LoggerOpt) *echo.Echo {
	l := slog.New(slog.NewTextHandler(buf, nil))
	e := echo.New()
	e.Use(Logger(append([]LoggerOpt{WithLogger(l)}, opts...)...))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "nope") })
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf)

	serve(e, "/ok")
	assert.Contains(t, buf.String(), "msg=REQUEST")
	assert.Contains(t, buf.String(), "uri=/ok")
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "method=GET")

	buf.Reset()
	rec := serve(e, "/fail")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "msg=REQUEST_ERROR")
	assert.Contains(t, buf.String(), "status=418")
}

func TestLogger_SkipPaths(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf, WithSkipPaths("/health"))

	serve(e, "/health")
	assert.Empty(t, buf.String())

	serve(e, "/ok")
	assert.Contains(t, buf.String(), "uri=/ok")
}
