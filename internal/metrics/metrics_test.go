package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRouteAndStatus(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/items/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return c.NoContent(http.StatusOK)
	})

	okBefore := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/items/:id", http.MethodGet, "200"))
	notFoundBefore := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/items/:id", http.MethodGet, "404"))

	for _, path := range []string{"/items/1", "/items/2", "/items/missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, okBefore+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/items/:id", http.MethodGet, "200")))
	assert.Equal(t, notFoundBefore+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("/items/:id", http.MethodGet, "404")))
}
