package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// ErrorHandler renders errors returned by handlers as an ErrorResponse.
// Errors that are not *echo.HTTPError become 500.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		message, ok := errorMessages[code]
		if !ok {
			message = strings.ToLower(http.StatusText(code))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, ErrorResponse{
				Success: false,
				Error:   code,
				Message: message,
			})
		}
		if writeErr != nil {
			log.Error("failed to write error response", slog.Any("error", writeErr))
		}
	}
}

func badRequest(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
}

func notFound(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
}

func unprocessable(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
}

func internalError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
}
