package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/edupulse-team/edupulse/internal/domain/repositories"
	usecaseErrors "github.com/edupulse-team/edupulse/internal/usecase/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// respondWorkbook streams a spreadsheet as a download attachment
func respondWorkbook(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// statusForError maps use case errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound),
		stdErrors.Is(err, usecaseErrors.ErrAttendanceNotFound),
		stdErrors.Is(err, usecaseErrors.ErrParticipantNotFound),
		stdErrors.Is(err, usecaseErrors.ErrEngagementNotFound),
		stdErrors.Is(err, usecaseErrors.ErrNotFound),
		stdErrors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotActive),
		stdErrors.Is(err, usecaseErrors.ErrNotMeetingOwner),
		stdErrors.Is(err, usecaseErrors.ErrForbidden),
		stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleError centralizes error handling and logging. Error bodies are
// plain text; the dashboard surfaces them verbatim.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	status := statusForError(err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	return c.String(status, err.Error())
}

// HandleBadRequest writes a plain-text 400 for bind and validation failures
func HandleBadRequest(logger *zap.Logger, c echo.Context, err error) error {
	if logger != nil {
		logger.Warn("http.request.invalid",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.String(http.StatusBadRequest, err.Error())
}
