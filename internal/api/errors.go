package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timetable-backend/internal/timetable"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var engineErrors = []struct {
	err    error
	status int
	code   string
}{
	{timetable.ErrRequestedRangeTooLarge, http.StatusUnprocessableEntity, "requested_range_too_large"},
	{timetable.ErrInvalidDateFormat, http.StatusBadRequest, "invalid_date_format"},
	{timetable.ErrUnknownTimezone, http.StatusBadRequest, "unknown_timezone"},
	{timetable.ErrInvalidServiceDuration, http.StatusBadRequest, "invalid_service_duration"},
	{timetable.ErrInvalidTimeslotInterval, http.StatusBadRequest, "invalid_timeslot_interval"},
	{timetable.ErrInvalidDays, http.StatusBadRequest, "invalid_days"},
}

// abortWithError writes the status and code registered for err. Anything unrecognised is a 500.
func abortWithError(c *gin.Context, err error) {
	for _, e := range engineErrors {
		if errors.Is(err, e.err) {
			c.AbortWithStatusJSON(e.status, errorResponse{Error: e.code, Message: err.Error()})
			return
		}
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal", Message: "internal server error"})
}

func abortInvalidRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: err.Error()})
}
