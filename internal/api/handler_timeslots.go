package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-backend/internal/mw"
	"timetable-backend/internal/timetable"
)

type getTimeSlotsRequest struct {
	StartDayIdentifier string `json:"start_day_identifier" binding:"required"`
	TimezoneIdentifier string `json:"timezone_identifier" binding:"required"`
	ServiceDuration    *int64 `json:"service_duration" binding:"required"`
	Days               int    `json:"days"`
	TimeslotInterval   int64  `json:"timeslot_interval"`
	IsIgnoreSchedule   bool   `json:"is_ignore_schedule"`
	IsIgnoreWorkhour   bool   `json:"is_ignore_workhour"`
}

func (r getTimeSlotsRequest) toRequest() timetable.Request {
	return timetable.Request{
		StartDayIdentifier: r.StartDayIdentifier,
		TimezoneIdentifier: r.TimezoneIdentifier,
		ServiceDuration:    *r.ServiceDuration,
		Options: timetable.Options{
			Days:             r.Days,
			TimeslotInterval: r.TimeslotInterval,
			IgnoreSchedule:   r.IsIgnoreSchedule,
			IgnoreWorkhour:   r.IsIgnoreWorkhour,
		},
	}
}

// GetTimeSlots handles POST /getTimeSlots.
func (h *Handler) GetTimeSlots(c *gin.Context) {
	var req getTimeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	timetables, err := timetable.Compute(req.toRequest(), h.catalog.Reference())
	if err != nil {
		h.logger.Debug("timeslot request rejected",
			zap.String("request_id", mw.GetRequestID(c)),
			zap.String("start_day_identifier", req.StartDayIdentifier),
			zap.String("timezone_identifier", req.TimezoneIdentifier),
			zap.Error(err),
		)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, timetables)
}
