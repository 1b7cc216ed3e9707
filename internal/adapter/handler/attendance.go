package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	attendanceDto "github.com/edupulse-team/edupulse/internal/adapter/dto/attendance"
	"github.com/edupulse-team/edupulse/internal/domain/entities"
	attendanceUsecase "github.com/edupulse-team/edupulse/internal/usecase/attendance"
)

// Attendance handles attendance tracking HTTP requests
type Attendance struct {
	attendanceService attendanceUsecase.Service
	logger            *zap.Logger
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService attendanceUsecase.Service, logger *zap.Logger) *Attendance {
	return &Attendance{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// Join handles POST /api/attendance/join
func (h *Attendance) Join(c echo.Context) error {
	var req attendanceDto.JoinRequest
	if err := c.Bind(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}

	record := &entities.AttendanceRecord{
		MeetingID:         req.MeetingID,
		ParticipantEmail:  req.ParticipantEmail,
		ParticipantName:   req.ParticipantName,
		EngagementScore:   req.EngagementScore,
		CurrentEmotion:    req.CurrentEmotion,
		CurrentEngagement: req.CurrentEngagement,
	}

	saved, err := h.attendanceService.Join(c.Request().Context(), record)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, saved)
}

// Leave handles POST /api/attendance/leave/:attendanceId
func (h *Attendance) Leave(c echo.Context) error {
	if err := h.attendanceService.Leave(c.Request().Context(), c.Param("attendanceId")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "Successfully left meeting")
}

// ByMeeting handles GET /api/attendance/meeting/:meetingId
func (h *Attendance) ByMeeting(c echo.Context) error {
	records, err := h.attendanceService.GetByMeeting(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// ByParticipant handles GET /api/attendance/participant/:participantEmail
func (h *Attendance) ByParticipant(c echo.Context) error {
	records, err := h.attendanceService.GetByParticipant(c.Request().Context(), c.Param("participantEmail"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// RecordEngagement handles POST /api/attendance/engagement
func (h *Attendance) RecordEngagement(c echo.Context) error {
	var req attendanceDto.RecordEngagementRequest
	if err := c.Bind(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}

	input := attendanceUsecase.RecordEngagementInput{
		ParticipantEmail: req.ParticipantEmail,
		MeetingID:        req.MeetingID,
		Emotion:          req.Emotion,
		Engagement:       req.Engagement,
		Timestamp:        req.Timestamp,
	}

	if err := h.attendanceService.RecordEngagement(c.Request().Context(), input); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "Engagement recorded")
}

// UpdateScore handles PUT /api/attendance/engagement/:attendanceId
func (h *Attendance) UpdateScore(c echo.Context) error {
	var req attendanceDto.UpdateScoreRequest
	if err := c.Bind(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}

	updated, err := h.attendanceService.UpdateEngagementScore(c.Request().Context(), c.Param("attendanceId"), *req.EngagementScore)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Export handles GET /api/attendance/export/:meetingId
func (h *Attendance) Export(c echo.Context) error {
	meetingID := c.Param("meetingId")

	data, err := h.attendanceService.ExportXLSX(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return respondWorkbook(c, fmt.Sprintf("attendance_%s.xlsx", meetingID), data)
}
