package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	analyticsDto "github.com/edupulse-team/edupulse/internal/adapter/dto/analytics"
	"github.com/edupulse-team/edupulse/internal/adapter/presenter"
	analyticsUsecase "github.com/edupulse-team/edupulse/internal/usecase/analytics"
)

// Analytics handles sensing-pipeline ingest and analytics query requests
type Analytics struct {
	analyticsService analyticsUsecase.Service
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService analyticsUsecase.Service, logger *zap.Logger) *Analytics {
	return &Analytics{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// RecordEmotion handles POST /api/analytics/emotion
func (h *Analytics) RecordEmotion(c echo.Context) error {
	var req analyticsDto.EmotionDataRequest
	if err := c.Bind(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}

	input := analyticsUsecase.RecordEmotionInput{
		MeetingID:     req.MeetingID,
		ParticipantID: req.ParticipantID,
		Emotion:       req.Emotion,
		Timestamp:     req.Timestamp,
	}

	if err := h.analyticsService.RecordEmotion(c.Request().Context(), input); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "Emotion data recorded successfully")
}

// RecordFatigue handles POST /api/analytics/fatigue
func (h *Analytics) RecordFatigue(c echo.Context) error {
	var req analyticsDto.FatigueDataRequest
	if err := c.Bind(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}

	input := analyticsUsecase.RecordFatigueInput{
		MeetingID:     req.MeetingID,
		ParticipantID: req.ParticipantID,
		FatigueStatus: req.FatigueStatus,
		Timestamp:     req.Timestamp,
	}

	if err := h.analyticsService.RecordFatigue(c.Request().Context(), input); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "Fatigue data recorded successfully")
}

// RecordHeadPose handles POST /api/analytics/headpose
func (h *Analytics) RecordHeadPose(c echo.Context) error {
	var req analyticsDto.HeadPoseDataRequest
	if err := c.Bind(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}

	input := analyticsUsecase.RecordHeadPoseInput{
		MeetingID:     req.MeetingID,
		ParticipantID: req.ParticipantID,
		Yaw:           req.Yaw,
		Pitch:         req.Pitch,
		Roll:          req.Roll,
		Timestamp:     req.Timestamp,
	}

	if err := h.analyticsService.RecordHeadPose(c.Request().Context(), input); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "Head pose data recorded successfully")
}

// GenerateSnapshot handles POST /api/analytics/snapshot/:meetingId
func (h *Analytics) GenerateSnapshot(c echo.Context) error {
	if err := h.analyticsService.GenerateSnapshot(c.Request().Context(), c.Param("meetingId")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "Analytics snapshot generated successfully")
}

// MeetingAnalytics handles GET /api/analytics/meeting/:meetingId
func (h *Analytics) MeetingAnalytics(c echo.Context) error {
	snapshots, err := h.analyticsService.MeetingAnalytics(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, snapshots)
}

// ChartData handles GET /api/analytics/chart-data/:meetingId
func (h *Analytics) ChartData(c echo.Context) error {
	snapshots, err := h.analyticsService.MeetingAnalytics(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToChartData(snapshots))
}

// ParticipantEmotions handles GET /api/analytics/participant/:participantId/emotions
func (h *Analytics) ParticipantEmotions(c echo.Context) error {
	entries, err := h.analyticsService.ParticipantEmotions(c.Request().Context(), c.Param("participantId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ParticipantFatigue handles GET /api/analytics/participant/:participantId/fatigue
func (h *Analytics) ParticipantFatigue(c echo.Context) error {
	entries, err := h.analyticsService.ParticipantFatigue(c.Request().Context(), c.Param("participantId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ParticipantHeadPose handles GET /api/analytics/participant/:participantId/headpose
func (h *Analytics) ParticipantHeadPose(c echo.Context) error {
	entries, err := h.analyticsService.ParticipantHeadPose(c.Request().Context(), c.Param("participantId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// AttendanceCount handles GET /api/analytics/attendance-count/:meetingId
func (h *Analytics) AttendanceCount(c echo.Context) error {
	count, err := h.analyticsService.AttendanceCount(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, count)
}

// EngagementScores handles GET /api/analytics/engagement-scores/:meetingId
func (h *Analytics) EngagementScores(c echo.Context) error {
	rows, err := h.analyticsService.EngagementScores(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// StudentEngagement handles GET /api/analytics/student-engagement/:meetingId/:participantEmail
func (h *Analytics) StudentEngagement(c echo.Context) error {
	record, err := h.analyticsService.StudentEngagement(c.Request().Context(), c.Param("meetingId"), c.Param("participantEmail"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, record)
}
