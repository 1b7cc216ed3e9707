package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edupulse-team/edupulse/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	meetingHandler    *Meeting
	attendanceHandler *Attendance
	analyticsHandler  *Analytics
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, attendanceHandler *Attendance, analyticsHandler *Analytics) *Router {
	return &Router{
		cfg:               cfg,
		meetingHandler:    meetingHandler,
		attendanceHandler: attendanceHandler,
		analyticsHandler:  analyticsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	rt.setupMeetingRoutes(api)
	rt.setupAttendanceRoutes(api)
	rt.setupAnalyticsRoutes(api)
}

// setupMeetingRoutes configures meeting lifecycle routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.POST("/create", rt.meetingHandler.Create)
	meetings.POST("/join/:meetingId", rt.meetingHandler.Join)
	meetings.POST("/leave/:participantId", rt.meetingHandler.Leave)
	meetings.POST("/end/:meetingId", rt.meetingHandler.End)
	meetings.GET("/teacher/:teacherEmail", rt.meetingHandler.TeacherMeetings)
	meetings.GET("/active", rt.meetingHandler.ActiveMeetings)
	meetings.GET("/:meetingId/attendance", rt.meetingHandler.Attendance)
	meetings.GET("/:meetingId/transcript", rt.meetingHandler.Transcript)
	meetings.POST("/transcript", rt.meetingHandler.AddTranscriptLine)
	meetings.GET("/export/notes/:meetingId", rt.meetingHandler.ExportNotes)
}

// setupAttendanceRoutes configures attendance tracking routes
func (rt *Router) setupAttendanceRoutes(g *echo.Group) {
	attendance := g.Group("/attendance")

	attendance.POST("/join", rt.attendanceHandler.Join)
	attendance.POST("/leave/:attendanceId", rt.attendanceHandler.Leave)
	attendance.GET("/meeting/:meetingId", rt.attendanceHandler.ByMeeting)
	attendance.GET("/participant/:participantEmail", rt.attendanceHandler.ByParticipant)
	attendance.POST("/engagement", rt.attendanceHandler.RecordEngagement)
	attendance.PUT("/engagement/:attendanceId", rt.attendanceHandler.UpdateScore)
	attendance.GET("/export/:meetingId", rt.attendanceHandler.Export)
}

// setupAnalyticsRoutes configures sensing ingest and analytics query routes
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	analytics := g.Group("/analytics")

	analytics.POST("/emotion", rt.analyticsHandler.RecordEmotion)
	analytics.POST("/fatigue", rt.analyticsHandler.RecordFatigue)
	analytics.POST("/headpose", rt.analyticsHandler.RecordHeadPose)
	analytics.POST("/snapshot/:meetingId", rt.analyticsHandler.GenerateSnapshot)
	analytics.GET("/meeting/:meetingId", rt.analyticsHandler.MeetingAnalytics)
	analytics.GET("/chart-data/:meetingId", rt.analyticsHandler.ChartData)
	analytics.GET("/participant/:participantId/emotions", rt.analyticsHandler.ParticipantEmotions)
	analytics.GET("/participant/:participantId/fatigue", rt.analyticsHandler.ParticipantFatigue)
	analytics.GET("/participant/:participantId/headpose", rt.analyticsHandler.ParticipantHeadPose)
	analytics.GET("/attendance-count/:meetingId", rt.analyticsHandler.AttendanceCount)
	analytics.GET("/engagement-scores/:meetingId", rt.analyticsHandler.EngagementScores)
	analytics.GET("/student-engagement/:meetingId/:participantEmail", rt.analyticsHandler.StudentEngagement)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
