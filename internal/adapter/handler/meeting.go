package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDto "github.com/edupulse-team/edupulse/internal/adapter/dto/meeting"
	usecaseErrors "github.com/edupulse-team/edupulse/internal/usecase/errors"
	meetingUsecase "github.com/edupulse-team/edupulse/internal/usecase/meeting"
)

// Meeting handles meeting lifecycle HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Create handles POST /api/meetings/create
func (h *Meeting) Create(c echo.Context) error {
	teacherEmail := c.QueryParam("teacherEmail")
	teacherName := c.QueryParam("teacherName")
	if teacherEmail == "" || teacherName == "" {
		return HandleBadRequest(h.logger, c,
			fmt.Errorf("%w: teacherEmail and teacherName are required", usecaseErrors.ErrInvalidInput))
	}

	var req meetingDto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}

	input := meetingUsecase.CreateMeetingInput{
		Title:          req.Title,
		StartTime:      req.StartTime,
		JitsiMeetingID: req.JitsiMeetingID,
		TeacherEmail:   teacherEmail,
		TeacherName:    teacherName,
	}

	created, err := h.meetingService.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, created)
}

// Join handles POST /api/meetings/join/:meetingId
func (h *Meeting) Join(c echo.Context) error {
	meetingID := c.Param("meetingId")
	userEmail := c.QueryParam("userEmail")
	userName := c.QueryParam("userName")
	if userEmail == "" || userName == "" {
		return HandleBadRequest(h.logger, c,
			fmt.Errorf("%w: userEmail and userName are required", usecaseErrors.ErrInvalidInput))
	}

	output, err := h.meetingService.Join(c.Request().Context(), meetingID, userEmail, userName)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, output)
}

// Leave handles POST /api/meetings/leave/:participantId
func (h *Meeting) Leave(c echo.Context) error {
	if err := h.meetingService.Leave(c.Request().Context(), c.Param("participantId")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "Left meeting successfully")
}

// End handles POST /api/meetings/end/:meetingId
func (h *Meeting) End(c echo.Context) error {
	meetingID := c.Param("meetingId")
	teacherEmail := c.QueryParam("teacherEmail")
	if teacherEmail == "" {
		return HandleBadRequest(h.logger, c,
			fmt.Errorf("%w: teacherEmail is required", usecaseErrors.ErrInvalidInput))
	}

	if err := h.meetingService.End(c.Request().Context(), meetingID, teacherEmail); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "Meeting ended successfully")
}

// TeacherMeetings handles GET /api/meetings/teacher/:teacherEmail
func (h *Meeting) TeacherMeetings(c echo.Context) error {
	meetings, err := h.meetingService.TeacherMeetings(c.Request().Context(), c.Param("teacherEmail"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, meetings)
}

// ActiveMeetings handles GET /api/meetings/active
func (h *Meeting) ActiveMeetings(c echo.Context) error {
	meetings, err := h.meetingService.ActiveMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, meetings)
}

// Attendance handles GET /api/meetings/:meetingId/attendance
func (h *Meeting) Attendance(c echo.Context) error {
	records, err := h.meetingService.Attendance(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// Transcript handles GET /api/meetings/:meetingId/transcript
func (h *Meeting) Transcript(c echo.Context) error {
	lines, err := h.meetingService.Transcript(c.Request().Context(), c.Param("meetingId"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, lines)
}

// AddTranscriptLine handles POST /api/meetings/transcript
func (h *Meeting) AddTranscriptLine(c echo.Context) error {
	var req meetingDto.AddTranscriptLineRequest
	if err := c.Bind(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleBadRequest(h.logger, c, err)
	}

	input := meetingUsecase.AddTranscriptLineInput{
		MeetingID:     req.MeetingID,
		ParticipantID: req.ParticipantID,
		Text:          req.Text,
		Timestamp:     req.Timestamp,
	}

	line, err := h.meetingService.AddTranscriptLine(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, line)
}

// ExportNotes handles GET /api/meetings/export/notes/:meetingId
func (h *Meeting) ExportNotes(c echo.Context) error {
	meetingID := c.Param("meetingId")

	data, err := h.meetingService.ExportNotes(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return respondWorkbook(c, fmt.Sprintf("notes_%s.xlsx", meetingID), data)
}
