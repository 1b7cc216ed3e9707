package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
	"github.com/edupulse-team/edupulse/internal/domain/repositories"
	"github.com/edupulse-team/edupulse/internal/infrastructure/cache"
	attendanceUsecase "github.com/edupulse-team/edupulse/internal/usecase/attendance"
	usecaseErrors "github.com/edupulse-team/edupulse/internal/usecase/errors"
)

const (
	activeMeetingsKey = "meetings:active"
	activeMeetingsTTL = 10 * time.Second
)

// MeetingService handles meeting lifecycle business logic
type MeetingService struct {
	meetingRepo       repositories.MeetingRepository
	transcriptRepo    repositories.TranscriptRepository
	attendanceService attendanceUsecase.Service
	cache             cache.Store
	logger            *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	transcriptRepo repositories.TranscriptRepository,
	attendanceService attendanceUsecase.Service,
	cacheStore cache.Store,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo:       meetingRepo,
		transcriptRepo:    transcriptRepo,
		attendanceService: attendanceService,
		cache:             cacheStore,
		logger:            logger,
	}
}

// Create starts a new active meeting owned by the teacher
func (s *MeetingService) Create(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	startTime := time.Now().Format(time.RFC3339Nano)
	if input.StartTime != nil {
		startTime = input.StartTime.Format(time.RFC3339Nano)
	}

	meeting := &entities.Meeting{
		ID:             uuid.New().String(),
		Title:          input.Title,
		TeacherEmail:   input.TeacherEmail,
		TeacherName:    input.TeacherName,
		StartTime:      startTime,
		Active:         true,
		ParticipantIDs: []string{},
		JitsiMeetingID: input.JitsiMeetingID,
	}

	if err := s.meetingRepo.Save(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.invalidateActiveCache(ctx)
	return meeting, nil
}

// Join adds a participant to an active meeting
func (s *MeetingService) Join(ctx context.Context, meetingID, userEmail, userName string) (*JoinOutput, error) {
	meeting, err := s.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if !meeting.Active {
		return nil, usecaseErrors.ErrMeetingNotActive
	}

	// An open session for this email means the user is already in the
	// meeting; hand back the existing session untouched.
	existing, err := s.attendanceService.GetByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	for _, record := range existing {
		if record.ParticipantEmail == userEmail && record.IsOpen() {
			return &JoinOutput{MeetingID: meetingID, ParticipantID: record.ID}, nil
		}
	}

	score := entities.DefaultEngagementScore
	record := &entities.AttendanceRecord{
		MeetingID:         meetingID,
		ParticipantEmail:  userEmail,
		ParticipantName:   userName,
		EngagementScore:   &score,
		CurrentEmotion:    entities.DefaultEmotion,
		CurrentEngagement: entities.DefaultEngagementState,
	}
	record, err = s.attendanceService.Join(ctx, record)
	if err != nil {
		return nil, err
	}

	if meeting.AddParticipant(userEmail) {
		if err := s.meetingRepo.Save(ctx, meeting); err != nil {
			return nil, fmt.Errorf("failed to update participant set: %w", err)
		}
	}

	return &JoinOutput{MeetingID: meetingID, ParticipantID: record.ID}, nil
}

// Leave closes the participant's session and removes the email from the
// meeting's participant set
func (s *MeetingService) Leave(ctx context.Context, attendanceID string) error {
	record, err := s.attendanceService.Get(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrAttendanceNotFound) {
			return usecaseErrors.ErrParticipantNotFound
		}
		return err
	}

	if err := s.attendanceService.Leave(ctx, record.ID); err != nil {
		return err
	}

	meeting, err := s.GetByID(ctx, record.MeetingID)
	if err != nil {
		return err
	}
	meeting.RemoveParticipant(record.ParticipantEmail)
	if err := s.meetingRepo.Save(ctx, meeting); err != nil {
		return fmt.Errorf("failed to update participant set: %w", err)
	}
	return nil
}

// End closes every open attendance record and deactivates the meeting
func (s *MeetingService) End(ctx context.Context, meetingID, teacherEmail string) error {
	meeting, err := s.GetByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if meeting.TeacherEmail != teacherEmail {
		return usecaseErrors.ErrNotMeetingOwner
	}

	records, err := s.attendanceService.GetByMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	for _, record := range records {
		if record.IsOpen() {
			if err := s.attendanceService.Leave(ctx, record.ID); err != nil {
				return err
			}
		}
	}

	meeting.End(time.Now())
	if err := s.meetingRepo.Save(ctx, meeting); err != nil {
		return fmt.Errorf("failed to end meeting: %w", err)
	}

	s.invalidateActiveCache(ctx)
	return nil
}

// GetByID retrieves a meeting
func (s *MeetingService) GetByID(ctx context.Context, meetingID string) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// TeacherMeetings retrieves every meeting owned by the teacher
func (s *MeetingService) TeacherMeetings(ctx context.Context, teacherEmail string) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.FindByTeacherEmail(ctx, teacherEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher meetings: %w", err)
	}
	return meetings, nil
}

// ActiveMeetings retrieves every currently active meeting, served from a
// short-TTL cache when one is configured
func (s *MeetingService) ActiveMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	if s.cache != nil {
		if cached, hit, err := s.cache.Get(ctx, activeMeetingsKey); err == nil && hit {
			var meetings []*entities.Meeting
			if err := json.Unmarshal([]byte(cached), &meetings); err == nil {
				return meetings, nil
			}
		}
	}

	meetings, err := s.meetingRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active meetings: %w", err)
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(meetings); err == nil {
			if err := s.cache.Set(ctx, activeMeetingsKey, string(encoded), activeMeetingsTTL); err != nil {
				s.logger.Warn("active meetings cache write failed", zap.Error(err))
			}
		}
	}

	return meetings, nil
}

// Attendance retrieves all attendance records for a meeting
func (s *MeetingService) Attendance(ctx context.Context, meetingID string) ([]*entities.AttendanceRecord, error) {
	return s.attendanceService.GetByMeeting(ctx, meetingID)
}

// IsActive reports whether the meeting exists and is active
func (s *MeetingService) IsActive(ctx context.Context, meetingID string) bool {
	meeting, err := s.GetByID(ctx, meetingID)
	if err != nil {
		return false
	}
	return meeting.Active
}

// ParticipantCount counts attendance records for a meeting
func (s *MeetingService) ParticipantCount(ctx context.Context, meetingID string) (int, error) {
	records, err := s.attendanceService.GetByMeeting(ctx, meetingID)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// AddTranscriptLine stores one line delivered by the captioning pipeline
func (s *MeetingService) AddTranscriptLine(ctx context.Context, input AddTranscriptLineInput) (*entities.TranscriptLine, error) {
	if _, err := s.GetByID(ctx, input.MeetingID); err != nil {
		return nil, err
	}

	line := &entities.TranscriptLine{
		ID:            uuid.New().String(),
		MeetingID:     input.MeetingID,
		ParticipantID: input.ParticipantID,
		Text:          input.Text,
		Timestamp:     input.Timestamp,
	}
	if err := s.transcriptRepo.Append(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to store transcript line: %w", err)
	}
	return line, nil
}

// Transcript retrieves the ingested transcript for a meeting
func (s *MeetingService) Transcript(ctx context.Context, meetingID string) ([]*entities.TranscriptLine, error) {
	if _, err := s.GetByID(ctx, meetingID); err != nil {
		return nil, err
	}

	lines, err := s.transcriptRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcript lines: %w", err)
	}
	if lines == nil {
		lines = []*entities.TranscriptLine{}
	}
	return lines, nil
}

// ExportNotes produces the notes workbook. Notes capture is not yet
// supported; the workbook carries the header row only.
func (s *MeetingService) ExportNotes(ctx context.Context, meetingID string) ([]byte, error) {
	if _, err := s.GetByID(ctx, meetingID); err != nil {
		return nil, err
	}
	return buildNotesWorkbook()
}

func (s *MeetingService) invalidateActiveCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, activeMeetingsKey); err != nil {
		s.logger.Warn("active meetings cache invalidation failed", zap.Error(err))
	}
}
