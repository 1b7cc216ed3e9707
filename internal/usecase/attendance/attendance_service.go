package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
	"github.com/edupulse-team/edupulse/internal/domain/repositories"
	usecaseErrors "github.com/edupulse-team/edupulse/internal/usecase/errors"
)

// ExportArchiver stores a copy of a generated export in object storage.
// Archival is best effort; failures never fail the export itself.
type ExportArchiver interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) error
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AttendanceService handles attendance business logic
type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	archiver       ExportArchiver
	logger         *zap.Logger
}

// NewAttendanceService creates a new attendance service. archiver may be nil
// when export archival is disabled.
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	archiver ExportArchiver,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		archiver:       archiver,
		logger:         logger,
	}
}

// Join assigns a fresh id and join timestamp and persists the record
func (s *AttendanceService) Join(ctx context.Context, record *entities.AttendanceRecord) (*entities.AttendanceRecord, error) {
	record.ID = uuid.New().String()
	record.JoinTime = time.Now()
	if err := s.attendanceRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save attendance record: %w", err)
	}
	return record, nil
}

// Leave closes the session. Calling leave on an already closed record is a
// no-op rather than re-stamping the leave time.
func (s *AttendanceService) Leave(ctx context.Context, attendanceID string) error {
	record, err := s.Get(ctx, attendanceID)
	if err != nil {
		return err
	}
	if !record.IsOpen() {
		return nil
	}
	record.Close(time.Now())
	if err := s.attendanceRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to close attendance record: %w", err)
	}
	return nil
}

// Get retrieves a single attendance record
func (s *AttendanceService) Get(ctx context.Context, attendanceID string) (*entities.AttendanceRecord, error) {
	record, err := s.attendanceRepo.FindByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, usecaseErrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return record, nil
}

// GetByMeeting retrieves all records for a meeting
func (s *AttendanceService) GetByMeeting(ctx context.Context, meetingID string) ([]*entities.AttendanceRecord, error) {
	records, err := s.attendanceRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting attendance: %w", err)
	}
	return records, nil
}

// GetByParticipant retrieves all records for a participant email
func (s *AttendanceService) GetByParticipant(ctx context.Context, email string) ([]*entities.AttendanceRecord, error) {
	records, err := s.attendanceRepo.FindByParticipantEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list participant attendance: %w", err)
	}
	return records, nil
}

// RecordEngagement overwrites the current emotion and engagement-state fields
// of the matching record. The aggregated score is left as is.
func (s *AttendanceService) RecordEngagement(ctx context.Context, input RecordEngagementInput) error {
	record, err := s.attendanceRepo.FindByMeetingAndEmail(ctx, input.MeetingID, input.ParticipantEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return usecaseErrors.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to resolve attendance record: %w", err)
	}

	record.CurrentEmotion = input.Emotion
	record.CurrentEngagement = input.Engagement

	if err := s.attendanceRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save engagement update: %w", err)
	}
	return nil
}

// UpdateEngagementScore overwrites the stored score verbatim. Callers are
// expected to have validated the range.
func (s *AttendanceService) UpdateEngagementScore(ctx context.Context, attendanceID string, score float64) (*entities.AttendanceRecord, error) {
	record, err := s.Get(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	record.EngagementScore = &score
	if err := s.attendanceRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save engagement score: %w", err)
	}
	return record, nil
}

// ExportXLSX renders the meeting's attendance as a spreadsheet and, when an
// archiver is configured, uploads a copy to object storage.
func (s *AttendanceService) ExportXLSX(ctx context.Context, meetingID string) ([]byte, error) {
	records, err := s.GetByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	data, err := buildAttendanceWorkbook(records)
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance workbook: %w", err)
	}

	if s.archiver != nil {
		objectName := fmt.Sprintf("exports/attendance_%s.xlsx", meetingID)
		if err := s.archiver.Upload(ctx, objectName, data, xlsxContentType); err != nil {
			s.logger.Warn("export archival failed",
				zap.String("meeting_id", meetingID),
				zap.String("object", objectName),
				zap.Error(err),
			)
		}
	}

	return data, nil
}
