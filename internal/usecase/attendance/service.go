package attendance

import (
	"context"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// RecordEngagementInput carries a live engagement update from the sensing
// pipeline, addressed by (meeting, participant email).
type RecordEngagementInput struct {
	ParticipantEmail string
	MeetingID        string
	Emotion          string
	Engagement       string
	Timestamp        string
}

// Service defines the interface for the attendance use case
type Service interface {
	// Join assigns a fresh id and join timestamp and persists the record.
	// Duplicate prevention is the caller's responsibility.
	Join(ctx context.Context, record *entities.AttendanceRecord) (*entities.AttendanceRecord, error)

	// Leave closes the session. A second call on an already closed record
	// is a no-op.
	Leave(ctx context.Context, attendanceID string) error

	// Get retrieves a single attendance record
	Get(ctx context.Context, attendanceID string) (*entities.AttendanceRecord, error)

	// GetByMeeting retrieves all records for a meeting
	GetByMeeting(ctx context.Context, meetingID string) ([]*entities.AttendanceRecord, error)

	// GetByParticipant retrieves all records for a participant email
	GetByParticipant(ctx context.Context, email string) ([]*entities.AttendanceRecord, error)

	// RecordEngagement overwrites the current emotion and engagement-state
	// fields of the matching record. Does not touch the aggregated score.
	RecordEngagement(ctx context.Context, input RecordEngagementInput) error

	// UpdateEngagementScore overwrites the stored score verbatim
	UpdateEngagementScore(ctx context.Context, attendanceID string, score float64) (*entities.AttendanceRecord, error)

	// ExportXLSX renders the meeting's attendance as a spreadsheet.
	// An empty meeting yields a valid workbook with only the header row.
	ExportXLSX(ctx context.Context, meetingID string) ([]byte, error)
}

// Ensure AttendanceService implements Service interface
var _ Service = (*AttendanceService)(nil)
