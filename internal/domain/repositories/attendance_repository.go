package repositories

import (
	"context"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	// Save inserts the record or replaces it when the id already exists
	Save(ctx context.Context, record *entities.AttendanceRecord) error

	// FindByID retrieves an attendance record by ID
	FindByID(ctx context.Context, id string) (*entities.AttendanceRecord, error)

	// FindByMeetingID retrieves all attendance records for a meeting
	FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.AttendanceRecord, error)

	// FindByParticipantEmail retrieves all attendance records for a participant
	FindByParticipantEmail(ctx context.Context, email string) ([]*entities.AttendanceRecord, error)

	// FindByMeetingAndEmail resolves the most relevant record for the pair:
	// an open session wins; otherwise the most recently joined record.
	FindByMeetingAndEmail(ctx context.Context, meetingID, email string) (*entities.AttendanceRecord, error)
}
