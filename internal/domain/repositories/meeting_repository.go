package repositories

import (
	"context"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Save inserts the meeting or replaces it when the id already exists
	Save(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by ID
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)

	// FindByTeacherEmail retrieves every meeting owned by the teacher
	FindByTeacherEmail(ctx context.Context, teacherEmail string) ([]*entities.Meeting, error)

	// FindActive retrieves every meeting whose active flag is set
	FindActive(ctx context.Context) ([]*entities.Meeting, error)
}
