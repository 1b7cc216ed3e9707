package repositories

import (
	"context"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// SnapshotRepository is the append-only log of analytics snapshots
type SnapshotRepository interface {
	// Append stores a new snapshot; prior snapshots are never overwritten
	Append(ctx context.Context, snapshot *entities.MeetingAnalyticsSnapshot) error

	// FindByMeetingID retrieves all snapshots taken for a meeting
	FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.MeetingAnalyticsSnapshot, error)
}
