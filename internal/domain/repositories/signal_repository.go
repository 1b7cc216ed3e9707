package repositories

import (
	"context"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// EmotionRepository is the append-only log of emotion observations
type EmotionRepository interface {
	// Append stores a new entry; entries are never mutated afterwards
	Append(ctx context.Context, entry *entities.EmotionEntry) error

	// FindByParticipantID retrieves all entries for a participant
	FindByParticipantID(ctx context.Context, participantID string) ([]*entities.EmotionEntry, error)
}

// FatigueRepository is the append-only log of fatigue observations
type FatigueRepository interface {
	Append(ctx context.Context, entry *entities.FatigueEntry) error
	FindByParticipantID(ctx context.Context, participantID string) ([]*entities.FatigueEntry, error)
}

// HeadPoseRepository is the append-only log of head-pose observations
type HeadPoseRepository interface {
	Append(ctx context.Context, entry *entities.HeadPoseEntry) error
	FindByParticipantID(ctx context.Context, participantID string) ([]*entities.HeadPoseEntry, error)
}
