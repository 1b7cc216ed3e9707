package repositories

import (
	"context"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// TranscriptRepository stores transcript lines delivered by the captioning
// pipeline
type TranscriptRepository interface {
	Append(ctx context.Context, line *entities.TranscriptLine) error
	FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.TranscriptLine, error)
}
