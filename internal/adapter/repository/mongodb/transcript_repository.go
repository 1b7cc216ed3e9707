package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
	"github.com/edupulse-team/edupulse/internal/domain/repositories"
)

// transcriptRepository implements the TranscriptRepository interface
type transcriptRepository struct {
	col *mongo.Collection
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *mongo.Database) repositories.TranscriptRepository {
	return &transcriptRepository{col: db.Collection(entities.TranscriptLine{}.CollectionName())}
}

// Append stores a new transcript line
func (r *transcriptRepository) Append(ctx context.Context, line *entities.TranscriptLine) error {
	_, err := r.col.InsertOne(ctx, line)
	return err
}

// FindByMeetingID retrieves the transcript lines for a meeting
func (r *transcriptRepository) FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.TranscriptLine, error) {
	cursor, err := r.col.Find(ctx, bson.M{"meetingId": meetingID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	lines := []*entities.TranscriptLine{}
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
