package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
	"github.com/edupulse-team/edupulse/internal/domain/repositories"
)

// snapshotRepository implements the SnapshotRepository interface
type snapshotRepository struct {
	col *mongo.Collection
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *mongo.Database) repositories.SnapshotRepository {
	return &snapshotRepository{col: db.Collection(entities.MeetingAnalyticsSnapshot{}.CollectionName())}
}

// Append stores a new snapshot
func (r *snapshotRepository) Append(ctx context.Context, snapshot *entities.MeetingAnalyticsSnapshot) error {
	_, err := r.col.InsertOne(ctx, snapshot)
	return err
}

// FindByMeetingID retrieves all snapshots taken for a meeting
func (r *snapshotRepository) FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.MeetingAnalyticsSnapshot, error) {
	cursor, err := r.col.Find(ctx, bson.M{"meetingId": meetingID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	snapshots := []*entities.MeetingAnalyticsSnapshot{}
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
