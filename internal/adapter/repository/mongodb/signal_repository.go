package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
	"github.com/edupulse-team/edupulse/internal/domain/repositories"
)

// emotionRepository implements the EmotionRepository interface
type emotionRepository struct {
	col *mongo.Collection
}

// NewEmotionRepository creates a new emotion repository
func NewEmotionRepository(db *mongo.Database) repositories.EmotionRepository {
	return &emotionRepository{col: db.Collection(entities.EmotionEntry{}.CollectionName())}
}

// Append stores a new entry
func (r *emotionRepository) Append(ctx context.Context, entry *entities.EmotionEntry) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

// FindByParticipantID retrieves all entries for a participant
func (r *emotionRepository) FindByParticipantID(ctx context.Context, participantID string) ([]*entities.EmotionEntry, error) {
	cursor, err := r.col.Find(ctx, bson.M{"participantId": participantID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*entities.EmotionEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// fatigueRepository implements the FatigueRepository interface
type fatigueRepository struct {
	col *mongo.Collection
}

// NewFatigueRepository creates a new fatigue repository
func NewFatigueRepository(db *mongo.Database) repositories.FatigueRepository {
	return &fatigueRepository{col: db.Collection(entities.FatigueEntry{}.CollectionName())}
}

// Append stores a new entry
func (r *fatigueRepository) Append(ctx context.Context, entry *entities.FatigueEntry) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

// FindByParticipantID retrieves all entries for a participant
func (r *fatigueRepository) FindByParticipantID(ctx context.Context, participantID string) ([]*entities.FatigueEntry, error) {
	cursor, err := r.col.Find(ctx, bson.M{"participantId": participantID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*entities.FatigueEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// headPoseRepository implements the HeadPoseRepository interface
type headPoseRepository struct {
	col *mongo.Collection
}

// NewHeadPoseRepository creates a new head-pose repository
func NewHeadPoseRepository(db *mongo.Database) repositories.HeadPoseRepository {
	return &headPoseRepository{col: db.Collection(entities.HeadPoseEntry{}.CollectionName())}
}

// Append stores a new entry
func (r *headPoseRepository) Append(ctx context.Context, entry *entities.HeadPoseEntry) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

// FindByParticipantID retrieves all entries for a participant
func (r *headPoseRepository) FindByParticipantID(ctx context.Context, participantID string) ([]*entities.HeadPoseEntry, error) {
	cursor, err := r.col.Find(ctx, bson.M{"participantId": participantID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*entities.HeadPoseEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
