package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
	"github.com/edupulse-team/edupulse/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	col *mongo.Collection
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *mongo.Database) repositories.MeetingRepository {
	return &meetingRepository{col: db.Collection(entities.Meeting{}.CollectionName())}
}

// Save inserts the meeting or replaces it when the id already exists
func (r *meetingRepository) Save(ctx context.Context, meeting *entities.Meeting) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": meeting.ID}, meeting, opts)
	return err
}

// FindByID retrieves a meeting by ID
func (r *meetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&meeting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// FindByTeacherEmail retrieves every meeting owned by the teacher
func (r *meetingRepository) FindByTeacherEmail(ctx context.Context, teacherEmail string) ([]*entities.Meeting, error) {
	return r.find(ctx, bson.M{"teacherEmail": teacherEmail})
}

// FindActive retrieves every meeting whose active flag is set
func (r *meetingRepository) FindActive(ctx context.Context) ([]*entities.Meeting, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *meetingRepository) find(ctx context.Context, filter bson.M) ([]*entities.Meeting, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meetings := []*entities.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}
