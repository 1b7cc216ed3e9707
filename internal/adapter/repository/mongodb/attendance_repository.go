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

// attendanceRepository implements the AttendanceRepository interface
type attendanceRepository struct {
	col *mongo.Collection
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *mongo.Database) repositories.AttendanceRepository {
	return &attendanceRepository{col: db.Collection(entities.AttendanceRecord{}.CollectionName())}
}

// Save inserts the record or replaces it when the id already exists
func (r *attendanceRepository) Save(ctx context.Context, record *entities.AttendanceRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts)
	return err
}

// FindByID retrieves an attendance record by ID
func (r *attendanceRepository) FindByID(ctx context.Context, id string) (*entities.AttendanceRecord, error) {
	var record entities.AttendanceRecord
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByMeetingID retrieves all attendance records for a meeting
func (r *attendanceRepository) FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.AttendanceRecord, error) {
	return r.find(ctx, bson.M{"meetingId": meetingID})
}

// FindByParticipantEmail retrieves all attendance records for a participant
func (r *attendanceRepository) FindByParticipantEmail(ctx context.Context, email string) ([]*entities.AttendanceRecord, error) {
	return r.find(ctx, bson.M{"participantEmail": email})
}

// FindByMeetingAndEmail resolves the most relevant record for the pair:
// an open session wins; otherwise the most recently joined record.
func (r *attendanceRepository) FindByMeetingAndEmail(ctx context.Context, meetingID, email string) (*entities.AttendanceRecord, error) {
	pair := bson.M{"meetingId": meetingID, "participantEmail": email}

	open := bson.M{"meetingId": meetingID, "participantEmail": email, "leaveTime": bson.M{"$exists": false}}
	var record entities.AttendanceRecord
	err := r.col.FindOne(ctx, open).Decode(&record)
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "joinTime", Value: -1}})
	err = r.col.FindOne(ctx, pair, opts).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) find(ctx context.Context, filter bson.M) ([]*entities.AttendanceRecord, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []*entities.AttendanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
