// Package memory provides in-memory repository implementations used by the
// test suite and by single-process development runs without MongoDB.
// Documents are stored in insertion order, matching the log-like behavior
// of the Mongo collections.
package memory

import (
	"context"
	"sync"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
	"github.com/edupulse-team/edupulse/internal/domain/repositories"
)

// MeetingRepository is an in-memory MeetingRepository
type MeetingRepository struct {
	mu       sync.RWMutex
	meetings []*entities.Meeting
}

// NewMeetingRepository creates an empty in-memory meeting repository
func NewMeetingRepository() *MeetingRepository {
	return &MeetingRepository{}
}

// Save inserts the meeting or replaces it when the id already exists
func (r *MeetingRepository) Save(_ context.Context, meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *meeting
	for i, m := range r.meetings {
		if m.ID == meeting.ID {
			r.meetings[i] = &clone
			return nil
		}
	}
	r.meetings = append(r.meetings, &clone)
	return nil
}

// FindByID retrieves a meeting by ID
func (r *MeetingRepository) FindByID(_ context.Context, id string) (*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.meetings {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindByTeacherEmail retrieves every meeting owned by the teacher
func (r *MeetingRepository) FindByTeacherEmail(_ context.Context, teacherEmail string) ([]*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.Meeting{}
	for _, m := range r.meetings {
		if m.TeacherEmail == teacherEmail {
			clone := *m
			result = append(result, &clone)
		}
	}
	return result, nil
}

// FindActive retrieves every meeting whose active flag is set
func (r *MeetingRepository) FindActive(_ context.Context) ([]*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.Meeting{}
	for _, m := range r.meetings {
		if m.Active {
			clone := *m
			result = append(result, &clone)
		}
	}
	return result, nil
}

// AttendanceRepository is an in-memory AttendanceRepository
type AttendanceRepository struct {
	mu      sync.RWMutex
	records []*entities.AttendanceRecord
}

// NewAttendanceRepository creates an empty in-memory attendance repository
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

// Save inserts the record or replaces it when the id already exists
func (r *AttendanceRepository) Save(_ context.Context, record *entities.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *record
	for i, rec := range r.records {
		if rec.ID == record.ID {
			r.records[i] = &clone
			return nil
		}
	}
	r.records = append(r.records, &clone)
	return nil
}

// FindByID retrieves an attendance record by ID
func (r *AttendanceRepository) FindByID(_ context.Context, id string) (*entities.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindByMeetingID retrieves all attendance records for a meeting
func (r *AttendanceRepository) FindByMeetingID(_ context.Context, meetingID string) ([]*entities.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.AttendanceRecord{}
	for _, rec := range r.records {
		if rec.MeetingID == meetingID {
			clone := *rec
			result = append(result, &clone)
		}
	}
	return result, nil
}

// FindByParticipantEmail retrieves all attendance records for a participant
func (r *AttendanceRepository) FindByParticipantEmail(_ context.Context, email string) ([]*entities.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.AttendanceRecord{}
	for _, rec := range r.records {
		if rec.ParticipantEmail == email {
			clone := *rec
			result = append(result, &clone)
		}
	}
	return result, nil
}

// FindByMeetingAndEmail resolves the most relevant record for the pair:
// an open session wins; otherwise the most recently joined record.
func (r *AttendanceRepository) FindByMeetingAndEmail(_ context.Context, meetingID, email string) (*entities.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *entities.AttendanceRecord
	for _, rec := range r.records {
		if rec.MeetingID != meetingID || rec.ParticipantEmail != email {
			continue
		}
		if rec.IsOpen() {
			clone := *rec
			return &clone, nil
		}
		if latest == nil || rec.JoinTime.After(latest.JoinTime) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, repositories.ErrNotFound
	}
	clone := *latest
	return &clone, nil
}

// EmotionRepository is an in-memory EmotionRepository
type EmotionRepository struct {
	mu      sync.RWMutex
	entries []*entities.EmotionEntry
}

// NewEmotionRepository creates an empty in-memory emotion repository
func NewEmotionRepository() *EmotionRepository {
	return &EmotionRepository{}
}

// Append stores a new entry
func (r *EmotionRepository) Append(_ context.Context, entry *entities.EmotionEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

// FindByParticipantID retrieves all entries for a participant
func (r *EmotionRepository) FindByParticipantID(_ context.Context, participantID string) ([]*entities.EmotionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.EmotionEntry{}
	for _, e := range r.entries {
		if e.ParticipantID == participantID {
			clone := *e
			result = append(result, &clone)
		}
	}
	return result, nil
}

// FatigueRepository is an in-memory FatigueRepository
type FatigueRepository struct {
	mu      sync.RWMutex
	entries []*entities.FatigueEntry
}

// NewFatigueRepository creates an empty in-memory fatigue repository
func NewFatigueRepository() *FatigueRepository {
	return &FatigueRepository{}
}

// Append stores a new entry
func (r *FatigueRepository) Append(_ context.Context, entry *entities.FatigueEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

// FindByParticipantID retrieves all entries for a participant
func (r *FatigueRepository) FindByParticipantID(_ context.Context, participantID string) ([]*entities.FatigueEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.FatigueEntry{}
	for _, e := range r.entries {
		if e.ParticipantID == participantID {
			clone := *e
			result = append(result, &clone)
		}
	}
	return result, nil
}

// HeadPoseRepository is an in-memory HeadPoseRepository
type HeadPoseRepository struct {
	mu      sync.RWMutex
	entries []*entities.HeadPoseEntry
}

// NewHeadPoseRepository creates an empty in-memory head-pose repository
func NewHeadPoseRepository() *HeadPoseRepository {
	return &HeadPoseRepository{}
}

// Append stores a new entry
func (r *HeadPoseRepository) Append(_ context.Context, entry *entities.HeadPoseEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

// FindByParticipantID retrieves all entries for a participant
func (r *HeadPoseRepository) FindByParticipantID(_ context.Context, participantID string) ([]*entities.HeadPoseEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.HeadPoseEntry{}
	for _, e := range r.entries {
		if e.ParticipantID == participantID {
			clone := *e
			result = append(result, &clone)
		}
	}
	return result, nil
}

// SnapshotRepository is an in-memory SnapshotRepository
type SnapshotRepository struct {
	mu        sync.RWMutex
	snapshots []*entities.MeetingAnalyticsSnapshot
}

// NewSnapshotRepository creates an empty in-memory snapshot repository
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

// Append stores a new snapshot
func (r *SnapshotRepository) Append(_ context.Context, snapshot *entities.MeetingAnalyticsSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *snapshot
	r.snapshots = append(r.snapshots, &clone)
	return nil
}

// FindByMeetingID retrieves all snapshots taken for a meeting
func (r *SnapshotRepository) FindByMeetingID(_ context.Context, meetingID string) ([]*entities.MeetingAnalyticsSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.MeetingAnalyticsSnapshot{}
	for _, s := range r.snapshots {
		if s.MeetingID == meetingID {
			clone := *s
			result = append(result, &clone)
		}
	}
	return result, nil
}

// TranscriptRepository is an in-memory TranscriptRepository
type TranscriptRepository struct {
	mu    sync.RWMutex
	lines []*entities.TranscriptLine
}

// NewTranscriptRepository creates an empty in-memory transcript repository
func NewTranscriptRepository() *TranscriptRepository {
	return &TranscriptRepository{}
}

// Append stores a new transcript line
func (r *TranscriptRepository) Append(_ context.Context, line *entities.TranscriptLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *line
	r.lines = append(r.lines, &clone)
	return nil
}

// FindByMeetingID retrieves the transcript lines for a meeting
func (r *TranscriptRepository) FindByMeetingID(_ context.Context, meetingID string) ([]*entities.TranscriptLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.TranscriptLine{}
	for _, l := range r.lines {
		if l.MeetingID == meetingID {
			clone := *l
			result = append(result, &clone)
		}
	}
	return result, nil
}

// Interface checks
var (
	_ repositories.MeetingRepository    = (*MeetingRepository)(nil)
	_ repositories.AttendanceRepository = (*AttendanceRepository)(nil)
	_ repositories.EmotionRepository    = (*EmotionRepository)(nil)
	_ repositories.FatigueRepository    = (*FatigueRepository)(nil)
	_ repositories.HeadPoseRepository   = (*HeadPoseRepository)(nil)
	_ repositories.SnapshotRepository   = (*SnapshotRepository)(nil)
	_ repositories.TranscriptRepository = (*TranscriptRepository)(nil)
)
