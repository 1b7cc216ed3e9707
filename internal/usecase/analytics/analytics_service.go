package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
	"github.com/edupulse-team/edupulse/internal/domain/repositories"
	usecaseErrors "github.com/edupulse-team/edupulse/internal/usecase/errors"
)

// AnalyticsService ingests sensor signals and maintains the derived
// engagement state on attendance records.
//
// Concurrent emotion and fatigue updates for the same participant perform
// independent read-modify-write cycles on the attendance record; one score
// recomputation can overwrite the other. Accepted best-effort behavior.
type AnalyticsService struct {
	emotionRepo    repositories.EmotionRepository
	fatigueRepo    repositories.FatigueRepository
	headPoseRepo   repositories.HeadPoseRepository
	snapshotRepo   repositories.SnapshotRepository
	attendanceRepo repositories.AttendanceRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	emotionRepo repositories.EmotionRepository,
	fatigueRepo repositories.FatigueRepository,
	headPoseRepo repositories.HeadPoseRepository,
	snapshotRepo repositories.SnapshotRepository,
	attendanceRepo repositories.AttendanceRepository,
) *AnalyticsService {
	return &AnalyticsService{
		emotionRepo:    emotionRepo,
		fatigueRepo:    fatigueRepo,
		headPoseRepo:   headPoseRepo,
		snapshotRepo:   snapshotRepo,
		attendanceRepo: attendanceRepo,
	}
}

// RecordEmotion appends the entry and recomputes the participant's score
// from the new emotion and the stored engagement state
func (s *AnalyticsService) RecordEmotion(ctx context.Context, input RecordEmotionInput) error {
	entry := &entities.EmotionEntry{
		ID:            uuid.New().String(),
		MeetingID:     input.MeetingID,
		ParticipantID: input.ParticipantID,
		Emotion:       input.Emotion,
		Timestamp:     orNow(input.Timestamp),
	}
	if err := s.emotionRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append emotion entry: %w", err)
	}

	record, err := s.resolveAttendance(ctx, input.MeetingID, input.ParticipantID)
	if err != nil {
		return err
	}

	record.CurrentEmotion = input.Emotion
	score := computeEngagementScore(input.Emotion, record.CurrentEngagement)
	record.EngagementScore = &score

	if err := s.attendanceRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save engagement update: %w", err)
	}
	return nil
}

// RecordFatigue appends the entry and recomputes the participant's score
// from the stored emotion and the new fatigue status
func (s *AnalyticsService) RecordFatigue(ctx context.Context, input RecordFatigueInput) error {
	entry := &entities.FatigueEntry{
		ID:            uuid.New().String(),
		MeetingID:     input.MeetingID,
		ParticipantID: input.ParticipantID,
		FatigueStatus: input.FatigueStatus,
		Timestamp:     orNow(input.Timestamp),
	}
	if err := s.fatigueRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append fatigue entry: %w", err)
	}

	record, err := s.resolveAttendance(ctx, input.MeetingID, input.ParticipantID)
	if err != nil {
		return err
	}

	record.CurrentEngagement = input.FatigueStatus
	score := computeEngagementScore(record.CurrentEmotion, input.FatigueStatus)
	record.EngagementScore = &score

	if err := s.attendanceRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save engagement update: %w", err)
	}
	return nil
}

// RecordHeadPose appends the entry; no attendance side effect
func (s *AnalyticsService) RecordHeadPose(ctx context.Context, input RecordHeadPoseInput) error {
	entry := &entities.HeadPoseEntry{
		ID:            uuid.New().String(),
		MeetingID:     input.MeetingID,
		ParticipantID: input.ParticipantID,
		Yaw:           input.Yaw,
		Pitch:         input.Pitch,
		Roll:          input.Roll,
		Timestamp:     orNow(input.Timestamp),
	}
	if err := s.headPoseRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append head pose entry: %w", err)
	}
	return nil
}

// GenerateSnapshot captures every participant's engagement state for the
// meeting. The three maps are keyed by participant email; a never-computed
// score maps to 0.0.
func (s *AnalyticsService) GenerateSnapshot(ctx context.Context, meetingID string) error {
	records, err := s.attendanceRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("failed to list attendance records: %w", err)
	}

	engagementScores := make(map[string]float64)
	currentEmotions := make(map[string]string)
	currentFatigue := make(map[string]string)
	for _, record := range records {
		key := record.ParticipantEmail
		engagementScores[key] = record.Score()
		currentEmotions[key] = record.CurrentEmotion
		currentFatigue[key] = record.CurrentEngagement
	}

	snapshot := &entities.MeetingAnalyticsSnapshot{
		ID:               uuid.New().String(),
		MeetingID:        meetingID,
		Timestamp:        time.Now(),
		EngagementScores: engagementScores,
		CurrentEmotions:  currentEmotions,
		CurrentFatigue:   currentFatigue,
	}
	if err := s.snapshotRepo.Append(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// MeetingAnalytics retrieves all snapshots taken for a meeting
func (s *AnalyticsService) MeetingAnalytics(ctx context.Context, meetingID string) ([]*entities.MeetingAnalyticsSnapshot, error) {
	snapshots, err := s.snapshotRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// ParticipantEmotions retrieves the emotion log for a participant
func (s *AnalyticsService) ParticipantEmotions(ctx context.Context, participantID string) ([]*entities.EmotionEntry, error) {
	entries, err := s.emotionRepo.FindByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emotion entries: %w", err)
	}
	return entries, nil
}

// ParticipantFatigue retrieves the fatigue log for a participant
func (s *AnalyticsService) ParticipantFatigue(ctx context.Context, participantID string) ([]*entities.FatigueEntry, error) {
	entries, err := s.fatigueRepo.FindByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fatigue entries: %w", err)
	}
	return entries, nil
}

// ParticipantHeadPose retrieves the head-pose log for a participant
func (s *AnalyticsService) ParticipantHeadPose(ctx context.Context, participantID string) ([]*entities.HeadPoseEntry, error) {
	entries, err := s.headPoseRepo.FindByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list head pose entries: %w", err)
	}
	return entries, nil
}

// AttendanceCount counts attendance records for a meeting
func (s *AnalyticsService) AttendanceCount(ctx context.Context, meetingID string) (int, error) {
	records, err := s.attendanceRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return len(records), nil
}

// EngagementScores lists the live engagement view of every participant
func (s *AnalyticsService) EngagementScores(ctx context.Context, meetingID string) ([]EngagementScoreRow, error) {
	records, err := s.attendanceRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	rows := make([]EngagementScoreRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, EngagementScoreRow{
			ParticipantID:     record.ID,
			ParticipantEmail:  record.ParticipantEmail,
			ParticipantName:   record.ParticipantName,
			EngagementScore:   record.EngagementScore,
			CurrentEmotion:    record.CurrentEmotion,
			CurrentEngagement: record.CurrentEngagement,
		})
	}
	return rows, nil
}

// StudentEngagement resolves one participant's live engagement record
func (s *AnalyticsService) StudentEngagement(ctx context.Context, meetingID, participantEmail string) (*entities.AttendanceRecord, error) {
	record, err := s.attendanceRepo.FindByMeetingAndEmail(ctx, meetingID, participantEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, usecaseErrors.ErrEngagementNotFound
		}
		return nil, fmt.Errorf("failed to resolve engagement record: %w", err)
	}
	return record, nil
}

// resolveAttendance finds the attendance record the signal belongs to.
// The sensing pipeline identifies participants by email.
func (s *AnalyticsService) resolveAttendance(ctx context.Context, meetingID, participantID string) (*entities.AttendanceRecord, error) {
	record, err := s.attendanceRepo.FindByMeetingAndEmail(ctx, meetingID, participantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, usecaseErrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to resolve attendance record: %w", err)
	}
	return record, nil
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
