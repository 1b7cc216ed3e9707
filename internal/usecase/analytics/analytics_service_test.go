package analytics

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/edupulse-team/edupulse/internal/adapter/repository/memory"
	"github.com/edupulse-team/edupulse/internal/domain/entities"
	usecaseErrors "github.com/edupulse-team/edupulse/internal/usecase/errors"
)

type analyticsEnv struct {
	service        *AnalyticsService
	attendanceRepo *memory.AttendanceRepository
	snapshotRepo   *memory.SnapshotRepository
}

func newAnalyticsEnv() *analyticsEnv {
	attendanceRepo := memory.NewAttendanceRepository()
	snapshotRepo := memory.NewSnapshotRepository()
	service := NewAnalyticsService(
		memory.NewEmotionRepository(),
		memory.NewFatigueRepository(),
		memory.NewHeadPoseRepository(),
		snapshotRepo,
		attendanceRepo,
	)
	return &analyticsEnv{
		service:        service,
		attendanceRepo: attendanceRepo,
		snapshotRepo:   snapshotRepo,
	}
}

func seedAttendance(t *testing.T, env *analyticsEnv, id, meetingID, email string) {
	t.Helper()
	score := entities.DefaultEngagementScore
	record := &entities.AttendanceRecord{
		ID:                id,
		MeetingID:         meetingID,
		ParticipantEmail:  email,
		ParticipantName:   "Student " + id,
		JoinTime:          time.Now(),
		EngagementScore:   &score,
		CurrentEmotion:    entities.DefaultEmotion,
		CurrentEngagement: entities.DefaultEngagementState,
	}
	if err := env.attendanceRepo.Save(context.Background(), record); err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
}

func TestRecordEmotionUpdatesAttendance(t *testing.T) {
	env := newAnalyticsEnv()
	ctx := context.Background()
	seedAttendance(t, env, "a1", "m1", "s1@school.edu")

	err := env.service.RecordEmotion(ctx, RecordEmotionInput{
		MeetingID:     "m1",
		ParticipantID: "s1@school.edu",
		Emotion:       "happy",
	})
	if err != nil {
		t.Fatalf("record emotion: %v", err)
	}

	record, err := env.attendanceRepo.FindByID(ctx, "a1")
	if err != nil {
		t.Fatalf("find attendance: %v", err)
	}
	if record.CurrentEmotion != "happy" {
		t.Fatalf("expected current emotion happy, got %q", record.CurrentEmotion)
	}
	// happy (0.8) while Alert (+0.1)
	if math.Abs(record.Score()-0.9) > 1e-9 {
		t.Fatalf("expected score 0.9, got %v", record.Score())
	}

	entries, err := env.service.ParticipantEmotions(ctx, "s1@school.edu")
	if err != nil {
		t.Fatalf("participant emotions: %v", err)
	}
	if len(entries) != 1 || entries[0].Emotion != "happy" {
		t.Fatalf("unexpected emotion log: %+v", entries)
	}
}

func TestRecordFatigueUpdatesAttendance(t *testing.T) {
	env := newAnalyticsEnv()
	ctx := context.Background()
	seedAttendance(t, env, "a1", "m1", "s1@school.edu")

	err := env.service.RecordFatigue(ctx, RecordFatigueInput{
		MeetingID:     "m1",
		ParticipantID: "s1@school.edu",
		FatigueStatus: "Sleepy",
	})
	if err != nil {
		t.Fatalf("record fatigue: %v", err)
	}

	record, err := env.attendanceRepo.FindByID(ctx, "a1")
	if err != nil {
		t.Fatalf("find attendance: %v", err)
	}
	if record.CurrentEngagement != "Sleepy" {
		t.Fatalf("expected engagement state Sleepy, got %q", record.CurrentEngagement)
	}
	// neutral (0.5) while Sleepy (-0.1)
	if math.Abs(record.Score()-0.4) > 1e-9 {
		t.Fatalf("expected score 0.4, got %v", record.Score())
	}
}

func TestRecordEmotionUnknownParticipant(t *testing.T) {
	env := newAnalyticsEnv()

	err := env.service.RecordEmotion(context.Background(), RecordEmotionInput{
		MeetingID:     "m1",
		ParticipantID: "nobody@school.edu",
		Emotion:       "happy",
	})
	if !errors.Is(err, usecaseErrors.ErrAttendanceNotFound) {
		t.Fatalf("expected ErrAttendanceNotFound, got %v", err)
	}
}

func TestRecordHeadPoseHasNoAttendanceSideEffect(t *testing.T) {
	env := newAnalyticsEnv()
	ctx := context.Background()
	seedAttendance(t, env, "a1", "m1", "s1@school.edu")

	err := env.service.RecordHeadPose(ctx, RecordHeadPoseInput{
		MeetingID:     "m1",
		ParticipantID: "s1@school.edu",
		Yaw:           12.5,
		Pitch:         -3.0,
		Roll:          0.0,
	})
	if err != nil {
		t.Fatalf("record head pose: %v", err)
	}

	entries, err := env.service.ParticipantHeadPose(ctx, "s1@school.edu")
	if err != nil {
		t.Fatalf("participant head pose: %v", err)
	}
	if len(entries) != 1 || entries[0].Yaw != 12.5 {
		t.Fatalf("unexpected head pose log: %+v", entries)
	}

	record, err := env.attendanceRepo.FindByID(ctx, "a1")
	if err != nil {
		t.Fatalf("find attendance: %v", err)
	}
	if math.Abs(record.Score()-entities.DefaultEngagementScore) > 1e-9 {
		t.Fatalf("head pose must not change the score, got %v", record.Score())
	}
}

func TestGenerateSnapshot(t *testing.T) {
	env := newAnalyticsEnv()
	ctx := context.Background()

	seedAttendance(t, env, "a1", "m1", "s1@school.edu")
	// Second participant never got a score computed.
	if err := env.attendanceRepo.Save(ctx, &entities.AttendanceRecord{
		ID:               "a2",
		MeetingID:        "m1",
		ParticipantEmail: "s2@school.edu",
		JoinTime:         time.Now(),
	}); err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	if err := env.service.GenerateSnapshot(ctx, "m1"); err != nil {
		t.Fatalf("generate snapshot: %v", err)
	}

	snapshots, err := env.service.MeetingAnalytics(ctx, "m1")
	if err != nil {
		t.Fatalf("meeting analytics: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected one snapshot, got %d", len(snapshots))
	}

	snapshot := snapshots[0]
	if len(snapshot.EngagementScores) != 2 {
		t.Fatalf("expected both participants in the snapshot, got %v", snapshot.EngagementScores)
	}
	if snapshot.EngagementScores["s1@school.edu"] != entities.DefaultEngagementScore {
		t.Fatalf("unexpected score for s1: %v", snapshot.EngagementScores["s1@school.edu"])
	}
	if snapshot.EngagementScores["s2@school.edu"] != 0.0 {
		t.Fatalf("a never-computed score must map to 0.0, got %v", snapshot.EngagementScores["s2@school.edu"])
	}
	if snapshot.CurrentEmotions["s1@school.edu"] != entities.DefaultEmotion {
		t.Fatalf("unexpected emotion map: %v", snapshot.CurrentEmotions)
	}
}

func TestEngagementScoresListsAllRecords(t *testing.T) {
	env := newAnalyticsEnv()
	ctx := context.Background()
	seedAttendance(t, env, "a1", "m1", "s1@school.edu")
	seedAttendance(t, env, "a2", "m1", "s2@school.edu")

	rows, err := env.service.EngagementScores(ctx, "m1")
	if err != nil {
		t.Fatalf("engagement scores: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ParticipantID != "a1" || rows[0].ParticipantEmail != "s1@school.edu" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestStudentEngagementNotFound(t *testing.T) {
	env := newAnalyticsEnv()

	_, err := env.service.StudentEngagement(context.Background(), "m1", "nobody@school.edu")
	if !errors.Is(err, usecaseErrors.ErrEngagementNotFound) {
		t.Fatalf("expected ErrEngagementNotFound, got %v", err)
	}
}

func TestStudentEngagementPrefersOpenSession(t *testing.T) {
	env := newAnalyticsEnv()
	ctx := context.Background()

	closedAt := time.Now().Add(-time.Hour)
	if err := env.attendanceRepo.Save(ctx, &entities.AttendanceRecord{
		ID:               "a1",
		MeetingID:        "m1",
		ParticipantEmail: "s1@school.edu",
		JoinTime:         time.Now().Add(-2 * time.Hour),
		LeaveTime:        &closedAt,
	}); err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
	seedAttendance(t, env, "a2", "m1", "s1@school.edu")

	record, err := env.service.StudentEngagement(ctx, "m1", "s1@school.edu")
	if err != nil {
		t.Fatalf("student engagement: %v", err)
	}
	if record.ID != "a2" {
		t.Fatalf("expected the open session a2, got %s", record.ID)
	}
}
