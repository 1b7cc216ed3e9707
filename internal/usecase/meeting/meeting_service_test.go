package meeting

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/edupulse-team/edupulse/internal/adapter/repository/memory"
	"github.com/edupulse-team/edupulse/internal/usecase/attendance"
	usecaseErrors "github.com/edupulse-team/edupulse/internal/usecase/errors"
)

type testEnv struct {
	service           *MeetingService
	attendanceService *attendance.AttendanceService
	attendanceRepo    *memory.AttendanceRepository
	meetingRepo       *memory.MeetingRepository
}

func newTestEnv() *testEnv {
	meetingRepo := memory.NewMeetingRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	attendanceService := attendance.NewAttendanceService(attendanceRepo, nil, zap.NewNop())
	service := NewMeetingService(meetingRepo, memory.NewTranscriptRepository(), attendanceService, nil, zap.NewNop())
	return &testEnv{
		service:           service,
		attendanceService: attendanceService,
		attendanceRepo:    attendanceRepo,
		meetingRepo:       meetingRepo,
	}
}

func createMeeting(t *testing.T, env *testEnv, teacherEmail string) string {
	t.Helper()
	created, err := env.service.Create(context.Background(), CreateMeetingInput{
		Title:        "Algebra II",
		TeacherEmail: teacherEmail,
		TeacherName:  "Prof. Reyes",
	})
	if err != nil {
		t.Fatalf("create meeting: %v", err)
	}
	return created.ID
}

func TestCreateMeetingIsActive(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")

	if !env.service.IsActive(ctx, meetingID) {
		t.Fatal("expected new meeting to be active")
	}

	active, err := env.service.ActiveMeetings(ctx)
	if err != nil {
		t.Fatalf("active meetings: %v", err)
	}
	if len(active) != 1 || active[0].ID != meetingID {
		t.Fatalf("expected the created meeting in active list, got %d entries", len(active))
	}
}

func TestJoinMeetingNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Join(context.Background(), "missing", "s1@school.edu", "Student One")
	if !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestJoinEndedMeeting(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")
	if err := env.service.End(ctx, meetingID, "teacher@school.edu"); err != nil {
		t.Fatalf("end meeting: %v", err)
	}

	_, err := env.service.Join(ctx, meetingID, "s1@school.edu", "Student One")
	if !errors.Is(err, usecaseErrors.ErrMeetingNotActive) {
		t.Fatalf("expected ErrMeetingNotActive, got %v", err)
	}
}

func TestJoinIsIdempotentWhileSessionOpen(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")

	first, err := env.service.Join(ctx, meetingID, "s1@school.edu", "Student One")
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	second, err := env.service.Join(ctx, meetingID, "s1@school.edu", "Student One")
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if first.ParticipantID != second.ParticipantID {
		t.Fatalf("expected same session id on re-join, got %s and %s", first.ParticipantID, second.ParticipantID)
	}

	count, err := env.service.ParticipantCount(ctx, meetingID)
	if err != nil {
		t.Fatalf("participant count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 attendance record, got %d", count)
	}
}

func TestRejoinAfterLeaveCreatesNewSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")

	first, err := env.service.Join(ctx, meetingID, "s1@school.edu", "Student One")
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	if err := env.service.Leave(ctx, first.ParticipantID); err != nil {
		t.Fatalf("leave: %v", err)
	}

	second, err := env.service.Join(ctx, meetingID, "s1@school.edu", "Student One")
	if err != nil {
		t.Fatalf("re-join: %v", err)
	}
	if first.ParticipantID == second.ParticipantID {
		t.Fatal("expected a new session id after leaving")
	}

	count, err := env.service.ParticipantCount(ctx, meetingID)
	if err != nil {
		t.Fatalf("participant count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 attendance records, got %d", count)
	}
}

func TestJoinAssignsDefaultEngagement(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")
	output, err := env.service.Join(ctx, meetingID, "s1@school.edu", "Student One")
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	record, err := env.attendanceService.Get(ctx, output.ParticipantID)
	if err != nil {
		t.Fatalf("get attendance record: %v", err)
	}
	if record.Score() != 0.5 {
		t.Fatalf("expected default score 0.5, got %v", record.Score())
	}
	if record.CurrentEmotion != "neutral" || record.CurrentEngagement != "Alert" {
		t.Fatalf("unexpected defaults: emotion=%q engagement=%q", record.CurrentEmotion, record.CurrentEngagement)
	}
}

func TestLeaveUnknownParticipant(t *testing.T) {
	env := newTestEnv()

	err := env.service.Leave(context.Background(), "missing")
	if !errors.Is(err, usecaseErrors.ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestLeaveRemovesFromParticipantSet(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")
	output, err := env.service.Join(ctx, meetingID, "s1@school.edu", "Student One")
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := env.service.Leave(ctx, output.ParticipantID); err != nil {
		t.Fatalf("leave: %v", err)
	}

	meeting, err := env.service.GetByID(ctx, meetingID)
	if err != nil {
		t.Fatalf("get meeting: %v", err)
	}
	if len(meeting.ParticipantIDs) != 0 {
		t.Fatalf("expected empty participant set, got %v", meeting.ParticipantIDs)
	}

	record, err := env.attendanceService.Get(ctx, output.ParticipantID)
	if err != nil {
		t.Fatalf("get attendance record: %v", err)
	}
	if record.IsOpen() {
		t.Fatal("expected session to be closed after leave")
	}
}

func TestEndRequiresOwner(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")

	err := env.service.End(ctx, meetingID, "intruder@school.edu")
	if !errors.Is(err, usecaseErrors.ErrNotMeetingOwner) {
		t.Fatalf("expected ErrNotMeetingOwner, got %v", err)
	}
	if !env.service.IsActive(ctx, meetingID) {
		t.Fatal("meeting must stay active after a rejected end")
	}
}

func TestEndClosesOpenSessions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")
	joined, err := env.service.Join(ctx, meetingID, "s1@school.edu", "Student One")
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := env.service.End(ctx, meetingID, "teacher@school.edu"); err != nil {
		t.Fatalf("end meeting: %v", err)
	}

	meeting, err := env.service.GetByID(ctx, meetingID)
	if err != nil {
		t.Fatalf("get meeting: %v", err)
	}
	if meeting.Active {
		t.Fatal("expected meeting to be inactive")
	}
	if meeting.EndTime == "" {
		t.Fatal("expected end time to be stamped")
	}

	record, err := env.attendanceService.Get(ctx, joined.ParticipantID)
	if err != nil {
		t.Fatalf("get attendance record: %v", err)
	}
	if record.IsOpen() {
		t.Fatal("expected session to be closed when the meeting ends")
	}

	active, err := env.service.ActiveMeetings(ctx)
	if err != nil {
		t.Fatalf("active meetings: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active meetings, got %d", len(active))
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	meetingID := createMeeting(t, env, "teacher@school.edu")

	lines, err := env.service.Transcript(ctx, meetingID)
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty transcript, got %d lines", len(lines))
	}

	if _, err := env.service.AddTranscriptLine(ctx, AddTranscriptLineInput{
		MeetingID:     meetingID,
		ParticipantID: "s1@school.edu",
		Text:          "quadratic formula recap",
	}); err != nil {
		t.Fatalf("add transcript line: %v", err)
	}

	lines, err = env.service.Transcript(ctx, meetingID)
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	if len(lines) != 1 || lines[0].Text != "quadratic formula recap" {
		t.Fatalf("unexpected transcript contents: %+v", lines)
	}
}

func TestTranscriptUnknownMeeting(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Transcript(context.Background(), "missing")
	if !errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}
