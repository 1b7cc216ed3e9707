package attendance

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/edupulse-team/edupulse/internal/adapter/repository/memory"
	"github.com/edupulse-team/edupulse/internal/domain/entities"
	usecaseErrors "github.com/edupulse-team/edupulse/internal/usecase/errors"
)

type fakeArchiver struct {
	objects map[string][]byte
	err     error
}

func (f *fakeArchiver) Upload(_ context.Context, objectName string, data []byte, _ string) error {
	if f.err != nil {
		return f.err
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[objectName] = data
	return nil
}

func newService(archiver ExportArchiver) (*AttendanceService, *memory.AttendanceRepository) {
	repo := memory.NewAttendanceRepository()
	return NewAttendanceService(repo, archiver, zap.NewNop()), repo
}

func join(t *testing.T, service *AttendanceService, meetingID, email string) *entities.AttendanceRecord {
	t.Helper()
	record, err := service.Join(context.Background(), &entities.AttendanceRecord{
		MeetingID:        meetingID,
		ParticipantEmail: email,
		ParticipantName:  "Student One",
	})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	return record
}

func TestJoinAssignsIDAndJoinTime(t *testing.T) {
	service, _ := newService(nil)

	record := join(t, service, "m1", "s1@school.edu")
	if record.ID == "" {
		t.Fatal("expected a generated id")
	}
	if record.JoinTime.IsZero() {
		t.Fatal("expected a stamped join time")
	}
	if !record.IsOpen() {
		t.Fatal("expected a fresh record to be open")
	}
}

func TestLeaveIsIdempotent(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	record := join(t, service, "m1", "s1@school.edu")

	if err := service.Leave(ctx, record.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}
	closed, err := service.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if closed.LeaveTime == nil {
		t.Fatal("expected leave time to be stamped")
	}
	firstLeave := *closed.LeaveTime

	time.Sleep(5 * time.Millisecond)
	if err := service.Leave(ctx, record.ID); err != nil {
		t.Fatalf("second leave: %v", err)
	}
	again, err := service.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !again.LeaveTime.Equal(firstLeave) {
		t.Fatal("second leave must not re-stamp the leave time")
	}
}

func TestLeaveUnknownRecord(t *testing.T) {
	service, _ := newService(nil)

	err := service.Leave(context.Background(), "missing")
	if !errors.Is(err, usecaseErrors.ErrAttendanceNotFound) {
		t.Fatalf("expected ErrAttendanceNotFound, got %v", err)
	}
}

func TestRecordEngagementOverwritesCurrentState(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	record := join(t, service, "m1", "s1@school.edu")
	score := 0.5
	if _, err := service.UpdateEngagementScore(ctx, record.ID, score); err != nil {
		t.Fatalf("seed score: %v", err)
	}

	err := service.RecordEngagement(ctx, RecordEngagementInput{
		ParticipantEmail: "s1@school.edu",
		MeetingID:        "m1",
		Emotion:          "happy",
		Engagement:       "Alert",
	})
	if err != nil {
		t.Fatalf("record engagement: %v", err)
	}

	updated, err := service.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if updated.CurrentEmotion != "happy" || updated.CurrentEngagement != "Alert" {
		t.Fatalf("unexpected state: emotion=%q engagement=%q", updated.CurrentEmotion, updated.CurrentEngagement)
	}
	if updated.Score() != 0.5 {
		t.Fatalf("recording engagement must not touch the score, got %v", updated.Score())
	}
}

func TestRecordEngagementUnknownParticipant(t *testing.T) {
	service, _ := newService(nil)

	err := service.RecordEngagement(context.Background(), RecordEngagementInput{
		ParticipantEmail: "nobody@school.edu",
		MeetingID:        "m1",
		Engagement:       "Alert",
	})
	if !errors.Is(err, usecaseErrors.ErrAttendanceNotFound) {
		t.Fatalf("expected ErrAttendanceNotFound, got %v", err)
	}
}

func TestUpdateEngagementScoreStoredVerbatim(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	record := join(t, service, "m1", "s1@school.edu")

	updated, err := service.UpdateEngagementScore(ctx, record.ID, 0.73)
	if err != nil {
		t.Fatalf("update score: %v", err)
	}
	if updated.Score() != 0.73 {
		t.Fatalf("expected score 0.73, got %v", updated.Score())
	}
}

func TestExportXLSXEmptyMeeting(t *testing.T) {
	service, _ := newService(nil)

	data, err := service.ExportXLSX(context.Background(), "empty-meeting")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(attendanceSheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
	if rows[0][0] != "Participant Name" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
}

func TestExportXLSXRowsPerRecord(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	record := join(t, service, "m1", "s1@school.edu")
	if _, err := service.UpdateEngagementScore(ctx, record.ID, 0.8); err != nil {
		t.Fatalf("seed score: %v", err)
	}
	join(t, service, "m1", "s2@school.edu")

	data, err := service.ExportXLSX(ctx, "m1")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(attendanceSheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two data rows, got %d", len(rows))
	}
	if rows[1][1] != "s1@school.edu" {
		t.Fatalf("unexpected first data row: %v", rows[1])
	}
	if rows[1][4] != "0.80" {
		t.Fatalf("expected formatted score 0.80, got %q", rows[1][4])
	}
}

func TestExportXLSXArchivesCopy(t *testing.T) {
	archiver := &fakeArchiver{}
	service, _ := newService(archiver)
	ctx := context.Background()

	join(t, service, "m1", "s1@school.edu")

	data, err := service.ExportXLSX(ctx, "m1")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	stored, ok := archiver.objects["exports/attendance_m1.xlsx"]
	if !ok {
		t.Fatal("expected the export to be archived")
	}
	if !bytes.Equal(stored, data) {
		t.Fatal("archived copy must match the streamed export")
	}
}

func TestExportXLSXArchiveFailureIsNotFatal(t *testing.T) {
	service, _ := newService(&fakeArchiver{err: errors.New("bucket offline")})

	if _, err := service.ExportXLSX(context.Background(), "m1"); err != nil {
		t.Fatalf("archive failure must not fail the export: %v", err)
	}
}
