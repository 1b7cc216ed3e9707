package meeting

import (
	"context"
	"time"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title          string
	StartTime      *time.Time
	JitsiMeetingID string
	TeacherEmail   string
	TeacherName    string
}

// JoinOutput identifies the joined participant's session
type JoinOutput struct {
	MeetingID     string `json:"meetingId"`
	ParticipantID string `json:"participantId"`
}

// AddTranscriptLineInput carries one captioned line for a meeting
type AddTranscriptLineInput struct {
	MeetingID     string
	ParticipantID string
	Text          string
	Timestamp     string
}

// Service defines the interface for the meeting use case.
// Lifecycle per meeting is created → active → ended, with ended terminal.
type Service interface {
	// Create starts a new active meeting owned by the teacher
	Create(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// Join adds a participant to an active meeting. Re-joining with the
	// same email while a session is open returns the open session's id
	// without creating a second record.
	Join(ctx context.Context, meetingID, userEmail, userName string) (*JoinOutput, error)

	// Leave closes the participant's session and removes the email from
	// the meeting's participant set
	Leave(ctx context.Context, attendanceID string) error

	// End closes every open attendance record and deactivates the meeting.
	// Only the owning teacher may end a meeting.
	End(ctx context.Context, meetingID, teacherEmail string) error

	// GetByID retrieves a meeting
	GetByID(ctx context.Context, meetingID string) (*entities.Meeting, error)

	// TeacherMeetings retrieves every meeting owned by the teacher
	TeacherMeetings(ctx context.Context, teacherEmail string) ([]*entities.Meeting, error)

	// ActiveMeetings retrieves every currently active meeting
	ActiveMeetings(ctx context.Context) ([]*entities.Meeting, error)

	// Attendance retrieves all attendance records for a meeting
	Attendance(ctx context.Context, meetingID string) ([]*entities.AttendanceRecord, error)

	// IsActive reports whether the meeting exists and is active
	IsActive(ctx context.Context, meetingID string) bool

	// ParticipantCount counts attendance records for a meeting
	ParticipantCount(ctx context.Context, meetingID string) (int, error)

	// AddTranscriptLine stores one line delivered by the captioning pipeline
	AddTranscriptLine(ctx context.Context, input AddTranscriptLineInput) (*entities.TranscriptLine, error)

	// Transcript retrieves the ingested transcript, empty when none exists
	Transcript(ctx context.Context, meetingID string) ([]*entities.TranscriptLine, error)

	// ExportNotes produces the notes workbook. Notes capture is not yet
	// supported, so the workbook carries no data rows.
	ExportNotes(ctx context.Context, meetingID string) ([]byte, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
