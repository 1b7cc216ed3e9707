package meeting

import "time"

// CreateMeetingRequest is the body of POST /api/meetings/create.
// The owning teacher arrives as query parameters, matching the front end.
type CreateMeetingRequest struct {
	Title          string     `json:"title" validate:"required"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	JitsiMeetingID string     `json:"jitsiMeetingId,omitempty"`
}

// AddTranscriptLineRequest is the body of POST /api/meetings/transcript
type AddTranscriptLineRequest struct {
	MeetingID     string `json:"meetingId" validate:"required"`
	ParticipantID string `json:"participantId" validate:"required"`
	Text          string `json:"text" validate:"required"`
	Timestamp     string `json:"timestamp,omitempty"`
}
