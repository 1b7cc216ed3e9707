package attendance

// JoinRequest is the body of POST /api/attendance/join. It mirrors the
// attendance record shape the front end submits; identifier and join time
// are assigned server side.
type JoinRequest struct {
	MeetingID         string   `json:"meetingId" validate:"required"`
	ParticipantEmail  string   `json:"participantEmail" validate:"required"`
	ParticipantName   string   `json:"participantName,omitempty"`
	EngagementScore   *float64 `json:"engagementScore,omitempty"`
	CurrentEmotion    string   `json:"currentEmotion,omitempty"`
	CurrentEngagement string   `json:"currentEngagement,omitempty"`
}

// RecordEngagementRequest is the body of POST /api/attendance/engagement
type RecordEngagementRequest struct {
	ParticipantEmail string `json:"participantEmail" validate:"required"`
	MeetingID        string `json:"meetingId" validate:"required"`
	Emotion          string `json:"emotion,omitempty"`
	Engagement       string `json:"engagement" validate:"required"`
	Timestamp        string `json:"timestamp,omitempty"`
}

// UpdateScoreRequest is the body of PUT /api/attendance/engagement/:id.
// The score is stored verbatim; range validation is the caller's concern.
type UpdateScoreRequest struct {
	EngagementScore *float64 `json:"engagementScore" validate:"required"`
}
