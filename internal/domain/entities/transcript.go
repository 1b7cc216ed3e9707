package entities

// TranscriptLine is one line of meeting transcript as delivered by the
// external captioning pipeline. Timestamp stays a string; it is opaque
// display data supplied by the caller.
type TranscriptLine struct {
	ID            string `bson:"_id" json:"id"`
	MeetingID     string `bson:"meetingId" json:"meetingId"`
	ParticipantID string `bson:"participantId" json:"participantId"`
	Text          string `bson:"text" json:"text"`
	Timestamp     string `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// CollectionName specifies the Mongo collection for TranscriptLine
func (TranscriptLine) CollectionName() string {
	return "transcript_lines"
}
