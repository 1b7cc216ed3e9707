package entities

import "time"

// Meeting represents a classroom video meeting owned by a teacher.
//
// StartTime and EndTime are kept as strings because that is what the
// front end sends and renders; the service never does arithmetic on them.
type Meeting struct {
	ID             string   `bson:"_id" json:"id"`
	Title          string   `bson:"title" json:"title"`
	TeacherEmail   string   `bson:"teacherEmail" json:"teacherEmail"`
	TeacherName    string   `bson:"teacherName" json:"teacherName"`
	StartTime      string   `bson:"startTime" json:"startTime"`
	EndTime        string   `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Active         bool     `bson:"active" json:"active"`
	ParticipantIDs []string `bson:"participantIds" json:"participantIds"`
	JitsiMeetingID string   `bson:"jitsiMeetingId,omitempty" json:"jitsiMeetingId,omitempty"`
}

// CollectionName specifies the Mongo collection for Meeting
func (Meeting) CollectionName() string {
	return "meetings"
}

// End marks the meeting as ended. Terminal: there is no transition back.
func (m *Meeting) End(at time.Time) {
	m.Active = false
	m.EndTime = at.Format(time.RFC3339Nano)
}

// HasParticipant reports whether the email is in the current participant set
func (m *Meeting) HasParticipant(email string) bool {
	for _, id := range m.ParticipantIDs {
		if id == email {
			return true
		}
	}
	return false
}

// AddParticipant adds the email to the participant set if absent.
// Returns true when the set changed.
func (m *Meeting) AddParticipant(email string) bool {
	if m.HasParticipant(email) {
		return false
	}
	m.ParticipantIDs = append(m.ParticipantIDs, email)
	return true
}

// RemoveParticipant removes the email from the participant set
func (m *Meeting) RemoveParticipant(email string) {
	for i, id := range m.ParticipantIDs {
		if id == email {
			m.ParticipantIDs = append(m.ParticipantIDs[:i], m.ParticipantIDs[i+1:]...)
			return
		}
	}
}
