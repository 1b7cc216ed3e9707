package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrMeetingNotActive = errors.New("meeting is not active")
	ErrNotMeetingOwner  = errors.New("only the teacher can end the meeting")
)

// Attendance errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Analytics errors
var (
	ErrEngagementNotFound = errors.New("engagement data not found")
)
