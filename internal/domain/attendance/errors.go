package attendance

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("an open session already exists for today")
	ErrNoOpenSession    = errors.New("no open session to clock out of")
	ErrSessionNotFound  = errors.New("attendance session not found")
)
