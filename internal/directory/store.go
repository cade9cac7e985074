// Package directory holds the in-memory activity directory and its signup rules.
package directory

import "errors"

var (
	// ErrActivityNotFound is returned when a requested activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipantNotFound is returned when withdrawing an email that is not enrolled.
	ErrParticipantNotFound = errors.New("participant not signed up")
	// ErrAlreadySignedUp is returned when enrolling an email that is already enrolled.
	ErrAlreadySignedUp = errors.New("participant already signed up")
	// ErrActivityFull is returned by Enroll when capacity enforcement is on and the activity is full.
	ErrActivityFull = errors.New("activity is full")
)

// Activity is a named extracurricular offering.
// The name is the directory key and is not part of the JSON body.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// IsMember reports whether email is enrolled.
func (a Activity) IsMember(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// clone returns a copy that shares no memory with a.
func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// Reader exposes the read side of the directory.
type Reader interface {
	// List returns a snapshot of every activity keyed by name.
	List() map[string]Activity
	// Get returns a snapshot of a single activity.
	Get(name string) (Activity, error)
}

// Writer exposes the roster mutations.
type Writer interface {
	// Enroll appends email to the activity's participants.
	Enroll(name, email string) (string, error)
	// Withdraw removes email from the activity's participants.
	Withdraw(name, email string) (string, error)
}

// Store is everything the HTTP layer needs from a directory.
type Store interface {
	Reader
	Writer
}
