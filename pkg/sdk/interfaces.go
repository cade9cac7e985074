package sdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is matched by errors for unknown activities and non-members.
	ErrNotFound = errors.New("not found")
	// ErrConflict is matched by errors for rejected signups (duplicate or full).
	ErrConflict = errors.New("conflict")
	// ErrInvalidRequest is matched by errors for requests the server could not process.
	ErrInvalidRequest = errors.New("invalid request")
)

// Activity mirrors one entry of the GET /activities response.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

// Is lets callers match an APIError against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusBadRequest
	case ErrInvalidRequest:
		return e.StatusCode == http.StatusUnprocessableEntity
	}
	return false
}

// --- Functional Interfaces ---

// ActivityReader lists activities.
type ActivityReader interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (Activity, error)
}

// RosterWriter changes activity rosters.
type RosterWriter interface {
	Signup(ctx context.Context, name, email string) (string, error)
	Unregister(ctx context.Context, name, email string) (string, error)
}

// ActivityService is the complete remote API.
type ActivityService interface {
	ActivityReader
	RosterWriter
}
