package domain

import (
	"errors"
	"fmt"
)

// EventKind identifies the kind of event an annotation records.
type EventKind string

const (
	EventStartWork EventKind = "START_WORK"
	EventStopWork  EventKind = "STOP_WORK"
	EventCreateNot EventKind = "CREATE_NOT"
)

// ErrUnknownEventCode indicates a wire code outside the closed event set.
var ErrUnknownEventCode = errors.New("unknown event code")

// validEventKinds is the canonical closed set of event codes. Extending the
// taxonomy means adding a constant above and an entry here.
var validEventKinds = map[EventKind]bool{
	EventStartWork: true,
	EventStopWork:  true,
	EventCreateNot: true,
}

// ParseEventKind maps a wire code back to its EventKind. Codes outside the
// closed set are a hard failure; there is no default kind.
func ParseEventKind(code string) (EventKind, error) {
	kind := EventKind(code)
	if !validEventKinds[kind] {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventCode, code)
	}
	return kind, nil
}

// Code returns the stable textual code used on the wire.
func (k EventKind) Code() string {
	return string(k)
}

func (k EventKind) String() string {
	return string(k)
}
