package pipeline

import (
	"fmt"

	"github.com/postforge/postforge-api/internal/domain"
)

// EventStatus identifies the kind of a StreamEvent.
type EventStatus string

// Stream lifecycle statuses. A stream is always one started event, zero or
// more in_progress events, and exactly one terminal completed or error event.
const (
	EventStarted    EventStatus = "started"
	EventInProgress EventStatus = "in_progress"
	EventCompleted  EventStatus = "completed"
	EventError      EventStatus = "error"
)

// StreamEvent is the only externally observable lifecycle signal of a
// generation request.
type StreamEvent struct {
	Status  EventStatus          `json:"status"`
	Message string               `json:"message,omitempty"`
	Post    *domain.PostProposal `json:"post,omitempty"`
	Count   int                  `json:"count,omitempty"`
	Error   string               `json:"error,omitempty"`
}

func startedEvent() StreamEvent {
	return StreamEvent{
		Status:  EventStarted,
		Message: "Starting post generation process",
	}
}

func inProgressEvent(post *domain.PostProposal) StreamEvent {
	return StreamEvent{Status: EventInProgress, Post: post}
}

func completedEvent(count int) StreamEvent {
	return StreamEvent{
		Status:  EventCompleted,
		Count:   count,
		Message: fmt.Sprintf("Generated %d post proposals", count),
	}
}

func errorEvent(err error) StreamEvent {
	return StreamEvent{Status: EventError, Error: err.Error()}
}
