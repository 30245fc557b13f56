package shared

import (
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Events are value objects carried in command results
// and written to the structured log; the lifecycle itself is synchronous
// and transactional, so there is no asynchronous dispatch behind them.
const (
	// Account events
	EventUserRegistered  EventType = "account.registered"
	EventAccountApproved EventType = "account.approved"
	EventAccountRevoked  EventType = "account.revoked"

	// Matching events
	EventRequestCreated  EventType = "matching.request_created"
	EventRequestAccepted EventType = "matching.request_accepted"
	EventRequestRejected EventType = "matching.request_rejected"
	EventRequestDeleted  EventType = "matching.request_deleted"
	EventBulkMatchRun    EventType = "matching.bulk_run"

	// Mentorship events
	EventMentorshipStarted   EventType = "mentorship.started"
	EventMentorshipConcluded EventType = "mentorship.concluded"
	EventMentorshipCancelled EventType = "mentorship.cancelled"

	// Notification events
	EventNotificationSent   EventType = "notification.sent"
	EventNotificationFailed EventType = "notification.failed"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// NewBaseEvent creates a BaseEvent stamped with the current UTC time.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// EventType returns the type of the event.
func (e BaseEvent) EventType() EventType { return e.Type }

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// AggregateID returns the aggregate that produced this event.
func (e BaseEvent) AggregateID() string { return e.AggregateId }

// RequestCreatedEvent is emitted when a pending match request is persisted.
type RequestCreatedEvent struct {
	BaseEvent
	MentorID string `json:"mentor_id"`
	MenteeID string `json:"mentee_id"`
	Score    int    `json:"score"`
}

// NewRequestCreatedEvent creates a RequestCreatedEvent.
func NewRequestCreatedEvent(requestID, mentorID, menteeID string, score int) RequestCreatedEvent {
	return RequestCreatedEvent{
		BaseEvent: NewBaseEvent(EventRequestCreated, requestID),
		MentorID:  mentorID,
		MenteeID:  menteeID,
		Score:     score,
	}
}

// RequestAcceptedEvent is emitted when a request is accepted and a
// mentorship is started. SupersededIDs lists the competing pending
// requests removed by the accept cascade.
type RequestAcceptedEvent struct {
	BaseEvent
	MentorshipID  string   `json:"mentorship_id"`
	MentorID      string   `json:"mentor_id"`
	MenteeID      string   `json:"mentee_id"`
	SupersededIDs []string `json:"superseded_ids,omitempty"`
}

// NewRequestAcceptedEvent creates a RequestAcceptedEvent.
func NewRequestAcceptedEvent(requestID, mentorshipID, mentorID, menteeID string, superseded []string) RequestAcceptedEvent {
	return RequestAcceptedEvent{
		BaseEvent:     NewBaseEvent(EventRequestAccepted, requestID),
		MentorshipID:  mentorshipID,
		MentorID:      mentorID,
		MenteeID:      menteeID,
		SupersededIDs: superseded,
	}
}
