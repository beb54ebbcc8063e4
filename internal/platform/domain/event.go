package domain

import "time"

// EventType activity event name
type EventType string

const (
	// EventVideoPublished video published
	EventVideoPublished EventType = "video.published"
	// EventVideoDeleted video deleted
	EventVideoDeleted EventType = "video.deleted"
	// EventLikeAdded like added
	EventLikeAdded EventType = "like.added"
	// EventLikeRemoved like removed
	EventLikeRemoved EventType = "like.removed"
	// EventSubscriptionAdded subscription added
	EventSubscriptionAdded EventType = "subscription.added"
	// EventSubscriptionRemoved subscription removed
	EventSubscriptionRemoved EventType = "subscription.removed"
)

// ActivityEvent published to kafka after a successful mutation
type ActivityEvent struct {
	Type    EventType `json:"type"`
	Actor   string    `json:"actor"`
	Subject string    `json:"subject"`
	At      time.Time `json:"at"`
}

// NewActivityEvent event stamped now
func NewActivityEvent(t EventType, actor, subject string) ActivityEvent {
	return ActivityEvent{Type: t, Actor: actor, Subject: subject, At: time.Now().UTC()}
}
