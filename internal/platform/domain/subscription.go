package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionCollection mongo collection name
const SubscriptionCollection = "subscriptions"

// Subscription subscriber 訂閱 channel
type Subscription struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Subscriber string             `bson:"subscriber" json:"subscriber"`
	Channel    string             `bson:"channel" json:"channel"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

// NewSubscription create subscription
func NewSubscription(subscriber, channel string) *Subscription {
	return &Subscription{
		ID:         primitive.NewObjectID(),
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  time.Now().UTC(),
	}
}

// ToggleSubscriptionRes usecase toggle subscription response
type ToggleSubscriptionRes struct {
	Subscribed   bool          `json:"subscribed"`
	Subscription *Subscription `json:"subscription"`
}
