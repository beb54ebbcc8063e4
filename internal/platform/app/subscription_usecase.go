package app

import (
	"context"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	errprocess "video_platform_service/pkg/err"

	"go.mongodb.org/mongo-driver/bson"
)

// SubscriptionUseCase 訂閱
type SubscriptionUseCase interface {
	ToggleSubscription(ctx context.Context, channelID, actor string) (*domain.ToggleSubscriptionRes, error)
	ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error)
}

type subscriptionUseCase struct {
	subscriptions repository.RelationStore[domain.Subscription]
	users         repository.UserDirectory
	events        repository.EventPublisher
}

// NewSubscriptionUseCase create SubscriptionUseCase
func NewSubscriptionUseCase(subscriptions repository.RelationStore[domain.Subscription],
	users repository.UserDirectory,
	events repository.EventPublisher,
) SubscriptionUseCase {
	return &subscriptionUseCase{subscriptions: subscriptions, users: users, events: events}
}

func (s *subscriptionUseCase) ToggleSubscription(ctx context.Context, channelID, actor string) (*domain.ToggleSubscriptionRes, error) {
	if channelID == actor {
		return nil, errprocess.BadRequest("You cannot subscribe to your own channel")
	}
	if err := requireUser(ctx, s.users, channelID); err != nil {
		return nil, err
	}
	if err := requireUser(ctx, s.users, actor); err != nil {
		return nil, err
	}

	filter := bson.M{"subscriber": actor, "channel": channelID}
	sub, created, err := s.subscriptions.Toggle(ctx, filter, domain.NewSubscription(actor, channelID))
	if err != nil {
		return nil, errprocess.Internal("Something went wrong while toggling the subscription", err)
	}

	event := domain.EventSubscriptionRemoved
	if created {
		event = domain.EventSubscriptionAdded
	}
	emit(ctx, s.events, domain.NewActivityEvent(event, actor, channelID))

	return &domain.ToggleSubscriptionRes{Subscribed: created, Subscription: sub}, nil
}

func (s *subscriptionUseCase) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	return s.list(ctx, channelID, "channel")
}

func (s *subscriptionUseCase) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	return s.list(ctx, subscriberID, "subscriber")
}

func (s *subscriptionUseCase) list(ctx context.Context, memberID, field string) ([]domain.Subscription, error) {
	if err := requireUser(ctx, s.users, memberID); err != nil {
		return nil, err
	}

	subs, err := s.subscriptions.Find(ctx, bson.M{field: memberID}, repository.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, errprocess.Internal("failed to fetch subscriptions", err)
	}
	return subs, nil
}
