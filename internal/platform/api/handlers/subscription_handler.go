package handlers

import (
	"video_platform_service/internal/platform/app"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SubscriptionHandler subscription http handler
type SubscriptionHandler struct {
	subscriptions app.SubscriptionUseCase
}

// NewSubscriptionHandler create subscription handler
func NewSubscriptionHandler(subscriptions app.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// ToggleSubscription godoc
// @Summary Subscribe or unsubscribe a channel
// @Tags Subscription
// @Produce json
// @Param channelId path string true "Channel member id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/subscriptions/{channelId} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	res, err := h.subscriptions.ToggleSubscription(c.UserContext(), c.Params("channelId"), actor)
	if err != nil {
		return err
	}

	msg := "Unsubscribed successfully"
	if res.Subscribed {
		msg = "Subscribed successfully"
	}
	return response.OK(c, res, msg)
}

// ListSubscribers godoc
// @Summary List subscribers of a channel
// @Tags Subscription
// @Produce json
// @Param channelId path string true "Channel member id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/subscriptions/channel/{channelId} [get]
func (h *SubscriptionHandler) ListSubscribers(c *fiber.Ctx) error {
	subs, err := h.subscriptions.ListSubscribers(c.UserContext(), c.Params("channelId"))
	if err != nil {
		return err
	}
	return response.OK(c, subs, "Subscribers fetched successfully")
}

// ListSubscribedChannels godoc
// @Summary List channels a member subscribed to
// @Tags Subscription
// @Produce json
// @Param subscriberId path string true "Subscriber member id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/subscriptions/subscriber/{subscriberId} [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *fiber.Ctx) error {
	subs, err := h.subscriptions.ListSubscribedChannels(c.UserContext(), c.Params("subscriberId"))
	if err != nil {
		return err
	}
	return response.OK(c, subs, "Subscribed channels fetched successfully")
}
