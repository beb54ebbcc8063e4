package handlers

import (
	"video_platform_service/internal/platform/app"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TweetHandler tweet http handler
type TweetHandler struct {
	tweets app.TweetUseCase
}

// NewTweetHandler create tweet handler
func NewTweetHandler(tweets app.TweetUseCase) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

// CreateTweet godoc
// @Summary Create a tweet
// @Tags Tweet
// @Accept json
// @Produce json
// @Param body body ContentReq true "Tweet"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/tweets [post]
func (h *TweetHandler) CreateTweet(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}
	content, err := parseContent(c)
	if err != nil {
		return err
	}

	t, err := h.tweets.CreateTweet(c.UserContext(), actor, content)
	if err != nil {
		return err
	}
	return response.Created(c, t, "Tweet created successfully")
}

// GetUserTweets godoc
// @Summary List tweets of a user
// @Tags Tweet
// @Produce json
// @Param userId path string true "Member id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/tweets/{userId} [get]
func (h *TweetHandler) GetUserTweets(c *fiber.Ctx) error {
	tweets, err := h.tweets.GetUserTweets(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return response.OK(c, tweets, "Tweets fetched successfully")
}

// UpdateTweet godoc
// @Summary Edit own tweet
// @Tags Tweet
// @Accept json
// @Produce json
// @Param tweetId path string true "Tweet id"
// @Param body body ContentReq true "Tweet"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/tweets/{tweetId} [patch]
func (h *TweetHandler) UpdateTweet(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}
	content, err := parseContent(c)
	if err != nil {
		return err
	}

	t, err := h.tweets.UpdateTweet(c.UserContext(), c.Params("tweetId"), actor, content)
	if err != nil {
		return err
	}
	return response.OK(c, t, "Tweet updated successfully")
}

// DeleteTweet godoc
// @Summary Delete own tweet
// @Tags Tweet
// @Produce json
// @Param tweetId path string true "Tweet id"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/tweets/{tweetId} [delete]
func (h *TweetHandler) DeleteTweet(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	t, err := h.tweets.DeleteTweet(c.UserContext(), c.Params("tweetId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, t, "Tweet deleted successfully")
}
