package handlers

import (
	"video_platform_service/internal/platform/app"
	"video_platform_service/internal/platform/domain"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LikeHandler like http handler
type LikeHandler struct {
	likes app.LikeUseCase
}

// NewLikeHandler create like handler
func NewLikeHandler(likes app.LikeUseCase) *LikeHandler {
	return &LikeHandler{likes: likes}
}

func toggleMessage(res *domain.ToggleLikeRes, kind string) string {
	if res.Liked {
		return kind + " liked successfully"
	}
	return kind + " unliked successfully"
}

// ToggleVideoLike godoc
// @Summary Like or unlike a video
// @Tags Like
// @Produce json
// @Param videoId path string true "Video id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/likes/video/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	res, err := h.likes.ToggleVideoLike(c.UserContext(), c.Params("videoId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, res, toggleMessage(res, "Video"))
}

// ToggleCommentLike godoc
// @Summary Like or unlike a comment
// @Tags Like
// @Produce json
// @Param commentId path string true "Comment id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/likes/comment/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	res, err := h.likes.ToggleCommentLike(c.UserContext(), c.Params("commentId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, res, toggleMessage(res, "Comment"))
}

// ToggleTweetLike godoc
// @Summary Like or unlike a tweet
// @Tags Like
// @Produce json
// @Param tweetId path string true "Tweet id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/likes/tweet/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	res, err := h.likes.ToggleTweetLike(c.UserContext(), c.Params("tweetId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, res, toggleMessage(res, "Tweet"))
}

// LikedVideos godoc
// @Summary List videos liked by the caller
// @Tags Like
// @Produce json
// @Success 200 {object} response.APIResponse
// @Security BearerAuth
// @Router /api/v1/likes/videos [get]
func (h *LikeHandler) LikedVideos(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	videos, err := h.likes.LikedVideos(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return response.OK(c, videos, "Liked videos fetched successfully")
}
