package handlers

import (
	"video_platform_service/internal/platform/app"
	"video_platform_service/internal/platform/domain"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CommentHandler comment http handler
type CommentHandler struct {
	comments app.CommentUseCase
}

// NewCommentHandler create comment handler
func NewCommentHandler(comments app.CommentUseCase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ContentReq body of comment / tweet create and update
type ContentReq struct {
	Content string `json:"content"`
}

func parseContent(c *fiber.Ctx) (string, error) {
	var req ContentReq
	if err := c.BodyParser(&req); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return req.Content, nil
}

// ListComments godoc
// @Summary List comments of a video
// @Tags Comment
// @Produce json
// @Param videoId path string true "Video id"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/comments/{videoId} [get]
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	page, err := h.comments.ListComments(c.UserContext(), c.Params("videoId"),
		c.QueryInt("page", domain.DefaultPage), c.QueryInt("limit", domain.DefaultLimit))
	if err != nil {
		return err
	}
	return response.OK(c, page, "Comments fetched successfully")
}

// AddComment godoc
// @Summary Comment on a video
// @Tags Comment
// @Accept json
// @Produce json
// @Param videoId path string true "Video id"
// @Param body body ContentReq true "Comment"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/comments/{videoId} [post]
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}
	content, err := parseContent(c)
	if err != nil {
		return err
	}

	comment, err := h.comments.AddComment(c.UserContext(), c.Params("videoId"), actor, content)
	if err != nil {
		return err
	}
	return response.Created(c, comment, "Comment added successfully")
}

// UpdateComment godoc
// @Summary Edit own comment
// @Tags Comment
// @Accept json
// @Produce json
// @Param commentId path string true "Comment id"
// @Param body body ContentReq true "Comment"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/comments/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}
	content, err := parseContent(c)
	if err != nil {
		return err
	}

	comment, err := h.comments.UpdateComment(c.UserContext(), c.Params("commentId"), actor, content)
	if err != nil {
		return err
	}
	return response.OK(c, comment, "Comment updated successfully")
}

// DeleteComment godoc
// @Summary Delete own comment
// @Tags Comment
// @Produce json
// @Param commentId path string true "Comment id"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	comment, err := h.comments.DeleteComment(c.UserContext(), c.Params("commentId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, comment, "Comment deleted successfully")
}
