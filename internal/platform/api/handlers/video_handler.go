package handlers

import (
	"os"

	"video_platform_service/internal/platform/app"
	"video_platform_service/internal/platform/domain"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VideoHandler video http handler
type VideoHandler struct {
	videos app.VideoUseCase
	tmpDir string
}

// NewVideoHandler create video handler, uploads are staged in tmpDir
func NewVideoHandler(videos app.VideoUseCase, tmpDir string) *VideoHandler {
	return &VideoHandler{videos: videos, tmpDir: tmpDir}
}

// ListVideos godoc
// @Summary List published videos
// @Tags Video
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param query query string false "Title search"
// @Param sortBy query string false "createdAt | views | duration | title"
// @Param sortType query string false "asc | desc"
// @Param userId query string false "Owner member id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	page, err := h.videos.ListVideos(c.UserContext(), domain.ListVideosReq{
		Page:     c.QueryInt("page", domain.DefaultPage),
		Limit:    c.QueryInt("limit", domain.DefaultLimit),
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		UserID:   c.Query("userId"),
	})
	if err != nil {
		return err
	}
	return response.OK(c, page, "Videos fetched successfully")
}

// PublishVideo godoc
// @Summary Publish a video
// @Tags Video
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param videoFile formData file true "Video file"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Failure 500 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/videos [post]
func (h *VideoHandler) PublishVideo(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	videoPath, err := saveUpload(c, "videoFile", h.tmpDir)
	if err != nil {
		return err
	}
	thumbnailPath, err := saveUpload(c, "thumbnail", h.tmpDir)
	if err != nil {
		if videoPath != "" {
			_ = os.Remove(videoPath)
		}
		return err
	}

	v, err := h.videos.PublishVideo(c.UserContext(), domain.PublishVideoReq{
		Title:         c.FormValue("title"),
		Description:   c.FormValue("description"),
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
		Owner:         actor,
	})
	if err != nil {
		return err
	}
	return response.Created(c, v, "Video published successfully")
}

// GetVideo godoc
// @Summary Get a video and count a view
// @Tags Video
// @Produce json
// @Param videoId path string true "Video id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	v, err := h.videos.GetVideo(c.UserContext(), c.Params("videoId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, v, "Video fetched successfully")
}

// UpdateVideo godoc
// @Summary Update video details
// @Tags Video
// @Accept multipart/form-data
// @Produce json
// @Param videoId path string true "Video id"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param thumbnail formData file false "New thumbnail"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	thumbnailPath, err := saveUpload(c, "thumbnail", h.tmpDir)
	if err != nil {
		return err
	}

	v, err := h.videos.UpdateVideo(c.UserContext(), domain.UpdateVideoReq{
		VideoID:       c.Params("videoId"),
		Actor:         actor,
		Title:         c.FormValue("title"),
		Description:   c.FormValue("description"),
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		return err
	}
	return response.OK(c, v, "Video updated successfully")
}

// DeleteVideo godoc
// @Summary Delete a video and its media
// @Tags Video
// @Produce json
// @Param videoId path string true "Video id"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Failure 500 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	v, err := h.videos.DeleteVideo(c.UserContext(), c.Params("videoId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, v, "Video deleted successfully")
}

// TogglePublish godoc
// @Summary Toggle publish status
// @Tags Video
// @Produce json
// @Param videoId path string true "Video id"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/videos/{videoId}/publish [patch]
func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	v, err := h.videos.TogglePublish(c.UserContext(), c.Params("videoId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, v, "Publish status toggled successfully")
}
