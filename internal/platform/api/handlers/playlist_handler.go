package handlers

import (
	"video_platform_service/internal/platform/app"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PlaylistHandler playlist http handler
type PlaylistHandler struct {
	playlists app.PlaylistUseCase
}

// NewPlaylistHandler create playlist handler
func NewPlaylistHandler(playlists app.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists}
}

// PlaylistReq body of playlist create and update
type PlaylistReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func parsePlaylistReq(c *fiber.Ctx) (PlaylistReq, error) {
	var req PlaylistReq
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return req, nil
}

// CreatePlaylist godoc
// @Summary Create a playlist
// @Tags Playlist
// @Accept json
// @Produce json
// @Param body body PlaylistReq true "Playlist"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}
	req, err := parsePlaylistReq(c)
	if err != nil {
		return err
	}

	p, err := h.playlists.CreatePlaylist(c.UserContext(), actor, req.Name, req.Description)
	if err != nil {
		return err
	}
	return response.Created(c, p, "Playlist created successfully")
}

// GetUserPlaylists godoc
// @Summary List playlists of a user
// @Tags Playlist
// @Produce json
// @Param userId path string true "Member id"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/playlists/user/{userId} [get]
func (h *PlaylistHandler) GetUserPlaylists(c *fiber.Ctx) error {
	playlists, err := h.playlists.GetUserPlaylists(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return response.OK(c, playlists, "Playlists fetched successfully")
}

// GetPlaylist godoc
// @Summary Get a playlist
// @Tags Playlist
// @Produce json
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylist(c *fiber.Ctx) error {
	p, err := h.playlists.GetPlaylist(c.UserContext(), c.Params("playlistId"))
	if err != nil {
		return err
	}
	return response.OK(c, p, "Playlist fetched successfully")
}

// UpdatePlaylist godoc
// @Summary Update own playlist
// @Tags Playlist
// @Accept json
// @Produce json
// @Param playlistId path string true "Playlist id"
// @Param body body PlaylistReq true "Playlist"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/playlists/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}
	req, err := parsePlaylistReq(c)
	if err != nil {
		return err
	}

	p, err := h.playlists.UpdatePlaylist(c.UserContext(), c.Params("playlistId"), actor, req.Name, req.Description)
	if err != nil {
		return err
	}
	return response.OK(c, p, "Playlist updated successfully")
}

// DeletePlaylist godoc
// @Summary Delete own playlist
// @Tags Playlist
// @Produce json
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	p, err := h.playlists.DeletePlaylist(c.UserContext(), c.Params("playlistId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, p, "Playlist deleted successfully")
}

// AddVideo godoc
// @Summary Add a video to own playlist
// @Tags Playlist
// @Produce json
// @Param videoId path string true "Video id"
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/playlists/{playlistId}/videos/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	res, err := h.playlists.AddVideo(c.UserContext(), c.Params("playlistId"), c.Params("videoId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, res.Playlist, res.Message)
}

// RemoveVideo godoc
// @Summary Remove a video from own playlist
// @Tags Playlist
// @Produce json
// @Param videoId path string true "Video id"
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/playlists/{playlistId}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	res, err := h.playlists.RemoveVideo(c.UserContext(), c.Params("playlistId"), c.Params("videoId"), actor)
	if err != nil {
		return err
	}
	return response.OK(c, res.Playlist, res.Message)
}
