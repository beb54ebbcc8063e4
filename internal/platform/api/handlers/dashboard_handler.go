package handlers

import (
	"video_platform_service/internal/platform/app"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler channel dashboard http handler
type DashboardHandler struct {
	dashboard app.DashboardUseCase
}

// NewDashboardHandler create dashboard handler
func NewDashboardHandler(dashboard app.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// ChannelStats godoc
// @Summary Aggregate stats of the caller's channel
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIError
// @Security BearerAuth
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) ChannelStats(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboard.ChannelStats(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return response.OK(c, stats, "Channel stats fetched successfully")
}

// ChannelVideos godoc
// @Summary All videos of the caller's channel
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.APIResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/videos [get]
func (h *DashboardHandler) ChannelVideos(c *fiber.Ctx) error {
	actor, err := currentMemberID(c)
	if err != nil {
		return err
	}

	videos, err := h.dashboard.ChannelVideos(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return response.OK(c, videos, "Channel videos fetched successfully")
}
