package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConnectCheck check api connect start
// @Summary Check platform service status
// @Description Returns a simple confirmation message
// @Tags Shared
// @Success 200 {string} string "platform service start!"
// @Router / [get]
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("platform service start!")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging for a service
// @Tags Shared
// @Param service query string true "Service name"
// @Param status query bool true "Debug status"
// @Success 200 {string} string "Service debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	service := c.Query("service")
	statusStr := c.Query("status")
	logger.Log.Info("debug", zap.String("service", service), zap.String("status", statusStr))

	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status value")
	}

	logger.Log.SetDebugMode(status)
	return c.SendString(fmt.Sprintf("service[%s]: debug mode is : %t", service, status))
}

// currentMemberID actor set by JWTMiddleware
func currentMemberID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok || id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized request")
	}
	return id, nil
}

// saveUpload 將 multipart 檔案存到暫存目錄，沒有檔案時回傳空字串
func saveUpload(c *fiber.Ctx, field, tmpDir string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// 非 multipart 或沒有此欄位
		return "", nil
	}

	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		logger.Log.Error("create tmp dir failed", zap.String("dir", tmpDir), zap.Error(err))
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store upload")
	}

	path := filepath.Join(tmpDir, uuid.NewString()+filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, path); err != nil {
		logger.Log.Error("save upload failed", zap.String("field", field), zap.Error(err))
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store upload")
	}
	return path, nil
}
