package response

import (
	"errors"

	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIResponse success envelope
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// APIError failure envelope
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// New build a success envelope
func New(statusCode int, data interface{}, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < fiber.StatusBadRequest,
	}
}

// Send write envelope with status code
func Send(c *fiber.Ctx, statusCode int, data interface{}, message string) error {
	return c.Status(statusCode).JSON(New(statusCode, data, message))
}

// OK 200 envelope
func OK(c *fiber.Ctx, data interface{}, message string) error {
	return Send(c, fiber.StatusOK, data, message)
}

// Created 201 envelope
func Created(c *fiber.Ctx, data interface{}, message string) error {
	return Send(c, fiber.StatusCreated, data, message)
}

// ErrorHandler fiber.Config.ErrorHandler, every error returned by a handler ends here
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var appErr *errprocess.AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		code = appErr.StatusCode()
		message = appErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	default:
		logger.Log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.Status(code).JSON(APIError{
		StatusCode: code,
		Message:    message,
		Success:    false,
	})
}
