package app

import (
	"context"
	"errors"
	"os"
	"strings"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// test 可替換
var removeFile = os.Remove

func parseObjectID(id, name string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, errprocess.BadRequest("Invalid " + name)
	}
	return oid, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// storageErr ErrNotFound -> 404, 其他 -> 500
func storageErr(err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errprocess.NotFound(notFoundMsg)
	}
	return errprocess.Internal(failMsg, err)
}

// requireUser member id 必須是 uuid 且存在於會員服務
func requireUser(ctx context.Context, users repository.UserDirectory, memberID string) error {
	if _, err := uuid.Parse(memberID); err != nil {
		return errprocess.BadRequest("Invalid user id")
	}
	ok, err := users.Exists(ctx, memberID)
	if err != nil {
		return errprocess.Internal("failed to look up user", err)
	}
	if !ok {
		return errprocess.NotFound("User not found")
	}
	return nil
}

// emit publish failure never fails the request
func emit(ctx context.Context, events repository.EventPublisher, e domain.ActivityEvent) {
	if err := events.Publish(ctx, e); err != nil {
		logger.Log.Warn("publish activity event failed",
			zap.String("type", string(e.Type)),
			zap.String("subject", e.Subject),
			zap.Error(err),
		)
	}
}

// discardTemp remove leftover temp uploads
func discardTemp(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := removeFile(p); err != nil && !os.IsNotExist(err) {
			logger.Log.Warn("remove temp file failed", zap.String("path", p), zap.Error(err))
		}
	}
}
