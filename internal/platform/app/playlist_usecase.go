package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	errprocess "video_platform_service/pkg/err"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgVideoAdded         = "Video added to playlist successfully"
	msgVideoAlreadyExists = "Video already exists in the playlist"
	msgVideoRemoved       = "Video removed from playlist successfully"
	msgVideoNotInPlaylist = "Video not found in the playlist"
)

// PlaylistUseCase 播放清單
type PlaylistUseCase interface {
	CreatePlaylist(ctx context.Context, actor, name, description string) (*domain.Playlist, error)
	GetUserPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID, actor, name, description string) (*domain.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, actor string) (*domain.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID, actor string) (*domain.PlaylistVideoRes, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actor string) (*domain.PlaylistVideoRes, error)
}

type playlistUseCase struct {
	playlists repository.Store[domain.Playlist]
	videos    repository.Store[domain.Video]
	users     repository.UserDirectory
}

// NewPlaylistUseCase create PlaylistUseCase
func NewPlaylistUseCase(playlists repository.Store[domain.Playlist],
	videos repository.Store[domain.Video],
	users repository.UserDirectory,
) PlaylistUseCase {
	return &playlistUseCase{playlists: playlists, videos: videos, users: users}
}

func (s *playlistUseCase) CreatePlaylist(ctx context.Context, actor, name, description string) (*domain.Playlist, error) {
	if blank(name) || blank(description) {
		return nil, errprocess.BadRequest("Name and description are required")
	}

	p := domain.NewPlaylist(actor, strings.TrimSpace(name), strings.TrimSpace(description))
	if err := s.playlists.Create(ctx, p); err != nil {
		return nil, errprocess.Internal("Something went wrong while creating the playlist", err)
	}
	return p, nil
}

func (s *playlistUseCase) GetUserPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error) {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	playlists, err := s.playlists.Find(ctx, bson.M{"owner": userID}, repository.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, errprocess.Internal("failed to fetch playlists", err)
	}
	return playlists, nil
}

func (s *playlistUseCase) GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	id, err := parseObjectID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}

	p, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Playlist not found", "failed to fetch playlist")
	}
	return p, nil
}

func (s *playlistUseCase) UpdatePlaylist(ctx context.Context, playlistID, actor, name, description string) (*domain.Playlist, error) {
	id, err := parseObjectID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	if blank(name) && blank(description) {
		return nil, errprocess.BadRequest("Name or description is required")
	}
	if _, err := s.owned(ctx, id, actor); err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if !blank(name) {
		set["name"] = strings.TrimSpace(name)
	}
	if !blank(description) {
		set["description"] = strings.TrimSpace(description)
	}

	p, err := s.playlists.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, storageErr(err, "Playlist not found", "Something went wrong while updating the playlist")
	}
	return p, nil
}

func (s *playlistUseCase) DeletePlaylist(ctx context.Context, playlistID, actor string) (*domain.Playlist, error) {
	id, err := parseObjectID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, id, actor); err != nil {
		return nil, err
	}

	p, err := s.playlists.DeleteByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Playlist not found", "Something went wrong while deleting the playlist")
	}
	return p, nil
}

// AddVideo 條件式 $push, 已存在時回傳原清單
func (s *playlistUseCase) AddVideo(ctx context.Context, playlistID, videoID, actor string) (*domain.PlaylistVideoRes, error) {
	pid, vid, err := parsePair(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, pid, actor); err != nil {
		return nil, err
	}
	if _, err := s.videos.FindByID(ctx, vid); err != nil {
		return nil, storageErr(err, "Video not found", "failed to fetch video")
	}

	p, err := s.playlists.UpdateOne(ctx,
		bson.M{"_id": pid, "videos": bson.M{"$ne": vid}},
		bson.M{
			"$push": bson.M{"videos": vid},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	switch {
	case err == nil:
		return &domain.PlaylistVideoRes{Message: msgVideoAdded, Playlist: p}, nil
	case errors.Is(err, repository.ErrNotFound):
		return s.unchanged(ctx, pid, vid, true, msgVideoAlreadyExists)
	default:
		return nil, errprocess.Internal("Something went wrong while adding the video", err)
	}
}

// RemoveVideo 不在清單中不算錯誤
func (s *playlistUseCase) RemoveVideo(ctx context.Context, playlistID, videoID, actor string) (*domain.PlaylistVideoRes, error) {
	pid, vid, err := parsePair(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, pid, actor); err != nil {
		return nil, err
	}

	p, err := s.playlists.UpdateOne(ctx,
		bson.M{"_id": pid, "videos": vid},
		bson.M{
			"$pull": bson.M{"videos": vid},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	switch {
	case err == nil:
		return &domain.PlaylistVideoRes{Message: msgVideoRemoved, Playlist: p}, nil
	case errors.Is(err, repository.ErrNotFound):
		return s.unchanged(ctx, pid, vid, false, msgVideoNotInPlaylist)
	default:
		return nil, errprocess.Internal("Something went wrong while removing the video", err)
	}
}

// unchanged 條件更新沒有命中, 重新讀取確認影片是否在清單中
func (s *playlistUseCase) unchanged(ctx context.Context, id, videoID primitive.ObjectID, present bool, msg string) (*domain.PlaylistVideoRes, error) {
	p, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Playlist not found", "failed to fetch playlist")
	}
	if p.HasVideo(videoID) != present {
		// 期間有其他請求修改了清單
		return nil, errprocess.Internal("Playlist changed while updating, please retry",
			fmt.Errorf("playlist %s video %s present=%t", id.Hex(), videoID.Hex(), !present))
	}
	return &domain.PlaylistVideoRes{Message: msg, Playlist: p}, nil
}

func (s *playlistUseCase) owned(ctx context.Context, id primitive.ObjectID, actor string) (*domain.Playlist, error) {
	p, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Playlist not found", "failed to fetch playlist")
	}
	if p.Owner != actor {
		return nil, errprocess.Forbidden("You are not the owner of this playlist")
	}
	return p, nil
}

func parsePair(playlistID, videoID string) (primitive.ObjectID, primitive.ObjectID, error) {
	pid, err := parseObjectID(playlistID, "playlist id")
	if err != nil {
		return pid, primitive.NilObjectID, err
	}
	vid, err := parseObjectID(videoID, "video id")
	return pid, vid, err
}
