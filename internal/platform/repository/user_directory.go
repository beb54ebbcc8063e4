package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// UserDirectory 會員服務的 member table，只讀
type UserDirectory interface {
	Exists(ctx context.Context, memberID string) (bool, error)
}

type pgQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type userDirectory struct {
	db pgQuerier
}

// NewUserDirectory create a UserDirectory
func NewUserDirectory(pool *pgxpool.Pool) UserDirectory {
	return &userDirectory{db: pool}
}

const memberExistsSQL = `SELECT EXISTS(SELECT 1 FROM member WHERE member_id = $1)`

func (d *userDirectory) Exists(ctx context.Context, memberID string) (bool, error) {
	var exists bool
	if err := d.db.QueryRow(ctx, memberExistsSQL, memberID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
