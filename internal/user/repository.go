package user

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)

	Create(ctx context.Context, u *User) error
	UpdateAvatar(ctx context.Context, id uint, avatarURL string) error

	List(ctx context.Context) ([]*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetByUsername returns (nil, nil) when the username is unknown so callers
// can distinguish "absent" from a storage failure.
func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "User"),
		zap.String("method", "GetByUsername"),
		zap.String("username", username),
	)

	const q = `
		SELECT id, username, role, avatar_url, password_hash, created_at
		FROM users
		WHERE username = $1
		LIMIT 1
	`

	var u User
	err := r.db.QueryRowContext(ctx, q, username).Scan(
		&u.ID, &u.Username, &u.Role, &u.AvatarURL, &u.PasswordHash, &u.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, apperr.Storage("user.GetByUsername", err)
	}

	return &u, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id uint,
) (*User, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "User"),
		zap.String("method", "GetByID"),
		zap.Uint("user_id", id),
	)

	const q = `
		SELECT id, username, role, avatar_url, password_hash, created_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var u User
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&u.ID, &u.Username, &u.Role, &u.AvatarURL, &u.PasswordHash, &u.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user", "")
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, apperr.Storage("user.GetByID", err)
	}

	return &u, nil
}

func (r *repository) Create(
	ctx context.Context,
	u *User,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "User"),
		zap.String("method", "Create"),
		zap.String("username", u.Username),
	)

	const q = `
		INSERT INTO users (username, role, avatar_url, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx, q,
		u.Username, u.Role, u.AvatarURL, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return apperr.Storage("user.Create", err)
	}

	return nil
}

func (r *repository) UpdateAvatar(
	ctx context.Context,
	id uint,
	avatarURL string,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "User"),
		zap.String("method", "UpdateAvatar"),
		zap.Uint("user_id", id),
	)

	const q = `
		UPDATE users
		SET avatar_url = $1
		WHERE id = $2
	`

	res, err := r.db.ExecContext(ctx, q, avatarURL, id)
	if err != nil {
		log.Error("update failed", zap.Error(err))
		return apperr.Storage("user.UpdateAvatar", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return apperr.NotFound("user", "")
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "User"),
		zap.String("method", "List"),
	)

	const q = `
		SELECT id, username, role, avatar_url, password_hash, created_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, apperr.Storage("user.List", err)
	}
	defer rows.Close()

	var res []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Role, &u.AvatarURL, &u.PasswordHash, &u.CreatedAt,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, apperr.Storage("user.List", err)
		}
		res = append(res, &u)
	}

	return res, nil
}
