package post

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

type Repository interface {
	List(ctx context.Context) ([]*PostWithAuthor, error)
	Create(ctx context.Context, p *Post) error
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*PostWithAuthor, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "PostRepository"),
		zap.String("method", "List"),
	)

	query := `
		SELECT p.id, p.author_id, p.image_url, p.caption, p.likes,
		       p.overlay_type, p.overlay_text, p.created_at,
		       u.username, u.avatar_url
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query posts", zap.Error(err))
		return nil, apperr.Storage("list posts", err)
	}
	defer rows.Close()

	var posts []*PostWithAuthor
	for rows.Next() {
		var p PostWithAuthor
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.ImageURL, &p.Caption, &p.Likes,
			&p.OverlayType, &p.OverlayText, &p.CreatedAt,
			&p.AuthorName, &p.AuthorAvatar,
		); err != nil {
			log.Error("failed to scan post", zap.Error(err))
			return nil, apperr.Storage("scan post", err)
		}
		posts = append(posts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate posts", err)
	}
	return posts, nil
}

func (r *repository) Create(ctx context.Context, p *Post) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "PostRepository"),
		zap.String("method", "Create"),
	)

	query := `
		INSERT INTO posts (id, author_id, image_url, caption, overlay_type, overlay_text)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.AuthorID, p.ImageURL, p.Caption, p.OverlayType, p.OverlayText,
	).Scan(&p.CreatedAt)
	if err != nil {
		log.Error("failed to insert post", zap.Error(err))
		return apperr.Storage("insert post", err)
	}
	return nil
}

func (r *repository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "PostRepository"),
		zap.String("method", "IncrementLikes"),
	)

	var likes int
	err := r.db.QueryRowContext(ctx,
		`UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id,
	).Scan(&likes)
	if err == sql.ErrNoRows {
		return 0, apperr.NotFound("post", id.String())
	}
	if err != nil {
		log.Error("failed to increment likes", zap.Error(err))
		return 0, apperr.Storage("like post", err)
	}
	return likes, nil
}
