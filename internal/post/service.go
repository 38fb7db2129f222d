package post

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

type Service interface {
	Feed(ctx context.Context) ([]*PostWithAuthor, error)
	Create(ctx context.Context, input CreatePostInput) (*Post, error)
	Like(ctx context.Context, id uuid.UUID) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Feed(ctx context.Context) ([]*PostWithAuthor, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, input CreatePostInput) (*Post, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "PostService"),
		zap.String("method", "Create"),
	)

	if input.AuthorID == 0 {
		return nil, apperr.Validationf("authorId is required")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, apperr.Validationf("imageUrl is required")
	}

	p := &Post{
		ID:          uuid.New(),
		AuthorID:    input.AuthorID,
		ImageURL:    input.ImageURL,
		Caption:     input.Caption,
		OverlayType: input.OverlayType,
		OverlayText: input.OverlayText,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info("post created", zap.String("postID", p.ID.String()))
	return p, nil
}

func (s *service) Like(ctx context.Context, id uuid.UUID) (int, error) {
	return s.repo.IncrementLikes(ctx, id)
}
