package product

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

// SearchFilter carries the optional catalog filters. Zero values and nil
// pointers mean "no restriction".
type SearchFilter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	IsVeg    *bool
}

type Service interface {
	Search(ctx context.Context, filter SearchFilter) ([]*Product, error)
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	Create(ctx context.Context, input CreateProductInput) (*Product, error)
	Update(ctx context.Context, id uuid.UUID, input CreateProductInput) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Search loads the catalog newest first and applies the filters in memory.
// The catalog is small enough in this system that pushing filters into SQL
// is not worth the query surface.
func (s *service) Search(ctx context.Context, filter SearchFilter) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	pred := All(
		MatchText(filter.Query),
		MatchCategory(filter.Category),
		MatchPriceRange(filter.MinPrice, filter.MaxPrice),
		MatchVeg(filter.IsVeg),
	)
	return Apply(products, pred), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "ProductService"),
		zap.String("method", "Create"),
	)

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	p := &Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsVeg:       input.IsVeg,
		Rating:      input.Rating,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info("product created", zap.String("productID", p.ID.String()))
	return p, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input CreateProductInput) (*Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	p := &Product{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsVeg:       input.IsVeg,
		Rating:      input.Rating,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateProductInput(input CreateProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperr.Validationf("name is required")
	}
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return apperr.Validationf("price must be a finite number")
	}
	if input.Price < 0 {
		return apperr.Validationf("price must not be negative")
	}
	if input.Rating < 0 || input.Rating > 5 {
		return apperr.Validationf("rating must be between 0 and 5")
	}
	return nil
}
