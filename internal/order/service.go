package order

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error)
	AddFeedback(ctx context.Context, id uuid.UUID, rating int, comment string) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context) ([]*OrderWithUser, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create places a new order. Orders always start in PENDING regardless of
// anything the caller sends.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "OrderService"),
		zap.String("method", "Create"),
	)

	if input.UserID == 0 {
		return nil, apperr.Validationf("userId is required")
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		return nil, apperr.Validationf("shippingAddress is required")
	}
	if math.IsNaN(input.TotalAmount) || math.IsInf(input.TotalAmount, 0) {
		return nil, apperr.Validationf("totalAmount must be a finite number")
	}
	if input.TotalAmount < 0 {
		return nil, apperr.Validationf("totalAmount must not be negative")
	}
	if input.ProductIDsJSON != "" && !json.Valid([]byte(input.ProductIDsJSON)) {
		return nil, apperr.Validationf("productIdsJson must be valid JSON")
	}

	o := &Order{
		ID:              uuid.New(),
		UserID:          input.UserID,
		ShippingAddress: input.ShippingAddress,
		TotalAmount:     input.TotalAmount,
		ProductIDsJSON:  input.ProductIDsJSON,
		Status:          StatusPending,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	log.Info("order placed",
		zap.String("orderID", o.ID.String()),
		zap.Uint("userID", o.UserID),
	)
	return o, nil
}

// UpdateStatus moves an order to any valid status. There is no transition
// graph; support staff correct orders by forcing states directly.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "OrderService"),
		zap.String("method", "UpdateStatus"),
	)

	parsed, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, parsed); err != nil {
		return nil, err
	}

	log.Info("order status updated",
		zap.String("orderID", id.String()),
		zap.String("status", string(parsed)),
	)
	return s.repo.GetByID(ctx, id)
}

// AddFeedback records a customer rating and comment. Feedback always
// overwrites earlier feedback. The order moves to REVIEWED unless a return
// is in progress, in which case the return state wins.
func (s *service) AddFeedback(ctx context.Context, id uuid.UUID, rating int, comment string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "OrderService"),
		zap.String("method", "AddFeedback"),
	)

	if rating < 1 || rating > 5 {
		return nil, apperr.Validationf("rating must be between 1 and 5")
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := NextStatusAfterFeedback(o.Status)
	if err := s.repo.UpdateFeedback(ctx, id, rating, comment, next); err != nil {
		return nil, err
	}

	o.FeedbackRating = &rating
	o.FeedbackComment = &comment
	o.Status = next

	log.Info("order feedback recorded",
		zap.String("orderID", id.String()),
		zap.Int("rating", rating),
		zap.String("status", string(next)),
	)
	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	if userID == 0 {
		return nil, apperr.Validationf("userId is required")
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*OrderWithUser, error) {
	return s.repo.GetAllWithUser(ctx)
}
