package address

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

// Service defines the business logic for the address book.
type Service interface {
	List(ctx context.Context, userID uint) ([]*Address, error)

	Create(ctx context.Context, input CreateAddressInput) (*Address, error)
	SetDefault(ctx context.Context, addressID uuid.UUID, userID uint) (*Address, error)
	Delete(ctx context.Context, addressID uuid.UUID) error
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new address service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(
	ctx context.Context,
	userID uint,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "List"),
		zap.Uint("user_id", userID),
	)

	if userID == 0 {
		return nil, apperr.Validationf("User ID is required")
	}

	log.Info("listing addresses")

	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Create(
	ctx context.Context,
	input CreateAddressInput,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Create"),
		zap.Uint("user_id", input.UserID),
	)

	if err := validateCreateInput(input); err != nil {
		log.Warn("invalid address input", zap.Error(err))
		return nil, err
	}

	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = "US"
	}

	addr := &Address{
		ID:        uuid.New(),
		UserID:    input.UserID,
		FullName:  input.FullName,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Country:   country,
		IsDefault: input.IsDefault,
	}

	if err := s.repo.CreateTx(ctx, addr); err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	log.Info("address created",
		zap.String("address_id", addr.ID.String()),
		zap.Bool("is_default", addr.IsDefault),
	)
	return addr, nil
}

func validateCreateInput(input CreateAddressInput) error {
	if input.UserID == 0 {
		return apperr.Validationf("Missing required address fields")
	}

	required := []string{
		input.FullName, input.Street, input.City, input.State, input.ZipCode,
	}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return apperr.Validationf("Missing required address fields")
		}
	}
	return nil
}

func (s *service) SetDefault(
	ctx context.Context,
	addressID uuid.UUID,
	userID uint,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "SetDefault"),
		zap.String("address_id", addressID.String()),
		zap.Uint("user_id", userID),
	)

	if userID == 0 {
		return nil, apperr.Validationf("User ID is required")
	}

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}

	// Ownership check: promoting someone else's address must look the same
	// as promoting a missing one.
	if addr.UserID != userID {
		log.Warn("unauthorized address access")
		return nil, apperr.NotFound("address", addressID.String())
	}

	log.Info("setting default address")

	if err := s.repo.SetDefaultTx(ctx, userID, addressID); err != nil {
		log.Error("failed to set default address", zap.Error(err))
		return nil, err
	}

	addr.IsDefault = true
	return addr, nil
}

func (s *service) Delete(
	ctx context.Context,
	addressID uuid.UUID,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Delete"),
		zap.String("address_id", addressID.String()),
	)

	log.Info("deleting address")

	return s.repo.Delete(ctx, addressID)
}
