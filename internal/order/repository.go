package order

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Order, error)
	GetAllWithUser(ctx context.Context) ([]*OrderWithUser, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
	UpdateFeedback(ctx context.Context, id uuid.UUID, rating int, comment string, status OrderStatus) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "OrderRepository"),
		zap.String("method", "Create"),
	)

	query := `
		INSERT INTO orders (id, user_id, shipping_address, total_amount, product_ids_json, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		o.ID, o.UserID, o.ShippingAddress, o.TotalAmount, o.ProductIDsJSON, o.Status,
	).Scan(&o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return apperr.Storage("insert order", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "OrderRepository"),
		zap.String("method", "GetByID"),
	)

	query := `
		SELECT id, user_id, shipping_address, total_amount, product_ids_json,
		       status, feedback_rating, feedback_comment, created_at
		FROM orders
		WHERE id = $1`

	var o Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.ShippingAddress, &o.TotalAmount, &o.ProductIDsJSON,
		&o.Status, &o.FeedbackRating, &o.FeedbackComment, &o.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("order", id.String())
	}
	if err != nil {
		log.Error("failed to get order", zap.Error(err))
		return nil, apperr.Storage("get order", err)
	}
	return &o, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "OrderRepository"),
		zap.String("method", "GetByUserID"),
	)

	query := `
		SELECT id, user_id, shipping_address, total_amount, product_ids_json,
		       status, feedback_rating, feedback_comment, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, apperr.Storage("list orders", err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.ShippingAddress, &o.TotalAmount, &o.ProductIDsJSON,
			&o.Status, &o.FeedbackRating, &o.FeedbackComment, &o.CreatedAt,
		); err != nil {
			log.Error("failed to scan order", zap.Error(err))
			return nil, apperr.Storage("scan order", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate orders", err)
	}
	return orders, nil
}

func (r *repository) GetAllWithUser(ctx context.Context) ([]*OrderWithUser, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "OrderRepository"),
		zap.String("method", "GetAllWithUser"),
	)

	query := `
		SELECT o.id, o.user_id, o.shipping_address, o.total_amount, o.product_ids_json,
		       o.status, o.feedback_rating, o.feedback_comment, o.created_at,
		       u.username, u.avatar_url
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, apperr.Storage("list all orders", err)
	}
	defer rows.Close()

	var orders []*OrderWithUser
	for rows.Next() {
		var o OrderWithUser
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.ShippingAddress, &o.TotalAmount, &o.ProductIDsJSON,
			&o.Status, &o.FeedbackRating, &o.FeedbackComment, &o.CreatedAt,
			&o.Username, &o.AvatarURL,
		); err != nil {
			log.Error("failed to scan order", zap.Error(err))
			return nil, apperr.Storage("scan order", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate orders", err)
	}
	return orders, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "OrderRepository"),
		zap.String("method", "UpdateStatus"),
	)

	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		log.Error("failed to update status", zap.Error(err))
		return apperr.Storage("update order status", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage("update order status", err)
	}
	if rows == 0 {
		return apperr.NotFound("order", id.String())
	}
	return nil
}

// UpdateFeedback writes rating, comment and the post-feedback status in a
// single statement so the three fields never drift apart.
func (r *repository) UpdateFeedback(ctx context.Context, id uuid.UUID, rating int, comment string, status OrderStatus) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "OrderRepository"),
		zap.String("method", "UpdateFeedback"),
	)

	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET feedback_rating = $1, feedback_comment = $2, status = $3 WHERE id = $4`,
		rating, comment, status, id)
	if err != nil {
		log.Error("failed to update feedback", zap.Error(err))
		return apperr.Storage("update order feedback", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage("update order feedback", err)
	}
	if rows == 0 {
		return apperr.NotFound("order", id.String())
	}
	return nil
}
