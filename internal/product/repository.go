package product

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "ProductRepository"),
		zap.String("method", "List"),
	)

	query := `
		SELECT id, name, description, price, category, image_url, is_veg, rating, created_at
		FROM products
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, apperr.Storage("list products", err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.ImageURL, &p.IsVeg, &p.Rating, &p.CreatedAt,
		); err != nil {
			log.Error("failed to scan product", zap.Error(err))
			return nil, apperr.Storage("scan product", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate products", err)
	}
	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "ProductRepository"),
		zap.String("method", "GetByID"),
	)

	query := `
		SELECT id, name, description, price, category, image_url, is_veg, rating, created_at
		FROM products
		WHERE id = $1`

	var p Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.ImageURL, &p.IsVeg, &p.Rating, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("product", id.String())
	}
	if err != nil {
		log.Error("failed to get product", zap.Error(err))
		return nil, apperr.Storage("get product", err)
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "ProductRepository"),
		zap.String("method", "Create"),
	)

	query := `
		INSERT INTO products (id, name, description, price, category, image_url, is_veg, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.IsVeg, p.Rating,
	).Scan(&p.CreatedAt)
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return apperr.Storage("insert product", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "ProductRepository"),
		zap.String("method", "Update"),
	)

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, category = $4,
		    image_url = $5, is_veg = $6, rating = $7
		WHERE id = $8`,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.IsVeg, p.Rating, p.ID)
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return apperr.Storage("update product", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage("update product", err)
	}
	if rows == 0 {
		return apperr.NotFound("product", p.ID.String())
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "ProductRepository"),
		zap.String("method", "Delete"),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product", zap.Error(err))
		return apperr.Storage("delete product", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage("delete product", err)
	}
	if rows == 0 {
		return apperr.NotFound("product", id.String())
	}
	return nil
}
