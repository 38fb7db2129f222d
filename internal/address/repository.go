package address

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/apperr"
	"github.com/peakstore/peakstore-be/internal/logger"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) ([]*Address, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Address, error)

	// CreateTx inserts addr atomically with the default bookkeeping: the
	// user's first address is forced default, and an insert marked default
	// clears any previous default in the same transaction.
	CreateTx(ctx context.Context, addr *Address) error

	// SetDefaultTx clears the user's current default and promotes addressID
	// in one transaction.
	SetDefaultTx(ctx context.Context, userID uint, addressID uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID uint,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByUserID"),
		zap.Uint("user_id", userID),
	)

	const q = `
		SELECT
			id, user_id,
			full_name, street, city, state, zip_code, country,
			is_default, created_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, apperr.Storage("address.GetByUserID", err)
	}
	defer rows.Close()

	var res []*Address

	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID, &a.UserID,
			&a.FullName, &a.Street, &a.City, &a.State, &a.ZipCode, &a.Country,
			&a.IsDefault, &a.CreatedAt,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, apperr.Storage("address.GetByUserID", err)
		}
		res = append(res, &a)
	}

	return res, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByID"),
		zap.String("address_id", id.String()),
	)

	const q = `
		SELECT
			id, user_id,
			full_name, street, city, state, zip_code, country,
			is_default, created_at
		FROM addresses
		WHERE id = $1
		LIMIT 1
	`

	var a Address
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.UserID,
		&a.FullName, &a.Street, &a.City, &a.State, &a.ZipCode, &a.Country,
		&a.IsDefault, &a.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("address", id.String())
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, apperr.Storage("address.GetByID", err)
	}

	return &a, nil
}

func (r *repository) CreateTx(
	ctx context.Context,
	addr *Address,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "CreateTx"),
		zap.String("address_id", addr.ID.String()),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage("address.CreateTx", err)
	}
	defer tx.Rollback()

	// 1. Count existing addresses; the first one is always the default.
	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM addresses WHERE user_id = $1`,
		addr.UserID,
	).Scan(&count)
	if err != nil {
		log.Error("count failed", zap.Error(err))
		return apperr.Storage("address.CreateTx", err)
	}

	if count == 0 {
		addr.IsDefault = true
	} else if addr.IsDefault {
		// 2. Clear the previous default before inserting a new one.
		_, err = tx.ExecContext(ctx, `
			UPDATE addresses
			SET is_default = false
			WHERE user_id = $1
			  AND is_default = true
		`, addr.UserID)
		if err != nil {
			log.Error("clear default failed", zap.Error(err))
			return apperr.Storage("address.CreateTx", err)
		}
	}

	// 3. Insert the new row.
	err = tx.QueryRowContext(ctx, `
		INSERT INTO addresses (
			id, user_id,
			full_name, street, city, state, zip_code, country,
			is_default
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`,
		addr.ID, addr.UserID,
		addr.FullName, addr.Street, addr.City, addr.State, addr.ZipCode, addr.Country,
		addr.IsDefault,
	).Scan(&addr.CreatedAt)
	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return apperr.Storage("address.CreateTx", err)
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storage("address.CreateTx", err)
	}
	return nil
}

func (r *repository) SetDefaultTx(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "SetDefaultTx"),
		zap.Uint("user_id", userID),
		zap.String("address_id", addressID.String()),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage("address.SetDefaultTx", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE addresses
		SET is_default = false
		WHERE user_id = $1
		  AND is_default = true
	`, userID)
	if err != nil {
		log.Error("clear default failed", zap.Error(err))
		return apperr.Storage("address.SetDefaultTx", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE addresses
		SET is_default = true
		WHERE id = $1
		  AND user_id = $2
	`, addressID, userID)
	if err != nil {
		log.Error("set default failed", zap.Error(err))
		return apperr.Storage("address.SetDefaultTx", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return apperr.NotFound("address", addressID.String())
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storage("address.SetDefaultTx", err)
	}
	return nil
}

// Delete removes the row unconditionally. Deleting the default does not
// re-elect a new one; the user simply has no default until the next
// create or set-default call.
func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Delete"),
		zap.String("address_id", id.String()),
	)
	log.Debug("start deleting address")

	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		log.Error("delete failed", zap.Error(err))
		return apperr.Storage("address.Delete", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return apperr.NotFound("address", id.String())
	}

	return nil
}
