package address

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peakstore/peakstore-be/internal/apperr"
)

func addressColumns() []string {
	return []string{
		"id", "user_id", "full_name", "street", "city", "state",
		"zip_code", "country", "is_default", "created_at",
	}
}

func TestRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uint(1)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(addressColumns()).AddRow(
			uuid.New(), userID, "John Peak", "123 Main St", "Denver",
			"CO", "80202", "US", true, time.Now(),
		)

		mock.ExpectQuery("SELECT .* FROM addresses WHERE user_id = \\$1").
			WithArgs(userID).
			WillReturnRows(rows)

		res, err := repo.GetByUserID(context.Background(), userID)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "John Peak", res[0].FullName)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM addresses").
			WithArgs(userID).
			WillReturnError(errors.New("db error"))

		res, err := repo.GetByUserID(context.Background(), userID)
		assert.True(t, apperr.IsStorage(err))
		assert.Nil(t, res)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(addressColumns()).AddRow(
			id, 1, "John Peak", "123 Main St", "Denver",
			"CO", "80202", "US", true, time.Now(),
		)

		mock.ExpectQuery("SELECT .* FROM addresses WHERE id = \\$1").
			WithArgs(id).
			WillReturnRows(rows)

		res, err := repo.GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, id, res.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM addresses WHERE id = \\$1").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(addressColumns()))

		res, err := repo.GetByID(context.Background(), id)
		assert.True(t, apperr.IsNotFound(err))
		assert.Nil(t, res)
	})
}

func TestRepository_CreateTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	newAddr := func(isDefault bool) *Address {
		return &Address{
			ID:        uuid.New(),
			UserID:    1,
			FullName:  "John Peak",
			Street:    "123 Main St",
			City:      "Denver",
			State:     "CO",
			ZipCode:   "80202",
			Country:   "US",
			IsDefault: isDefault,
		}
	}

	t.Run("FirstAddressForcedDefault", func(t *testing.T) {
		addr := newAddr(false)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM addresses WHERE user_id = \\$1").
			WithArgs(addr.UserID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO addresses").
			WithArgs(
				addr.ID, addr.UserID, addr.FullName, addr.Street, addr.City,
				addr.State, addr.ZipCode, addr.Country, true,
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectCommit()

		err := repo.CreateTx(context.Background(), addr)
		assert.NoError(t, err)
		assert.True(t, addr.IsDefault)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DefaultInsertClearsPrevious", func(t *testing.T) {
		addr := newAddr(true)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM addresses WHERE user_id = \\$1").
			WithArgs(addr.UserID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectExec("UPDATE addresses SET is_default = false").
			WithArgs(addr.UserID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO addresses").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectCommit()

		err := repo.CreateTx(context.Background(), addr)
		assert.NoError(t, err)
		assert.True(t, addr.IsDefault)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NonDefaultInsertSkipsClear", func(t *testing.T) {
		addr := newAddr(false)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM addresses WHERE user_id = \\$1").
			WithArgs(addr.UserID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("INSERT INTO addresses").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectCommit()

		err := repo.CreateTx(context.Background(), addr)
		assert.NoError(t, err)
		assert.False(t, addr.IsDefault)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertErrorRollsBack", func(t *testing.T) {
		addr := newAddr(false)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM addresses WHERE user_id = \\$1").
			WithArgs(addr.UserID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("INSERT INTO addresses").
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		err := repo.CreateTx(context.Background(), addr)
		assert.True(t, apperr.IsStorage(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SetDefaultTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	userID := uint(1)
	addrID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE addresses SET is_default = false").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE addresses SET is_default = true").
			WithArgs(addrID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SetDefaultTx(context.Background(), userID, addrID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AddressNotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE addresses SET is_default = false").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE addresses SET is_default = true").
			WithArgs(addrID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.SetDefaultTx(context.Background(), userID, addrID)
		assert.True(t, apperr.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ClearError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE addresses SET is_default = false").
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		err := repo.SetDefaultTx(context.Background(), userID, addrID)
		assert.True(t, apperr.IsStorage(err))
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM addresses WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM addresses WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), id)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM addresses WHERE id = \\$1").
			WithArgs(id).
			WillReturnError(errors.New("db error"))

		err := repo.Delete(context.Background(), id)
		assert.True(t, apperr.IsStorage(err))
	})
}
