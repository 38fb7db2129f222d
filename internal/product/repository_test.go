package product

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peakstore/peakstore-be/internal/apperr"
)

func productColumns() []string {
	return []string{
		"id", "name", "description", "price", "category",
		"image_url", "is_veg", "rating", "created_at",
	}
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("NewestFirst", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow(uuid.New(), "Pepperoni Pizza", "Spicy", 14.00, "Pizza", "", false, 4.5, time.Now()).
			AddRow(uuid.New(), "Caesar Salad", "Romaine", 9.00, "Salad", "", false, 4.0, time.Now().Add(-time.Hour))

		mock.ExpectQuery("SELECT (.+) FROM products ORDER BY created_at DESC").
			WillReturnRows(rows)

		products, err := repo.List(context.Background())
		assert.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Pepperoni Pizza", products[0].Name)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnError(errors.New("db error"))

		products, err := repo.List(context.Background())
		assert.Nil(t, products)
		assert.True(t, apperr.IsStorage(err))
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		p, err := repo.GetByID(context.Background(), id)
		assert.Nil(t, p)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	p := &Product{ID: uuid.New(), Name: "Margherita Pizza", Price: 12.50, Category: "Pizza", IsVeg: true, Rating: 4.2}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE products").
			WithArgs(p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.IsVeg, p.Rating, p.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), p))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE products").
			WithArgs(p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.IsVeg, p.Rating, p.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, apperr.IsNotFound(repo.Update(context.Background(), p)))
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM products WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, apperr.IsNotFound(repo.Delete(context.Background(), id)))
	})
}
