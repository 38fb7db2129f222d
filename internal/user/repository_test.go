package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peakstore/peakstore-be/internal/apperr"
)

func userColumns() []string {
	return []string{"id", "username", "role", "avatar_url", "password_hash", "created_at"}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(1, "peak", "CONSUMER", nil, nil, time.Now())

		mock.ExpectQuery("SELECT .* FROM users WHERE username = \\$1").
			WithArgs("peak").
			WillReturnRows(rows)

		u, err := repo.GetByUsername(context.Background(), "peak")
		assert.NoError(t, err)
		assert.Equal(t, "peak", u.Username)
		assert.Equal(t, RoleConsumer, u.Role)
	})

	t.Run("Absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE username = \\$1").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		u, err := repo.GetByUsername(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE username = \\$1").
			WithArgs("peak").
			WillReturnError(errors.New("db error"))

		u, err := repo.GetByUsername(context.Background(), "peak")
		assert.True(t, apperr.IsStorage(err))
		assert.Nil(t, u)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(2, "admin", "ADMIN", nil, nil, time.Now())

		mock.ExpectQuery("SELECT .* FROM users WHERE id = \\$1").
			WithArgs(uint(2)).
			WillReturnRows(rows)

		u, err := repo.GetByID(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE id = \\$1").
			WithArgs(uint(99)).
			WillReturnRows(sqlmock.NewRows(userColumns()))

		u, err := repo.GetByID(context.Background(), 99)
		assert.True(t, apperr.IsNotFound(err))
		assert.Nil(t, u)
	})
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("peak", RoleConsumer, nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))

		u := &User{Username: "peak", Role: RoleConsumer}
		err := repo.Create(context.Background(), u)

		assert.NoError(t, err)
		assert.Equal(t, uint(5), u.ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New("duplicate key"))

		err := repo.Create(context.Background(), &User{Username: "peak", Role: RoleConsumer})
		assert.True(t, apperr.IsStorage(err))
	})
}

func TestUserRepository_UpdateAvatar(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET avatar_url = \\$1").
			WithArgs("http://img", uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateAvatar(context.Background(), 1, "http://img"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET avatar_url = \\$1").
			WithArgs("http://img", uint(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateAvatar(context.Background(), 9, "http://img")
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestUserRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "admin", "ADMIN", nil, nil, time.Now()).
		AddRow(2, "peak", "CONSUMER", nil, nil, time.Now())

	mock.ExpectQuery("SELECT .* FROM users ORDER BY created_at DESC").
		WillReturnRows(rows)

	res, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}
