package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/whiskersm-users/internal/model"
)

var testColumns = []string{
	"id", "first_name", "last_name", "email", "password",
	"is_activated", "access_token", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	repo := NewUserRepository(db)
	repo.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	return repo, mock
}

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.NotNil(t, repo.now)
}

func TestUserRepository_GetByID(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    model.User
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(testColumns).
					AddRow(id.String(), "Ada", "Lovelace", "ada@x.com", "hash", true, "tok", created, created)
				mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).WithArgs(id).WillReturnRows(rows)
			},
			want: model.User{
				ID: id, FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com",
				Password: "hash", IsActivated: true, AccessToken: "tok",
				CreatedAt: created, UpdatedAt: created,
			},
		},
		{
			name: "null password and token",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(testColumns).
					AddRow(id.String(), "Ada", "", "ada@x.com", nil, false, nil, created, created)
				mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).WithArgs(id).WillReturnRows(rows)
			},
			want: model.User{
				ID: id, FirstName: "Ada", Email: "ada@x.com",
				CreatedAt: created, UpdatedAt: created,
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).WithArgs(id).WillReturnError(sql.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.GetByID(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserRepository_GetByID_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).WithArgs(id).WillReturnError(errors.New("conn reset"))

	_, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get user by id")
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()
		now := time.Now().UTC()
		rows := sqlmock.NewRows(testColumns).
			AddRow(id.String(), "Ada", "", "ada@x.com", "hash", true, nil, now, now)
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).WithArgs("ada@x.com").WillReturnRows(rows)

		got, err := repo.GetByEmail(context.Background(), "ada@x.com")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "hash", got.Password)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).WithArgs("nobody@x.com").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUserRepository_List(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now().UTC()
		rows := sqlmock.NewRows(testColumns).
			AddRow(uuid.NewString(), "Ada", "", "ada@x.com", nil, false, nil, now, now).
			AddRow(uuid.NewString(), "Bob", "", "bob@x.com", "hash", true, nil, now, now)
		mock.ExpectQuery(`SELECT .* FROM users ORDER BY created_at`).WillReturnRows(rows)

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "ada@x.com", got[0].Email)
		assert.Equal(t, "bob@x.com", got[1].Email)
	})

	t.Run("empty", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT .* FROM users ORDER BY created_at`).WillReturnRows(sqlmock.NewRows(testColumns))

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT .* FROM users ORDER BY created_at`).WillReturnError(errors.New("boom"))

		_, err := repo.List(context.Background())
		assert.ErrorContains(t, err, "failed to list users")
	})
}

func TestUserRepository_Create(t *testing.T) {
	user := model.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		Email:     "ada@x.com",
	}

	t.Run("inserted", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := repo.now()
		rows := sqlmock.NewRows(testColumns).
			AddRow(user.ID.String(), "Ada", "", "ada@x.com", nil, false, nil, now, now)
		mock.ExpectQuery(`INSERT INTO users .* RETURNING`).
			WithArgs(user.ID, "Ada", "", "ada@x.com", nil, false, nil, now, now).
			WillReturnRows(rows)

		got, err := repo.Create(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.False(t, got.IsActivated)
		assert.Equal(t, now, got.CreatedAt)
	})

	t.Run("generates id", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := repo.now()
		id := uuid.New()
		rows := sqlmock.NewRows(testColumns).
			AddRow(id.String(), "Ada", "", "ada@x.com", nil, false, nil, now, now)
		mock.ExpectQuery(`INSERT INTO users .* RETURNING`).
			WithArgs(sqlmock.AnyArg(), "Ada", "", "ada@x.com", nil, false, nil, now, now).
			WillReturnRows(rows)

		noID := user
		noID.ID = uuid.Nil
		_, err := repo.Create(context.Background(), noID)
		require.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`INSERT INTO users .* RETURNING`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, model.ErrDuplicateEmail)
	})

	t.Run("other failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`INSERT INTO users .* RETURNING`).
			WillReturnError(&pgconn.PgError{Code: "23502"})

		_, err := repo.Create(context.Background(), user)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrDuplicateEmail)
		assert.Contains(t, err.Error(), "failed to create user")
	})
}

func TestUserRepository_Save(t *testing.T) {
	user := model.User{
		ID:          uuid.New(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@x.com",
		Password:    "hash",
		IsActivated: true,
	}

	t.Run("upserted", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := repo.now()
		rows := sqlmock.NewRows(testColumns).
			AddRow(user.ID.String(), "Ada", "Lovelace", "ada@x.com", "hash", true, nil, now.Add(-time.Hour), now)
		mock.ExpectQuery(`INSERT INTO users .* ON CONFLICT \(id\) DO UPDATE SET .* RETURNING`).
			WithArgs(user.ID, "Ada", "Lovelace", "ada@x.com", "hash", true, nil, now).
			WillReturnRows(rows)

		got, err := repo.Save(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, "Lovelace", got.LastName)
		assert.True(t, got.IsActivated)
		assert.True(t, got.CreatedAt.Before(got.UpdatedAt))
	})

	t.Run("email taken by another user", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`INSERT INTO users .* ON CONFLICT`).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Save(context.Background(), user)
		assert.ErrorIs(t, err, model.ErrDuplicateEmail)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
		errMsg  string
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "exec error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(id).WillReturnError(errors.New("boom"))
			},
			errMsg: "failed to delete user",
		},
		{
			name: "rows affected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(id).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))
			},
			errMsg: "failed to read affected rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			err := repo.Delete(context.Background(), id)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				assert.ErrorContains(t, err, tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505")))
	assert.False(t, isUniqueViolation(nil))
}
