package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/couponhub-api/internal/infrastructure/postgres"
)

func TestUserRepo_FindByEmail_NoExiste(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewUserRepository(mock)

	mock.ExpectQuery("FROM users").WithArgs("nadie@example.com").WillReturnError(pgx.ErrNoRows)

	u, err := repo.FindByEmail(context.Background(), "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_FindByEmail(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewUserRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "image", "role", "status", "created_at", "updated_at"}).
		AddRow("u-1", "admin@example.com", "hash", "Ada Lovelace", "", "admin", "active", createdAt, createdAt)
	mock.ExpectQuery("FROM users").WithArgs("admin@example.com").WillReturnRows(rows)

	u, err := repo.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_AplicaScriptsEnOrden(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS stores").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("ALTER TABLE stores DROP CONSTRAINT IF EXISTS stores_slug_key").WillReturnResult(pgxmock.NewResult("ALTER TABLE", 0))

	require.NoError(t, postgres.Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
