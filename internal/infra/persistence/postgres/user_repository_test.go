package postgres

import (
	"testing"

	"vidshare/internal/domain/entity"
	"vidshare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserMappers(t *testing.T) {
	hash := "$2a$10$hash"
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "  Alice@Example.COM ",
		PasswordHash: &hash,
	}

	m := fromUserDomain(user)
	assert.Equal(t, "Alice@Example.COM", m.Email)
	assert.Equal(t, "credentials", m.Provider)
	assert.Equal(t, &hash, m.PasswordHash)

	back := toUserDomain(m)
	assert.Equal(t, user.ID, back.ID)
	assert.True(t, back.HasPassword())
	assert.Equal(t, entity.ProviderCredentials, back.Provider)
}

func TestUserMappers_EmailCaseIsPreserved(t *testing.T) {
	upper := fromUserDomain(&entity.User{Email: "Alice@X.com"})
	lower := fromUserDomain(&entity.User{Email: "alice@x.com"})

	assert.Equal(t, "Alice@X.com", upper.Email)
	assert.Equal(t, "alice@x.com", lower.Email)
	assert.NotEqual(t, normalizeEmail("Alice@X.com"), normalizeEmail("alice@x.com"))
}

func TestUserMappers_ExternalAccount(t *testing.T) {
	m := fromUserDomain(&entity.User{Email: "bob@example.com", Provider: entity.ProviderGitHub})

	assert.Nil(t, m.PasswordHash)
	assert.Equal(t, "github", m.Provider)
	assert.False(t, toUserDomain(m).HasPassword())
	assert.Nil(t, toUserDomain((*model.UserModel)(nil)))
}

func TestConstraintErrors(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(unique, "insert")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
}
