// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/repository"
	"vidshare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	conn *Connector
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(conn *Connector) repository.UserRepository {
	return &userRepository{conn: conn}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by email. Emails compare case-sensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", normalizeEmail(email))
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	ctx, cancel := repo.conn.WithTimeout(ctx)
	defer cancel()

	db, err := repo.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	if err := db.WithContext(ctx).Where(query, arg).Take(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create inserts the user. A unique violation on email becomes ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := repo.conn.WithTimeout(ctx)
	defer cancel()

	db, err := repo.conn.DB(ctx)
	if err != nil {
		return err
	}

	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate user id")
		}
		user.ID = id
	}

	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isTimeout(err) {
			return domainerrors.NewDatabaseExecuteError(err, "create user timed out")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Provider:     entity.ProviderType(data.Provider),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	provider := data.Provider
	if provider == "" {
		provider = entity.ProviderCredentials
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        normalizeEmail(data.Email),
		PasswordHash: data.PasswordHash,
		Provider:     provider.String(),
	}
}
