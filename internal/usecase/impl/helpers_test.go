package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"vidshare/config"
	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// memoryUserRepository enforces email uniqueness the way the unique index does.
type memoryUserRepository struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	creates int
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byEmail: make(map[string]*entity.User)}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u

	return &clone, nil
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := user.Email
	if _, exists := r.byEmail[key]; exists {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate email")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	r.byEmail[key] = &clone
	r.creates++

	return nil
}

func (r *memoryUserRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byEmail)
}
