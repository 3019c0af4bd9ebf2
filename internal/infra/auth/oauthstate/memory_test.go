package oauthstate

import (
	"context"
	"testing"
	"time"

	"vidshare/internal/domain/entity"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndConsume(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	value := service.OAuthState{Provider: entity.ProviderGitHub, CallbackURL: "/upload"}

	require.NoError(t, store.Save(ctx, "state-1", value, time.Minute))

	got, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.Equal(t, value, *got)

	// One-time use
	_, err = store.Consume(ctx, "state-1")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))
}

func TestMemoryStore_Expired(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "state-1", service.OAuthState{Provider: entity.ProviderGoogle}, 10*time.Minute))

	now = now.Add(11 * time.Minute)
	_, err := store.Consume(ctx, "state-1")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))
}

func TestMemoryStore_SaveCleansUpExpired(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "old", service.OAuthState{}, time.Minute))
	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, "new", service.OAuthState{}, time.Minute))

	assert.Len(t, store.entries, 1)
}

func TestMemoryStore_UnknownState(t *testing.T) {
	_, err := NewMemoryStore().Consume(context.Background(), "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))
}

func TestGenerate(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err)
	b, err := Generate()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
