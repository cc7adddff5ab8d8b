//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clipshare/internal/domain/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "clipshare",
			"POSTGRES_PASSWORD": "clipshare",
			"POSTGRES_DB":       "clipshare",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://clipshare:clipshare@%s:%s/clipshare?sslmode=disable", host, port.Port())
}

func TestPostgresStorage_Integration(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()
	log := zerolog.Nop()

	s, err := NewStorage(ctx, dsn, &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// migrations are idempotent
	require.NoError(t, Migrate(ctx, dsn, &log))

	c := sample()
	_, err = s.ClipboardCreate(ctx, c)
	require.NoError(t, err)

	dup := sample()
	dup.ID = "5d7b0d7e-0000-4000-8000-000000000001"
	dup.ViewCode = "54321"
	_, err = s.ClipboardCreate(ctx, dup)
	assert.ErrorIs(t, err, models.ErrConflict)

	got, err := s.ClipboardGetByShareCode(ctx, c.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	at := now.Add(time.Minute)
	updated, err := s.ClipboardUpdateContent(ctx, c.ID, c.ShareCode, "world", at)
	require.NoError(t, err)
	assert.Equal(t, "world", updated.Content)
	assert.Equal(t, at, updated.UpdatedAt)

	_, err = s.ClipboardUpdateContent(ctx, c.ID, c.ShareCode, "late", expiry)
	assert.ErrorIs(t, err, models.ErrUnfound)

	removed, err := s.ClipboardDeleteExpired(ctx, expiry)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	assert.ErrorIs(t, s.ClipboardDelete(ctx, c.ID, c.ShareCode), models.ErrUnfound)
	assert.NoError(t, s.Ping(ctx))
}
