package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clipshare/internal/domain/models"
	"clipshare/internal/repository/inmemory"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 10, 8, 30, 0, 0, time.UTC)

func clip(id, share, view string, expiry *time.Time) models.Clipboard {
	return models.Clipboard{
		ID:         id,
		ShareCode:  share,
		ViewCode:   view,
		Content:    "text of " + id + "\nwith a second line",
		AccessType: models.AccessEdit,
		ExpiryAt:   expiry,
		CreatedAt:  now.Add(-time.Minute),
		UpdatedAt:  now.Add(-time.Minute),
		LastEditAt: now.Add(-time.Minute),
	}
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "nested", "clipboards.jsonl")

	past := now.Add(-time.Second)
	future := now.Add(time.Hour)

	src := inmemory.NewStorage()
	for _, c := range []models.Clipboard{
		clip("live", "1111!", "11111", &future),
		clip("forever", "2222@", "22222", nil),
		clip("expired", "3333#", "33333", &past),
	} {
		_, err := src.ClipboardCreate(ctx, c)
		require.NoError(t, err)
	}

	written, err := Save(ctx, &log, path, src)
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	dst := inmemory.NewStorage()
	loaded, err := Load(ctx, log, path, dst, now)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded, "expired records are dropped on load")

	got, err := dst.ClipboardGetByShareCode(ctx, "1111!")
	require.NoError(t, err)
	assert.Equal(t, clip("live", "1111!", "11111", &future), got)

	_, err = dst.ClipboardGetByID(ctx, "expired")
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestLoad_MissingFileAndEmptyPath(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()
	storage := inmemory.NewStorage()

	loaded, err := Load(ctx, log, filepath.Join(t.TempDir(), "absent.jsonl"), storage, now)
	require.NoError(t, err)
	assert.Zero(t, loaded)

	loaded, err = Load(ctx, log, "", storage, now)
	require.NoError(t, err)
	assert.Zero(t, loaded)
}

func TestLoad_SkipsBrokenLines(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "clipboards.jsonl")

	lines := []string{
		`{"id":"a","share_code":"1234#","view_code":"12345","content":"ok","access_type":"view","expiry_at":null}`,
		`not json`,
		``,
		`{"id":"b","share_code":"1234#","view_code":"54321","content":"dup share","access_type":"view","expiry_at":null}`,
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600))

	storage := inmemory.NewStorage()
	loaded, err := Load(ctx, log, path, storage, now)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 1, storage.Len())
}

func TestSave_EmptyPath(t *testing.T) {
	log := zerolog.Nop()
	_, err := Save(context.Background(), &log, "", inmemory.NewStorage())
	assert.ErrorIs(t, err, ErrInvalidDir)
}

func TestSnapshotStorage_CloseSaves(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "clipboards.jsonl")

	first, err := NewSnapshotStorage(ctx, &log, path)
	require.NoError(t, err)
	_, err = first.ClipboardCreate(ctx, clip("kept", "4444$", "44444", nil))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewSnapshotStorage(ctx, &log, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.ClipboardGetByViewCode(ctx, "44444")
	require.NoError(t, err)
	assert.Equal(t, "kept", got.ID)
}

func TestLoad_DuplicatesNotCounted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipboards.jsonl")
	line := `{"id":"a","share_code":"1234#","view_code":"12345","content":"ok","access_type":"view","expiry_at":null}`
	require.NoError(t, os.WriteFile(path, []byte(line+"\n"+line+"\n"+line+"\n"), 0o600))

	storage := inmemory.NewStorage()
	loaded, err := Load(context.Background(), zerolog.Nop(), path, storage, now)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)
	assert.Equal(t, storage.Len(), loaded)
}
