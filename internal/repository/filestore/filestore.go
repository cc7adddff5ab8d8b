package filestore

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clipshare/internal/domain/models"
	"clipshare/internal/repository/inmemory"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidDir   = errors.New("invalid directory path")
	ErrAbsPath      = errors.New("failed to get absolute path")
	ErrCreateDir    = errors.New("failed to create directory")
	ErrCreateFile   = errors.New("failed to create file")
	ErrOpenFile     = errors.New("failed to open file")
	ErrReadClip     = errors.New("failed to read clipboard from file")
	ErrSetClip      = errors.New("failed to put clipboard in storage")
	ErrListClips    = errors.New("failed to list clipboards")
	ErrMarshalClip  = errors.New("failed to marshal clipboard")
	ErrWriteData    = errors.New("failed to write data")
	ErrWriteNewLine = errors.New("failed to write new line")
	ErrRenameFile   = errors.New("failed to replace snapshot file")
)

// StorageInterface - the part of the in-memory storage a snapshot needs
type StorageInterface interface {
	ClipboardCreate(ctx context.Context, clip models.Clipboard) (models.Clipboard, error)
	ClipboardList(ctx context.Context) ([]models.Clipboard, error)
}

// Load reads a JSON-lines snapshot into storage. Records already expired at
// now are dropped. A missing file is not an error.
func Load(ctx context.Context, log zerolog.Logger, filePath string, storage StorageInterface, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, logError(log, err, "context error")
	}

	if filePath == "" {
		log.Info().Msg("no snapshot path provided, starting with empty storage")
		return 0, nil
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return 0, logAndWrapError(log, err, ErrAbsPath, "get absolute path")
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		log.Info().Str("path", absPath).Msg("snapshot file does not exist yet")
		return 0, nil
	}

	loaded, err := loadClipsFromFile(ctx, absPath, storage, log, now)
	if err != nil {
		return 0, err
	}

	log.Info().Int("count", loaded).Str("path", absPath).Msg("snapshot loaded")
	return loaded, nil
}

// Save writes every record of storage to filePath, replacing the old snapshot
// only after the new one is fully written.
func Save(ctx context.Context, log *zerolog.Logger, filePath string, storage StorageInterface) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, logError(*log, err, "context error")
	}

	if filePath == "" {
		return 0, logError(*log, ErrInvalidDir, "invalid directory path")
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return 0, logAndWrapError(*log, err, ErrInvalidDir, "get absolute path")
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return 0, logAndWrapError(*log, err, ErrCreateDir, "create directory structure")
	}

	written, err := writeClipsToFile(ctx, absPath, storage, *log)
	if err != nil {
		return 0, err
	}

	log.Info().Int("count", written).Str("path", absPath).Msg("snapshot saved")
	return written, nil
}

func logError(log zerolog.Logger, err error, msg string) error {
	log.Error().Err(err).Msg(msg)
	return err
}

func logAndWrapError(log zerolog.Logger, err error, wrapErr error, context string) error {
	log.Error().Err(err).Str("context", context).Msg(wrapErr.Error())
	return fmt.Errorf("%w: %v", wrapErr, err)
}

func loadClipsFromFile(ctx context.Context, filePath string, storage StorageInterface, log zerolog.Logger, now time.Time) (int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, logAndWrapError(log, err, ErrOpenFile, "open file")
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// clipboard content can be far longer than the default 64KiB token
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	loaded := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return 0, logError(log, err, "context error")
		}

		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}

		var clip models.Clipboard
		if err := json.Unmarshal(data, &clip); err != nil {
			log.Warn().Err(err).Msg("failed to unmarshal clipboard, skipping line")
			continue
		}

		if clip.IsExpired(now) {
			continue
		}

		stored, err := storeClip(ctx, clip, storage, log)
		if err != nil {
			return 0, err
		}
		if stored {
			loaded++
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, logAndWrapError(log, err, ErrReadClip, "read file")
	}

	return loaded, nil
}

// storeClip reports stored=false for a duplicate that was skipped.
func storeClip(ctx context.Context, clip models.Clipboard, storage StorageInterface, log zerolog.Logger) (bool, error) {
	_, err := storage.ClipboardCreate(ctx, clip)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, models.ErrConflict) {
		log.Warn().Str("id", clip.ID).Msg("skipping duplicate clipboard in snapshot")
		return false, nil
	}

	return false, logAndWrapError(log, err, ErrSetClip, "put clipboard in storage")
}

func writeClipsToFile(ctx context.Context, filePath string, storage StorageInterface, log zerolog.Logger) (int, error) {
	clips, err := storage.ClipboardList(ctx)
	if err != nil {
		return 0, logAndWrapError(log, err, ErrListClips, "list clipboards")
	}

	tmpPath := filePath + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, logAndWrapError(log, err, ErrCreateFile, "create file")
	}
	defer os.Remove(tmpPath)

	writer := bufio.NewWriter(file)
	for _, clip := range clips {
		if err := ctx.Err(); err != nil {
			file.Close()
			return 0, logError(log, err, "context error")
		}

		data, err := json.Marshal(clip)
		if err != nil {
			file.Close()
			return 0, logAndWrapError(log, err, ErrMarshalClip, "marshal clipboard")
		}

		if _, err := writer.Write(data); err != nil {
			file.Close()
			return 0, logAndWrapError(log, err, ErrWriteData, "write data")
		}

		if err := writer.WriteByte('\n'); err != nil {
			file.Close()
			return 0, logAndWrapError(log, err, ErrWriteNewLine, "write newline")
		}
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return 0, logAndWrapError(log, err, ErrWriteData, "flush data")
	}
	if err := file.Close(); err != nil {
		return 0, logAndWrapError(log, err, ErrWriteData, "close file")
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return 0, logAndWrapError(log, err, ErrRenameFile, "rename snapshot")
	}
	return len(clips), nil
}

// SnapshotStorage is the in-memory storage restored from and persisted to a
// JSON-lines file.
type SnapshotStorage struct {
	*inmemory.InmemoryStorage
	path string
	log  *zerolog.Logger
}

func NewSnapshotStorage(ctx context.Context, log *zerolog.Logger, path string) (*SnapshotStorage, error) {
	mem := inmemory.NewStorage()
	if _, err := Load(ctx, *log, path, mem, time.Now().UTC()); err != nil {
		return nil, err
	}
	return &SnapshotStorage{InmemoryStorage: mem, path: path, log: log}, nil
}

// Flush writes the current contents to disk without closing.
func (s *SnapshotStorage) Flush(ctx context.Context) error {
	_, err := Save(ctx, s.log, s.path, s.InmemoryStorage)
	return err
}

func (s *SnapshotStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	saveErr := s.Flush(ctx)
	return errors.Join(saveErr, s.InmemoryStorage.Close())
}
