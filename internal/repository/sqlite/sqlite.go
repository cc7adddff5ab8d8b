package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"clipshare/internal/domain/models"
	"clipshare/internal/repository/dto"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	modernc "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	storagePingTimeout = 5 * time.Second
	busyTimeoutMillis  = 5000

	tableClipboards = "clipboards"
)

var clipboardColumns = []string{
	"id", "share_code", "view_code", "content", "access_type",
	"expiry_at", "created_at", "updated_at", "last_edit_at",
}

const schema = `
CREATE TABLE IF NOT EXISTS clipboards (
	id           TEXT PRIMARY KEY,
	share_code   TEXT NOT NULL UNIQUE,
	view_code    TEXT NOT NULL UNIQUE,
	content      TEXT NOT NULL,
	access_type  TEXT NOT NULL,
	expiry_at    INTEGER,
	created_at   INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL,
	last_edit_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_clipboards_expiry_at
	ON clipboards(expiry_at) WHERE expiry_at IS NOT NULL;
`

type SQLiteStorage struct {
	db  *sql.DB
	qb  sq.StatementBuilderType
	log *zerolog.Logger
}

// NewStorage opens (creating if needed) the database file at path and
// ensures the schema exists.
func NewStorage(ctx context.Context, path string, log *zerolog.Logger) (*SQLiteStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: sqlite path is empty", models.ErrInvalidData)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	s := New(db, log)
	s.log.Info().Str("path", path).Msg("sqlite storage initialized")
	return s, nil
}

// New wraps an already opened database. The schema is expected to exist.
func New(db *sql.DB, log *zerolog.Logger) *SQLiteStorage {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &SQLiteStorage{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		log: log,
	}
}

// pragmas go into the DSN so every pooled connection gets them
func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMillis))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	return "file:" + path + "?" + q.Encode()
}

func (s *SQLiteStorage) ClipboardCreate(ctx context.Context, clip models.Clipboard) (models.Clipboard, error) {
	row := dto.SQLiteFromDomain(clip)

	query, args, err := s.qb.Insert(tableClipboards).
		Columns(clipboardColumns...).
		Values(row.ID, row.ShareCode, row.ViewCode, row.Content, row.AccessType,
			row.ExpiryAt, row.CreatedAt, row.UpdatedAt, row.LastEditAt).
		ToSql()
	if err != nil {
		return models.Clipboard{}, fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return models.Clipboard{}, mapError(err)
	}
	return row.ToDomain(), nil
}

func (s *SQLiteStorage) ClipboardGetByID(ctx context.Context, id string) (models.Clipboard, error) {
	return s.getOne(ctx, sq.Eq{"id": id})
}

func (s *SQLiteStorage) ClipboardGetByShareCode(ctx context.Context, shareCode string) (models.Clipboard, error) {
	return s.getOne(ctx, sq.Eq{"share_code": shareCode})
}

func (s *SQLiteStorage) ClipboardGetByViewCode(ctx context.Context, viewCode string) (models.Clipboard, error) {
	return s.getOne(ctx, sq.Eq{"view_code": viewCode})
}

// ClipboardUpdateContent is a single conditional UPDATE, so a concurrent
// delete or expiry leaves it matching no row.
func (s *SQLiteStorage) ClipboardUpdateContent(ctx context.Context, id, shareCode, content string, at time.Time) (models.Clipboard, error) {
	micros := at.UnixMicro()

	query, args, err := s.qb.Update(tableClipboards).
		Set("content", content).
		Set("updated_at", micros).
		Set("last_edit_at", micros).
		Where(sq.Eq{"id": id, "share_code": shareCode}).
		Where(sq.Or{sq.Eq{"expiry_at": nil}, sq.Gt{"expiry_at": micros}}).
		Suffix("RETURNING " + strings.Join(clipboardColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Clipboard{}, fmt.Errorf("failed to build update: %w", err)
	}

	var row dto.ClipboardSQLite
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(row.ScanTargets()...); err != nil {
		return models.Clipboard{}, mapError(err)
	}
	return row.ToDomain(), nil
}

func (s *SQLiteStorage) ClipboardDelete(ctx context.Context, id, shareCode string) error {
	query, args, err := s.qb.Delete(tableClipboards).
		Where(sq.Eq{"id": id, "share_code": shareCode}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrUnfound
	}
	return nil
}

func (s *SQLiteStorage) ClipboardDeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := s.qb.Delete(tableClipboards).
		Where(sq.NotEq{"expiry_at": nil}).
		Where(sq.LtOrEq{"expiry_at": before.UnixMicro()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

func (s *SQLiteStorage) Ping(ctx context.Context) error {
	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()
	return s.db.PingContext(ctxPing)
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) getOne(ctx context.Context, where sq.Eq) (models.Clipboard, error) {
	query, args, err := s.qb.Select(clipboardColumns...).
		From(tableClipboards).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Clipboard{}, fmt.Errorf("failed to build select: %w", err)
	}

	var row dto.ClipboardSQLite
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(row.ScanTargets()...); err != nil {
		return models.Clipboard{}, mapError(err)
	}
	return row.ToDomain(), nil
}

// mapError turns driver errors into domain errors by result code, never by message text.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrUnfound
	}

	var sqliteErr *modernc.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", models.ErrConflict, err)
		}
	}
	return fmt.Errorf("sqlite: %w", err)
}
