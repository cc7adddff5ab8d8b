package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clipshare/internal/domain/models"
	"clipshare/internal/repository/dto"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	storageMaxConnections         = 10
	storageMinConnections         = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storageConnectionsLifetime    = 30 * time.Minute
	storagePingTimeout            = 5 * time.Second
)

const (
	pgErrCodeUniqueViolation = "23505"
)

const tableClipboards = "clipboards"

var clipboardColumns = []string{
	"id", "share_code", "view_code", "content", "access_type",
	"expiry_at", "created_at", "updated_at", "last_edit_at",
}

type PostgresStorage struct {
	db   Querier
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// NewStorage migrates the schema, then opens a connection pool at dsn.
func NewStorage(ctx context.Context, dsn string, log *zerolog.Logger) (*PostgresStorage, error) {
	if err := Migrate(ctx, dsn, log); err != nil {
		return nil, err
	}

	pool, err := newPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	s := New(pool)
	s.pool = pool
	log.Info().Msg("postgres storage initialized")
	return s, nil
}

// New builds the storage over any Querier. Close is a no-op unless the
// storage owns a pool.
func New(db Querier) *PostgresStorage {
	return &PostgresStorage{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func newPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database DSN: %w", err)
	}

	poolCfg.MaxConns = storageMaxConnections
	poolCfg.MinConns = storageMinConnections
	poolCfg.MaxConnIdleTime = storageConnectionsMaxIdleTime
	poolCfg.MaxConnLifetime = storageConnectionsLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func (p *PostgresStorage) ClipboardCreate(ctx context.Context, clip models.Clipboard) (models.Clipboard, error) {
	row := dto.FromDomain(clip)

	query, args, err := p.qb.Insert(tableClipboards).
		Columns(clipboardColumns...).
		Values(row.ID, row.ShareCode, row.ViewCode, row.Content, row.AccessType,
			row.ExpiryAt, row.CreatedAt, row.UpdatedAt, row.LastEditAt).
		ToSql()
	if err != nil {
		return models.Clipboard{}, fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := p.db.Exec(ctx, query, args...); err != nil {
		return models.Clipboard{}, mapError(err)
	}
	return row.ToDomain(), nil
}

func (p *PostgresStorage) ClipboardGetByID(ctx context.Context, id string) (models.Clipboard, error) {
	return p.getOne(ctx, sq.Eq{"id": id})
}

func (p *PostgresStorage) ClipboardGetByShareCode(ctx context.Context, shareCode string) (models.Clipboard, error) {
	return p.getOne(ctx, sq.Eq{"share_code": shareCode})
}

func (p *PostgresStorage) ClipboardGetByViewCode(ctx context.Context, viewCode string) (models.Clipboard, error) {
	return p.getOne(ctx, sq.Eq{"view_code": viewCode})
}

func (p *PostgresStorage) ClipboardUpdateContent(ctx context.Context, id, shareCode, content string, at time.Time) (models.Clipboard, error) {
	query, args, err := p.qb.Update(tableClipboards).
		Set("content", content).
		Set("updated_at", at).
		Set("last_edit_at", at).
		Where(sq.Eq{"id": id, "share_code": shareCode}).
		Where(sq.Or{sq.Eq{"expiry_at": nil}, sq.Gt{"expiry_at": at}}).
		Suffix("RETURNING " + strings.Join(clipboardColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Clipboard{}, fmt.Errorf("failed to build update: %w", err)
	}

	var row dto.ClipboardDB
	if err := pgxscan.Get(ctx, p.db, &row, query, args...); err != nil {
		return models.Clipboard{}, mapError(err)
	}
	return row.ToDomain(), nil
}

func (p *PostgresStorage) ClipboardDelete(ctx context.Context, id, shareCode string) error {
	query, args, err := p.qb.Delete(tableClipboards).
		Where(sq.Eq{"id": id, "share_code": shareCode}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUnfound
	}
	return nil
}

func (p *PostgresStorage) ClipboardDeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := p.qb.Delete(tableClipboards).
		Where(sq.NotEq{"expiry_at": nil}).
		Where(sq.LtOrEq{"expiry_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete: %w", err)
	}

	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err)
	}
	return tag.RowsAffected(), nil
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()
	return p.db.Ping(ctxPing)
}

func (p *PostgresStorage) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *PostgresStorage) getOne(ctx context.Context, where sq.Eq) (models.Clipboard, error) {
	query, args, err := p.qb.Select(clipboardColumns...).
		From(tableClipboards).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Clipboard{}, fmt.Errorf("failed to build select: %w", err)
	}

	var row dto.ClipboardDB
	if err := pgxscan.Get(ctx, p.db, &row, query, args...); err != nil {
		return models.Clipboard{}, mapError(err)
	}
	return row.ToDomain(), nil
}

// mapError converts pgx/pgconn errors to domain errors. Context errors pass through.
func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	if pgxscan.NotFound(err) || errors.Is(err, pgx.ErrNoRows) {
		return models.ErrUnfound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		return fmt.Errorf("%w: %s", models.ErrConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("postgres: %w", err)
}
