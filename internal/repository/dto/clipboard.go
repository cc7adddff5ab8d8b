package dto

import (
	"database/sql"
	"time"

	"clipshare/internal/domain/models"
)

// DTO rows for the SQL storages
type (
	// ClipboardDB is a postgres row, scanned by scany through db tags
	ClipboardDB struct {
		ID         string     `db:"id"`
		ShareCode  string     `db:"share_code"`
		ViewCode   string     `db:"view_code"`
		Content    string     `db:"content"`
		AccessType string     `db:"access_type"`
		ExpiryAt   *time.Time `db:"expiry_at"`
		CreatedAt  time.Time  `db:"created_at"`
		UpdatedAt  time.Time  `db:"updated_at"`
		LastEditAt time.Time  `db:"last_edit_at"`
	}

	// ClipboardSQLite is a sqlite row; timestamps are unix microseconds
	ClipboardSQLite struct {
		ID         string
		ShareCode  string
		ViewCode   string
		Content    string
		AccessType string
		ExpiryAt   sql.NullInt64
		CreatedAt  int64
		UpdatedAt  int64
		LastEditAt int64
	}
)

// ToDomain converts a postgres row into the domain model
func (d ClipboardDB) ToDomain() models.Clipboard {
	return models.Clipboard{
		ID:         d.ID,
		ShareCode:  d.ShareCode,
		ViewCode:   d.ViewCode,
		Content:    d.Content,
		AccessType: models.AccessType(d.AccessType),
		ExpiryAt:   utcPtr(d.ExpiryAt),
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
		LastEditAt: d.LastEditAt.UTC(),
	}
}

// FromDomain converts the domain model into a postgres row
func FromDomain(c models.Clipboard) ClipboardDB {
	return ClipboardDB{
		ID:         c.ID,
		ShareCode:  c.ShareCode,
		ViewCode:   c.ViewCode,
		Content:    c.Content,
		AccessType: string(c.AccessType),
		ExpiryAt:   c.ExpiryAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		LastEditAt: c.LastEditAt,
	}
}

func (d ClipboardSQLite) ToDomain() models.Clipboard {
	c := models.Clipboard{
		ID:         d.ID,
		ShareCode:  d.ShareCode,
		ViewCode:   d.ViewCode,
		Content:    d.Content,
		AccessType: models.AccessType(d.AccessType),
		CreatedAt:  time.UnixMicro(d.CreatedAt).UTC(),
		UpdatedAt:  time.UnixMicro(d.UpdatedAt).UTC(),
		LastEditAt: time.UnixMicro(d.LastEditAt).UTC(),
	}
	if d.ExpiryAt.Valid {
		expiry := time.UnixMicro(d.ExpiryAt.Int64).UTC()
		c.ExpiryAt = &expiry
	}
	return c
}

func SQLiteFromDomain(c models.Clipboard) ClipboardSQLite {
	row := ClipboardSQLite{
		ID:         c.ID,
		ShareCode:  c.ShareCode,
		ViewCode:   c.ViewCode,
		Content:    c.Content,
		AccessType: string(c.AccessType),
		CreatedAt:  c.CreatedAt.UnixMicro(),
		UpdatedAt:  c.UpdatedAt.UnixMicro(),
		LastEditAt: c.LastEditAt.UnixMicro(),
	}
	if c.ExpiryAt != nil {
		row.ExpiryAt = sql.NullInt64{Int64: c.ExpiryAt.UnixMicro(), Valid: true}
	}
	return row
}

// ScanTargets lists the row fields in column order for database/sql Scan
func (d *ClipboardSQLite) ScanTargets() []any {
	return []any{
		&d.ID, &d.ShareCode, &d.ViewCode, &d.Content, &d.AccessType,
		&d.ExpiryAt, &d.CreatedAt, &d.UpdatedAt, &d.LastEditAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
