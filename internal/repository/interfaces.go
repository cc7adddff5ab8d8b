package repository

import (
	"context"
	"time"

	"clipshare/internal/domain/models"
)

// Storage - the clipboard store every backend implements
type (
	Storage interface {
		// CRUD
		ClipboardCreate(ctx context.Context, clip models.Clipboard) (models.Clipboard, error)
		ClipboardGetByID(ctx context.Context, id string) (models.Clipboard, error)
		ClipboardGetByShareCode(ctx context.Context, shareCode string) (models.Clipboard, error)
		ClipboardGetByViewCode(ctx context.Context, viewCode string) (models.Clipboard, error)
		ClipboardUpdateContent(ctx context.Context, id, shareCode, content string, at time.Time) (models.Clipboard, error)
		ClipboardDelete(ctx context.Context, id, shareCode string) error

		// Expiry
		ClipboardDeleteExpired(ctx context.Context, before time.Time) (int64, error)

		// Connection
		Ping(ctx context.Context) error
		Close() error
	}
)
