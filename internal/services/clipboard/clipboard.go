package clipboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clipshare/internal/domain/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

/*
ClipboardStorage - the keyed store behind the service. Implementations keep
both code columns unique and report a duplicate as models.ErrConflict.
*/

//go:generate mockgen -source=clipboard.go -destination=../../mocks/mock_clipboard_storage.go -package=mocks
type ClipboardStorage interface {
	ClipboardCreate(ctx context.Context, clip models.Clipboard) (models.Clipboard, error)
	ClipboardGetByID(ctx context.Context, id string) (models.Clipboard, error)
	ClipboardGetByShareCode(ctx context.Context, shareCode string) (models.Clipboard, error)
	ClipboardGetByViewCode(ctx context.Context, viewCode string) (models.Clipboard, error)
	ClipboardUpdateContent(ctx context.Context, id, shareCode, content string, at time.Time) (models.Clipboard, error)
	ClipboardDelete(ctx context.Context, id, shareCode string) error
	ClipboardDeleteExpired(ctx context.Context, before time.Time) (int64, error)
	Ping(ctx context.Context) error
}

const (
	DefaultMaxCreateAttempts = 5
	DefaultEditTTL           = 30 * time.Minute

	// keeps hours→Duration conversion away from int64 overflow
	maxEditTTL = 10 * 365 * 24 * time.Hour
)

// Service implements the clipboard lifecycle: code generation, access gating and expiry.
type Service struct {
	storage     ClipboardStorage
	log         zerolog.Logger
	now         func() time.Time
	maxAttempts int
	editTTL     time.Duration
}

type Option func(*Service)

func WithLogger(log *zerolog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = *log
		}
	}
}

// WithClock replaces time.Now, tests use it to pin expiry arithmetic.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithMaxCreateAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithDefaultEditTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.editTTL = ttl
		}
	}
}

func NewServiceClipboard(storage ClipboardStorage, opts ...Option) *Service {
	s := &Service{
		storage:     storage,
		log:         zerolog.Nop(),
		now:         time.Now,
		maxAttempts: DefaultMaxCreateAttempts,
		editTTL:     DefaultEditTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores new content under a fresh pair of codes. A collision on either
// code regenerates both and tries again, at most maxAttempts times.
func (s *Service) Create(ctx context.Context, params models.CreateParams) (models.Clipboard, error) {
	if params.Content == "" {
		return models.Clipboard{}, fmt.Errorf("%w: content is required", models.ErrInvalidData)
	}

	accessType, err := models.ParseAccessType(params.AccessType)
	if err != nil {
		return models.Clipboard{}, err
	}

	now := s.currentTime()
	expiryAt := s.expiryFor(accessType, params.ExpiryHours, now)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		clip := models.Clipboard{
			ID:         uuid.NewString(),
			ShareCode:  generateShareCode(),
			ViewCode:   generateViewCode(),
			Content:    params.Content,
			AccessType: accessType,
			ExpiryAt:   expiryAt,
			CreatedAt:  now,
			UpdatedAt:  now,
			LastEditAt: now,
		}

		created, err := s.storage.ClipboardCreate(ctx, clip)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, models.ErrConflict) {
			return models.Clipboard{}, fmt.Errorf("failed to create clipboard: %w", err)
		}

		s.log.Debug().
			Int("attempt", attempt).
			Msg("code collision, regenerating codes")
	}

	s.log.Warn().Int("attempts", s.maxAttempts).Msg("code space exhausted for create")
	return models.Clipboard{}, fmt.Errorf("%w: no free codes after %d attempts", models.ErrCodeCollision, s.maxAttempts)
}

// GetByShareCode returns the edit-mode view of a live record.
func (s *Service) GetByShareCode(ctx context.Context, shareCode string) (models.Clipboard, error) {
	if shareCode == "" {
		return models.Clipboard{}, models.ErrUnfound
	}

	clip, err := s.storage.ClipboardGetByShareCode(ctx, shareCode)
	if err != nil {
		return models.Clipboard{}, wrapLookupError(err)
	}

	if clip.IsExpired(s.currentTime()) {
		return models.Clipboard{}, models.ErrGone
	}
	return clip, nil
}

// GetByViewCode returns the read-only view of a live record.
func (s *Service) GetByViewCode(ctx context.Context, viewCode string) (models.Clipboard, error) {
	if viewCode == "" {
		return models.Clipboard{}, models.ErrUnfound
	}

	clip, err := s.storage.ClipboardGetByViewCode(ctx, viewCode)
	if err != nil {
		return models.Clipboard{}, wrapLookupError(err)
	}

	if clip.IsExpired(s.currentTime()) {
		return models.Clipboard{}, models.ErrGone
	}
	return clip, nil
}

// Update replaces the content of a live record. Both id and share code must match.
func (s *Service) Update(ctx context.Context, id, shareCode, content string) (models.Clipboard, error) {
	if content == "" {
		return models.Clipboard{}, fmt.Errorf("%w: content is required", models.ErrInvalidData)
	}
	if shareCode == "" {
		return models.Clipboard{}, fmt.Errorf("%w: share code is required", models.ErrInvalidData)
	}

	clip, err := s.authorize(ctx, id, shareCode)
	if err != nil {
		return models.Clipboard{}, err
	}

	now := s.currentTime()
	if clip.IsExpired(now) {
		return models.Clipboard{}, models.ErrGone
	}

	// updatedAt must move forward even when the clock did not
	if !now.After(clip.UpdatedAt) {
		now = clip.UpdatedAt.Add(time.Microsecond)
	}

	updated, err := s.storage.ClipboardUpdateContent(ctx, id, shareCode, content, now)
	if err != nil {
		return models.Clipboard{}, wrapLookupError(err)
	}
	return updated, nil
}

// Delete removes a record. Expired records may still be deleted by the code holder.
func (s *Service) Delete(ctx context.Context, id, shareCode string) error {
	if shareCode == "" {
		return fmt.Errorf("%w: share code is required", models.ErrInvalidData)
	}

	if _, err := s.authorize(ctx, id, shareCode); err != nil {
		return err
	}

	if err := s.storage.ClipboardDelete(ctx, id, shareCode); err != nil {
		return wrapLookupError(err)
	}
	return nil
}

// SweepExpired physically removes every record whose expiry has passed.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := s.storage.ClipboardDeleteExpired(ctx, s.currentTime())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired clipboards: %w", err)
	}
	return removed, nil
}

// PingDataBase checks the storage connection
func (s *Service) PingDataBase(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *Service) authorize(ctx context.Context, id, shareCode string) (models.Clipboard, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Clipboard{}, models.ErrUnfound
	}

	clip, err := s.storage.ClipboardGetByID(ctx, id)
	if err != nil {
		return models.Clipboard{}, wrapLookupError(err)
	}

	if !codesEqual(clip.ShareCode, shareCode) {
		return models.Clipboard{}, models.ErrAccessDenied
	}
	return clip, nil
}

func (s *Service) expiryFor(accessType models.AccessType, expiryHours *float64, now time.Time) *time.Time {
	if accessType != models.AccessEdit {
		return nil
	}

	ttl := s.editTTL
	if expiryHours != nil && *expiryHours > 0 {
		if hours := *expiryHours * float64(time.Hour); hours < float64(maxEditTTL) {
			ttl = time.Duration(hours)
		} else {
			ttl = maxEditTTL
		}
	}

	expiryAt := now.Add(ttl)
	return &expiryAt
}

// currentTime is UTC with microsecond precision so values survive SQL round-trips unchanged.
func (s *Service) currentTime() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func wrapLookupError(err error) error {
	if errors.Is(err, models.ErrUnfound) {
		return models.ErrUnfound
	}
	return fmt.Errorf("storage failure: %w", err)
}
