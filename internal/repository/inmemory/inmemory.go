package inmemory

import (
	"context"
	"crypto/subtle"
	"sort"
	"sync"
	"time"

	"clipshare/internal/domain/models"
)

// InmemoryStorage keeps clipboards in three indexes guarded by one lock,
// so both code uniqueness checks and the insert happen atomically.
type InmemoryStorage struct {
	mu      sync.RWMutex
	byID    map[string]models.Clipboard
	byShare map[string]string // share code -> id
	byView  map[string]string // view code -> id
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		byID:    make(map[string]models.Clipboard),
		byShare: make(map[string]string),
		byView:  make(map[string]string),
	}
}

func (m *InmemoryStorage) ClipboardCreate(ctx context.Context, clip models.Clipboard) (models.Clipboard, error) {
	if err := ctx.Err(); err != nil {
		return models.Clipboard{}, err
	}

	if clip.ID == "" || clip.ShareCode == "" || clip.ViewCode == "" {
		return models.Clipboard{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[clip.ID]; exists {
		return models.Clipboard{}, models.ErrConflict
	}
	if _, exists := m.byShare[clip.ShareCode]; exists {
		return models.Clipboard{}, models.ErrConflict
	}
	if _, exists := m.byView[clip.ViewCode]; exists {
		return models.Clipboard{}, models.ErrConflict
	}

	m.byID[clip.ID] = clip
	m.byShare[clip.ShareCode] = clip.ID
	m.byView[clip.ViewCode] = clip.ID
	return clip, nil
}

func (m *InmemoryStorage) ClipboardGetByID(ctx context.Context, id string) (models.Clipboard, error) {
	if err := ctx.Err(); err != nil {
		return models.Clipboard{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	clip, exists := m.byID[id]
	if !exists {
		return models.Clipboard{}, models.ErrUnfound
	}
	return clip, nil
}

func (m *InmemoryStorage) ClipboardGetByShareCode(ctx context.Context, shareCode string) (models.Clipboard, error) {
	if err := ctx.Err(); err != nil {
		return models.Clipboard{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.lookup(m.byShare, shareCode)
}

func (m *InmemoryStorage) ClipboardGetByViewCode(ctx context.Context, viewCode string) (models.Clipboard, error) {
	if err := ctx.Err(); err != nil {
		return models.Clipboard{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.lookup(m.byView, viewCode)
}

// ClipboardUpdateContent writes only when id and share code still match and
// the record has not expired at the given moment.
func (m *InmemoryStorage) ClipboardUpdateContent(ctx context.Context, id, shareCode, content string, at time.Time) (models.Clipboard, error) {
	if err := ctx.Err(); err != nil {
		return models.Clipboard{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clip, exists := m.byID[id]
	if !exists || !codesMatch(clip.ShareCode, shareCode) || clip.IsExpired(at) {
		return models.Clipboard{}, models.ErrUnfound
	}

	clip.Content = content
	clip.UpdatedAt = at
	clip.LastEditAt = at
	m.byID[id] = clip
	return clip, nil
}

func (m *InmemoryStorage) ClipboardDelete(ctx context.Context, id, shareCode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clip, exists := m.byID[id]
	if !exists || !codesMatch(clip.ShareCode, shareCode) {
		return models.ErrUnfound
	}

	m.remove(clip)
	return nil
}

func (m *InmemoryStorage) ClipboardDeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for _, clip := range m.byID {
		if clip.IsExpired(before) {
			m.remove(clip)
			removed++
		}
	}
	return removed, nil
}

// ClipboardList returns every stored record ordered by creation time.
func (m *InmemoryStorage) ClipboardList(ctx context.Context) ([]models.Clipboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	clips := make([]models.Clipboard, 0, len(m.byID))
	for _, clip := range m.byID {
		clips = append(clips, clip)
	}
	m.mu.RUnlock()

	sort.Slice(clips, func(i, j int) bool {
		if clips[i].CreatedAt.Equal(clips[j].CreatedAt) {
			return clips[i].ID < clips[j].ID
		}
		return clips[i].CreatedAt.Before(clips[j].CreatedAt)
	})
	return clips, nil
}

func (m *InmemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.byID = make(map[string]models.Clipboard)
	m.byShare = make(map[string]string)
	m.byView = make(map[string]string)
	return nil
}

func (m *InmemoryStorage) lookup(index map[string]string, code string) (models.Clipboard, error) {
	id, exists := index[code]
	if !exists {
		return models.Clipboard{}, models.ErrUnfound
	}
	return m.byID[id], nil
}

func (m *InmemoryStorage) remove(clip models.Clipboard) {
	delete(m.byID, clip.ID)
	delete(m.byShare, clip.ShareCode)
	delete(m.byView, clip.ViewCode)
}

func codesMatch(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
