package models

import (
	"errors"
	"fmt"
	"time"
)

type AccessType string

const (
	AccessEdit    AccessType = "edit"
	AccessView    AccessType = "view"
	AccessPrivate AccessType = "private"
)

type (
	Clipboard struct {
		ID         string     `json:"id"`
		ShareCode  string     `json:"share_code"` // edit access, 1234#
		ViewCode   string     `json:"view_code"`  // read-only access, 12345
		Content    string     `json:"content"`
		AccessType AccessType `json:"access_type"`
		ExpiryAt   *time.Time `json:"expiry_at"` // nil - never expires
		CreatedAt  time.Time  `json:"created_at"`
		UpdatedAt  time.Time  `json:"updated_at"`
		LastEditAt time.Time  `json:"last_edit_at"`
	}

	CreateParams struct {
		Content     string
		AccessType  string
		ExpiryHours *float64
	}
)

var (
	ErrInvalidData   = errors.New("invalid input data")
	ErrUnfound       = errors.New("clipboard not found")
	ErrConflict      = errors.New("duplicate key")
	ErrCodeCollision = errors.New("code collision")
	ErrAccessDenied  = errors.New("access denied")
	ErrGone          = errors.New("clipboard has expired")
)

// ParseAccessType maps the wire value onto an AccessType. Empty means edit.
func ParseAccessType(s string) (AccessType, error) {
	switch AccessType(s) {
	case "":
		return AccessEdit, nil
	case AccessEdit, AccessView, AccessPrivate:
		return AccessType(s), nil
	}
	return "", fmt.Errorf("%w: unknown access type %q", ErrInvalidData, s)
}

// IsExpired reports whether the record is past its expiry at the given moment.
// Expiry is inclusive: a record whose ExpiryAt equals now is already gone.
func (c Clipboard) IsExpired(now time.Time) bool {
	if c.ExpiryAt == nil {
		return false
	}
	return !c.ExpiryAt.After(now)
}

// DisclosedShareCode is the share code handed back to the creator, only for edit records.
func (c Clipboard) DisclosedShareCode() *string {
	if c.AccessType != AccessEdit {
		return nil
	}
	code := c.ShareCode
	return &code
}

// DisclosedViewCode is the view code handed back to the creator, only for view records.
func (c Clipboard) DisclosedViewCode() *string {
	if c.AccessType != AccessView {
		return nil
	}
	code := c.ViewCode
	return &code
}
