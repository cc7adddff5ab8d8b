package dto

import (
	"time"

	"clipshare/internal/domain/models"
)

// Request
type (
	CreateClipboardRequest struct {
		Content     string   `json:"content"`
		AccessType  string   `json:"accessType"`
		ExpiryHours *float64 `json:"expiryHours"`
	}

	UpdateClipboardRequest struct {
		Content   string `json:"content"`
		ShareCode string `json:"shareCode"`
	}

	DeleteClipboardRequest struct {
		ShareCode string `json:"shareCode"`
	}
)

// Response
type (
	CreateClipboardResponse struct {
		ID         string     `json:"id"`
		ShareCode  *string    `json:"shareCode"`
		ViewCode   *string    `json:"viewCode"`
		AccessType string     `json:"accessType"`
		ExpiryAt   *time.Time `json:"expiryAt"`
		Message    string     `json:"message"`
	}

	// EditClipboardResponse is what a share code holder sees.
	EditClipboardResponse struct {
		ID         string     `json:"id"`
		Content    string     `json:"content"`
		ShareCode  string     `json:"shareCode"`
		CreatedAt  time.Time  `json:"createdAt"`
		UpdatedAt  time.Time  `json:"updatedAt"`
		LastEditAt time.Time  `json:"lastEditAt"`
		ExpiryAt   *time.Time `json:"expiryAt"`
		IsEditable bool       `json:"isEditable"`
	}

	// ReadOnlyClipboardResponse never carries the share code.
	ReadOnlyClipboardResponse struct {
		ID         string     `json:"id"`
		Content    string     `json:"content"`
		ViewCode   string     `json:"viewCode"`
		AccessType string     `json:"accessType"`
		CreatedAt  time.Time  `json:"createdAt"`
		UpdatedAt  time.Time  `json:"updatedAt"`
		LastEditAt time.Time  `json:"lastEditAt"`
		ExpiryAt   *time.Time `json:"expiryAt"`
		IsEditable bool       `json:"isEditable"`
	}

	UpdateClipboardResponse struct {
		Message    string    `json:"message"`
		Content    string    `json:"content"`
		UpdatedAt  time.Time `json:"updatedAt"`
		LastEditAt time.Time `json:"lastEditAt"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)

const (
	MsgCreated = "Clipboard created successfully"
	MsgUpdated = "Clipboard updated successfully"
	MsgDeleted = "Clipboard deleted successfully"
)

// Request → Domain
func (r *CreateClipboardRequest) ToDomain() models.CreateParams {
	return models.CreateParams{
		Content:     r.Content,
		AccessType:  r.AccessType,
		ExpiryHours: r.ExpiryHours,
	}
}

// Domain → Response
func CreateResponseFromDomain(c models.Clipboard) CreateClipboardResponse {
	return CreateClipboardResponse{
		ID:         c.ID,
		ShareCode:  c.DisclosedShareCode(),
		ViewCode:   c.DisclosedViewCode(),
		AccessType: string(c.AccessType),
		ExpiryAt:   c.ExpiryAt,
		Message:    MsgCreated,
	}
}

func EditResponseFromDomain(c models.Clipboard) EditClipboardResponse {
	return EditClipboardResponse{
		ID:         c.ID,
		Content:    c.Content,
		ShareCode:  c.ShareCode,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		LastEditAt: c.LastEditAt,
		ExpiryAt:   c.ExpiryAt,
		IsEditable: true,
	}
}

func ReadOnlyResponseFromDomain(c models.Clipboard) ReadOnlyClipboardResponse {
	return ReadOnlyClipboardResponse{
		ID:         c.ID,
		Content:    c.Content,
		ViewCode:   c.ViewCode,
		AccessType: string(c.AccessType),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		LastEditAt: c.LastEditAt,
		ExpiryAt:   c.ExpiryAt,
		IsEditable: false,
	}
}

func UpdateResponseFromDomain(c models.Clipboard) UpdateClipboardResponse {
	return UpdateClipboardResponse{
		Message:    MsgUpdated,
		Content:    c.Content,
		UpdatedAt:  c.UpdatedAt,
		LastEditAt: c.LastEditAt,
	}
}
