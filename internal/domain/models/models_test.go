package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccessType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    AccessType
		wantErr bool
	}{
		{name: "empty defaults to edit", in: "", want: AccessEdit},
		{name: "edit", in: "edit", want: AccessEdit},
		{name: "view", in: "view", want: AccessView},
		{name: "private", in: "private", want: AccessPrivate},
		{name: "unknown", in: "public", wantErr: true},
		{name: "case sensitive", in: "Edit", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccessType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClipboard_IsExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Second)

	assert.False(t, Clipboard{}.IsExpired(now), "nil expiry never expires")
	assert.True(t, Clipboard{ExpiryAt: &past}.IsExpired(now))
	assert.True(t, Clipboard{ExpiryAt: &now}.IsExpired(now), "expiry equal to now is expired")
	assert.False(t, Clipboard{ExpiryAt: &future}.IsExpired(now))
}

func TestClipboard_DisclosedCodes(t *testing.T) {
	tests := []struct {
		name      string
		access    AccessType
		wantShare bool
		wantView  bool
	}{
		{name: "edit discloses share code only", access: AccessEdit, wantShare: true},
		{name: "view discloses view code only", access: AccessView, wantView: true},
		{name: "private discloses nothing", access: AccessPrivate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Clipboard{ShareCode: "1234#", ViewCode: "12345", AccessType: tt.access}

			share := c.DisclosedShareCode()
			view := c.DisclosedViewCode()

			if tt.wantShare {
				require.NotNil(t, share)
				assert.Equal(t, "1234#", *share)
			} else {
				assert.Nil(t, share)
			}

			if tt.wantView {
				require.NotNil(t, view)
				assert.Equal(t, "12345", *view)
			} else {
				assert.Nil(t, view)
			}
		})
	}
}
