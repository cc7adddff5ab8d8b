package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"clipshare/internal/config"
	"clipshare/internal/http/dto"
	"clipshare/internal/repository/inmemory"
	"clipshare/internal/services/clipboard"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *steppingClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type apiClient struct {
	t    *testing.T
	base string
}

func (c apiClient) do(method, path string, body any, out any) int {
	c.t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&payload).Encode(body))
	}

	req, err := http.NewRequest(method, c.base+path, &payload)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func startService(t *testing.T) (apiClient, *steppingClock) {
	t.Helper()

	clock := &steppingClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	storage := inmemory.NewStorage()
	svc := clipboard.NewServiceClipboard(storage, clipboard.WithClock(clock.Now))

	log := zerolog.Nop()
	s, err := NewServer(&log, config.Config{ServerAddress: "localhost:0"}, svc)
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return apiClient{t: t, base: ts.URL}, clock
}

func TestServer_EditLifecycle(t *testing.T) {
	api, clock := startService(t)

	var created dto.CreateClipboardResponse
	status := api.do(http.MethodPost, "/api/clipboard", dto.CreateClipboardRequest{Content: "hello", AccessType: "edit"}, &created)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, created.ShareCode)
	assert.Nil(t, created.ViewCode)
	require.NotNil(t, created.ExpiryAt)
	assert.Equal(t, 30*time.Minute, created.ExpiryAt.Sub(clock.Now()))

	sharePath := "/api/clipboard/share/" + url.PathEscape(*created.ShareCode)

	var got dto.EditClipboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, sharePath, nil, &got))
	assert.Equal(t, "hello", got.Content)
	assert.True(t, got.IsEditable)

	clock.Advance(time.Minute)
	var updated dto.UpdateClipboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/clipboard/"+created.ID,
		dto.UpdateClipboardRequest{Content: "world", ShareCode: *created.ShareCode}, &updated))
	assert.Equal(t, "world", updated.Content)
	assert.True(t, updated.UpdatedAt.After(got.UpdatedAt))

	require.Equal(t, http.StatusOK, api.do(http.MethodGet, sharePath, nil, &got))
	assert.Equal(t, "world", got.Content)

	var errResp dto.ErrorResponse
	wrongCode := "0000#"
	if *created.ShareCode == wrongCode {
		wrongCode = "0001#"
	}
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/clipboard/"+created.ID,
		dto.DeleteClipboardRequest{ShareCode: wrongCode}, &errResp))
	assert.Equal(t, "Clipboard not found or access denied", errResp.Error)

	var unknownResp dto.ErrorResponse
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/clipboard/5d7b0d7e-0000-4000-8000-000000000000",
		dto.DeleteClipboardRequest{ShareCode: *created.ShareCode}, &unknownResp))
	assert.Equal(t, errResp, unknownResp, "wrong code and unknown id look the same")

	var deleted dto.MessageResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/api/clipboard/"+created.ID,
		dto.DeleteClipboardRequest{ShareCode: *created.ShareCode}, &deleted))
	assert.Equal(t, "Clipboard deleted successfully", deleted.Message)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, sharePath, nil, nil))
}

func TestServer_ExpiredEditClipboard(t *testing.T) {
	api, clock := startService(t)

	hours := 1.0
	var created dto.CreateClipboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/clipboard/",
		dto.CreateClipboardRequest{Content: "soon gone", ExpiryHours: &hours}, &created))
	require.NotNil(t, created.ShareCode)

	clock.Advance(time.Hour)

	sharePath := "/api/clipboard/share/" + url.PathEscape(*created.ShareCode)
	var errResp dto.ErrorResponse
	assert.Equal(t, http.StatusGone, api.do(http.MethodGet, sharePath, nil, &errResp))
	assert.Equal(t, "Clipboard has expired", errResp.Error)

	assert.Equal(t, http.StatusGone, api.do(http.MethodPut, "/api/clipboard/"+created.ID,
		dto.UpdateClipboardRequest{Content: "late", ShareCode: *created.ShareCode}, nil))

	assert.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/api/clipboard/"+created.ID,
		dto.DeleteClipboardRequest{ShareCode: *created.ShareCode}, nil), "expired records can still be deleted")
}

func TestServer_ViewAndPrivate(t *testing.T) {
	api, _ := startService(t)

	var view dto.CreateClipboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/clipboard",
		dto.CreateClipboardRequest{Content: "read me", AccessType: "view"}, &view))
	assert.Nil(t, view.ShareCode)
	require.NotNil(t, view.ViewCode)
	assert.Nil(t, view.ExpiryAt)

	var got dto.ReadOnlyClipboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/clipboard/view/"+*view.ViewCode, nil, &got))
	assert.Equal(t, "read me", got.Content)
	assert.False(t, got.IsEditable)
	assert.Equal(t, "view", got.AccessType)

	var private dto.CreateClipboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/clipboard",
		dto.CreateClipboardRequest{Content: "secret", AccessType: "private"}, &private))
	assert.Nil(t, private.ShareCode)
	assert.Nil(t, private.ViewCode)
	assert.Nil(t, private.ExpiryAt)
	assert.NotEmpty(t, private.ID)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/clipboard",
		dto.CreateClipboardRequest{Content: "x", AccessType: "public"}, nil))
}
