package httputils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"clipshare/internal/domain/models"

	"github.com/rs/zerolog"
)

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderVary            = "Vary"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"

	MaxBodyBytes = 1 << 20
)

const (
	MsgContentRequired   = "Content is required"
	MsgShareCodeRequired = "Share code is required"
	MsgInvalidBody       = "Invalid request body"
	MsgNotFound          = "Clipboard not found"
	MsgNotFoundOrDenied  = "Clipboard not found or access denied"
	MsgExpired           = "Clipboard has expired"
	MsgUnavailable       = "Could not allocate clipboard codes, try again"
	MsgInternal          = "internal server error"
)

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, struct {
		Error string `json:"error"`
	}{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// DecodeJSON reads a size-capped JSON body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// WriteServiceError maps a service error onto its status code and public message.
// notFoundMsg lets the id-addressed routes hide whether the id or the code was wrong.
func WriteServiceError(w http.ResponseWriter, log *zerolog.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, models.ErrInvalidData):
		WriteJSONError(w, http.StatusBadRequest, invalidMessage(err))
	case errors.Is(err, models.ErrUnfound), errors.Is(err, models.ErrAccessDenied):
		WriteJSONError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, models.ErrGone):
		WriteJSONError(w, http.StatusGone, MsgExpired)
	case errors.Is(err, models.ErrCodeCollision):
		WriteJSONError(w, http.StatusServiceUnavailable, MsgUnavailable)
	default:
		if log != nil {
			log.Error().Err(err).Msg("request failed")
		}
		WriteJSONError(w, http.StatusInternalServerError, MsgInternal)
	}
}

// invalidMessage drops the sentinel prefix: "invalid input data: content is required" -> "content is required".
func invalidMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, models.ErrInvalidData.Error()+": "); ok {
		return rest
	}
	return msg
}
