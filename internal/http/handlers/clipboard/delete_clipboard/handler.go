package delete_clipboard

import (
	"context"
	"errors"
	"io"
	"net/http"

	"clipshare/internal/http/dto"
	"clipshare/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ServiceClipboard interface {
	Delete(ctx context.Context, id, shareCode string) error
}

func HandlerDeleteClipboard(svc ServiceClipboard, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		// an empty body is a missing share code, not a malformed request
		var req dto.DeleteClipboardRequest
		if err := httputils.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
			httputils.WriteJSONError(w, http.StatusBadRequest, httputils.MsgInvalidBody)
			return
		}

		if req.ShareCode == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, httputils.MsgShareCodeRequired)
			return
		}

		if err := svc.Delete(r.Context(), id, req.ShareCode); err != nil {
			httputils.WriteServiceError(w, log, err, httputils.MsgNotFoundOrDenied)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: dto.MsgDeleted})
	}
}
