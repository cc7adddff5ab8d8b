package update_clipboard

import (
	"context"
	"net/http"

	"clipshare/internal/domain/models"
	"clipshare/internal/http/dto"
	"clipshare/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ServiceClipboard interface {
	Update(ctx context.Context, id, shareCode, content string) (models.Clipboard, error)
}

func HandlerUpdateClipboard(svc ServiceClipboard, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req dto.UpdateClipboardRequest
		if err := httputils.DecodeJSON(w, r, &req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, httputils.MsgInvalidBody)
			return
		}

		if req.Content == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, httputils.MsgContentRequired)
			return
		}
		if req.ShareCode == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, httputils.MsgShareCodeRequired)
			return
		}

		clip, err := svc.Update(r.Context(), id, req.ShareCode, req.Content)
		if err != nil {
			httputils.WriteServiceError(w, log, err, httputils.MsgNotFoundOrDenied)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UpdateResponseFromDomain(clip))
	}
}
