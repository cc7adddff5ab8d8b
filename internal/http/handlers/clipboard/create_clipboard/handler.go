package create_clipboard

import (
	"context"
	"net/http"

	"clipshare/internal/domain/models"
	"clipshare/internal/http/dto"
	"clipshare/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceClipboard interface {
	Create(ctx context.Context, params models.CreateParams) (models.Clipboard, error)
}

func HandlerCreateClipboard(svc ServiceClipboard, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreateClipboardRequest
		if err := httputils.DecodeJSON(w, r, &req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, httputils.MsgInvalidBody)
			return
		}

		if req.Content == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, httputils.MsgContentRequired)
			return
		}

		clip, err := svc.Create(r.Context(), req.ToDomain())
		if err != nil {
			httputils.WriteServiceError(w, log, err, httputils.MsgNotFound)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.CreateResponseFromDomain(clip))
	}
}
