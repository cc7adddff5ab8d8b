package get_by_share_code

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
	GetByShareCode(ctx context.Context, shareCode string) (models.Clipboard, error)
}

// HandlerGetByShareCode serves GET /api/clipboard/share/{code}.
func HandlerGetByShareCode(svc ServiceClipboard, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := mux.Vars(r)["code"]

		clip, err := svc.GetByShareCode(r.Context(), code)
		if err != nil {
			httputils.WriteServiceError(w, log, err, httputils.MsgNotFound)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.EditResponseFromDomain(clip))
	}
}
