package get_by_view_code

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
	GetByViewCode(ctx context.Context, viewCode string) (models.Clipboard, error)
}

func HandlerGetByViewCode(svc ServiceClipboard, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := mux.Vars(r)["code"]

		clip, err := svc.GetByViewCode(r.Context(), code)
		if err != nil {
			httputils.WriteServiceError(w, log, err, httputils.MsgNotFound)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.ReadOnlyResponseFromDomain(clip))
	}
}
