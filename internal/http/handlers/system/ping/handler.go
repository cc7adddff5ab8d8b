package ping

import (
	"context"
	"net/http"

	"clipshare/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceClipboard interface {
	PingDataBase(ctx context.Context) error
}

func HandlerPing(svc ServiceClipboard, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PingDataBase(r.Context()); err != nil {
			log.Error().Err(err).Msg("storage ping failed")
			httputils.WriteJSONError(w, http.StatusInternalServerError, httputils.MsgInternal)
			return
		}

		w.Header().Set(httputils.HeaderContentType, httputils.MIMETextPlain)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
