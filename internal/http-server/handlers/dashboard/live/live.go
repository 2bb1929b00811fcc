// Package live upgrades admin dashboard connections to the event websocket.
package live

import (
	"debaren/internal/http-server/middleware/mwauth"
	"debaren/internal/lib/logger/sl"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Subscriber
type Subscriber interface {
	Serve(w http.ResponseWriter, r *http.Request, subject string) error
}

func New(log *slog.Logger, hub Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.live.New"

		log := log.With(slog.String("op", op))

		subject := mwauth.Subject(r.Context())

		// A failed upgrade has already answered the client.
		if err := hub.Serve(w, r, subject); err != nil {
			log.Warn("failed to attach dashboard client", slog.String("subject", subject), sl.Err(err))
		}
	}
}
