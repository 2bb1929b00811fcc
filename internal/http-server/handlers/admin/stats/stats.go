package stats

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/response"
	"debaren/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type StatsResponse struct {
	response.Response
	Stats *models.Stats `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

func New(log *slog.Logger, provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.stats.New"

		log := log.With(slog.String("op", op))

		stats, err := provider.Stats(r.Context())
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get stats")
			return
		}

		render.JSON(w, r, StatsResponse{
			Response: response.OK(),
			Stats:    stats,
		})
	}
}
