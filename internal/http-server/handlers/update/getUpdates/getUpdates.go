package getUpdates

import (
	"context"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type UpdatesResponse struct {
	response.Response
	Updates []models.Update `json:"updates"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UpdateGetter
type UpdateGetter interface {
	EventUpdates(ctx context.Context, eventID string) ([]models.Update, error)
}

func New(log *slog.Logger, getter UpdateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.update.getUpdates.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		updates, err := getter.EventUpdates(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event updates", slog.String("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event updates"))
			return
		}

		if updates == nil {
			updates = []models.Update{}
		}

		log.Info("event updates retrieved", slog.String("event_id", eventID), slog.Int("count", len(updates)))

		render.JSON(w, r, UpdatesResponse{
			Response: response.OK(),
			Updates:  updates,
		})
	}
}
