package getRSVPs

import (
	"context"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RSVPsResponse struct {
	response.Response
	RSVPs  []models.RSVPRecord `json:"rsvps"`
	Counts models.RSVPCounts   `json:"counts"`
	Total  int                 `json:"total"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPGetter
type RSVPGetter interface {
	EventRSVPs(ctx context.Context, eventID, creatorID string) (*planner.RSVPSummary, error)
}

// New serves GET /events/{id}/rsvps?creator=<pubkey>.
func New(log *slog.Logger, getter RSVPGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.getRSVPs.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		creatorID := r.URL.Query().Get("creator")
		if eventID == "" || creatorID == "" {
			log.Error("event id and creator are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id and creator are required"))
			return
		}

		summary, err := getter.EventRSVPs(r.Context(), eventID, creatorID)
		if err != nil {
			log.Error("failed to get rsvps", slog.String("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rsvps"))
			return
		}

		if summary == nil {
			summary = &planner.RSVPSummary{}
		}

		rsvps := summary.RSVPs
		if rsvps == nil {
			rsvps = []models.RSVPRecord{}
		}

		log.Info("rsvps retrieved", slog.String("event_id", eventID), slog.Int("count", len(rsvps)))

		render.JSON(w, r, RSVPsResponse{
			Response: response.OK(),
			RSVPs:    rsvps,
			Counts:   summary.Counts,
			Total:    summary.Counts.Total(),
		})
	}
}
