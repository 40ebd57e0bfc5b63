package getUserRSVP

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

type UserRSVPResponse struct {
	response.Response
	RSVP *models.RSVPRecord `json:"rsvp"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRSVPGetter
type UserRSVPGetter interface {
	UserRSVP(ctx context.Context, eventID, creatorID string) (*models.RSVPRecord, error)
}

// New serves GET /events/{id}/rsvp?creator=<pubkey>. rsvp is null when the
// current user has not answered or nobody is logged in.
func New(log *slog.Logger, getter UserRSVPGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.getUserRSVP.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		creatorID := r.URL.Query().Get("creator")
		if eventID == "" || creatorID == "" {
			log.Error("event id and creator are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id and creator are required"))
			return
		}

		rsvp, err := getter.UserRSVP(r.Context(), eventID, creatorID)
		if err != nil {
			log.Error("failed to get user rsvp", slog.String("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rsvp"))
			return
		}

		render.JSON(w, r, UserRSVPResponse{
			Response: response.OK(),
			RSVP:     rsvp,
		})
	}
}
