package updateEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/http-server/handlers/event/createEvent"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	CurrentUser() (pubkey string, ok bool)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, data models.EventData, coHosts []string) error
}

// New serves PUT /events/{id}. The stored event is replaced as a whole, so
// only its creator may do it.
func New(log *slog.Logger, updater EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", id))

		var req createEvent.EventRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if msg, ok := createEvent.CheckDates(req.EventData); !ok {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(msg))
			return
		}

		pubkey, ok := updater.CurrentUser()
		if !ok {
			log.Error("update without a user")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("user not logged in"))
			return
		}

		existing, err := updater.GetEvent(r.Context(), id)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))

			if errors.Is(err, planner.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		if existing.Pubkey != pubkey {
			log.Error("update by someone other than the creator", slog.String("creator", existing.Pubkey))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("only the event creator can edit the event"))
			return
		}

		if err := updater.UpdateEvent(r.Context(), id, req.EventData, req.CoHosts); err != nil {
			log.Error("failed to update event", sl.Err(err))

			if errors.Is(err, planner.ErrUnauthenticated) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user not logged in"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))
			return
		}

		log.Info("event updated")

		render.JSON(w, r, createEvent.EventResponse{
			Response: response.OK(),
			EventID:  id,
		})
	}
}
