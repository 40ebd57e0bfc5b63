package createUpdate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Content string `json:"content" validate:"required"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=announcement change cancellation"`
}

type Response struct {
	response.Response
	UpdateID string `json:"update_id"`
	Title    string `json:"title"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UpdatePoster
type UpdatePoster interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	PostUpdate(ctx context.Context, eventID, creatorID, content string, typ models.UpdateType) (string, error)
}

func New(log *slog.Logger, poster UpdatePoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.update.createUpdate.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		var req Request

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

		existing, err := poster.GetEvent(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event", slog.String("event_id", eventID), sl.Err(err))

			if errors.Is(err, planner.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		typ := models.NormalizeUpdateType(req.Type)

		// The creator comes from the stored event, never from the caller.
		id, err := poster.PostUpdate(r.Context(), eventID, existing.Pubkey, req.Content, typ)
		if err != nil {
			log.Error("failed to post update", slog.String("event_id", eventID), sl.Err(err))

			switch {
			case errors.Is(err, planner.ErrUnauthenticated):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user not logged in"))
			case errors.Is(err, planner.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the event creator can post updates"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to post update"))
			}
			return
		}

		log.Info("update posted", slog.String("event_id", eventID), slog.String("update_id", id))

		render.JSON(w, r, Response{
			Response: response.OK(),
			UpdateID: id,
			Title:    planner.UpdateTitle(typ),
		})
	}
}
