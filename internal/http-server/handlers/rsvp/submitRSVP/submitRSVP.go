package submitRSVP

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
	models.RSVP
	CreatorID string `json:"creatorId" validate:"required"`
}

type Response struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPSubmitter
type RSVPSubmitter interface {
	SubmitRSVP(ctx context.Context, eventID, creatorID string, rsvp models.RSVP) error
}

func New(log *slog.Logger, submitter RSVPSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.submitRSVP.New"

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

		if err := submitter.SubmitRSVP(r.Context(), eventID, req.CreatorID, req.RSVP); err != nil {
			log.Error("failed to submit rsvp", slog.String("event_id", eventID), sl.Err(err))

			switch {
			case errors.Is(err, planner.ErrUnauthenticated):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user not logged in"))
			case errors.Is(err, planner.ErrInvalidRSVP):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid rsvp"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit rsvp"))
			}
			return
		}

		log.Info("rsvp submitted", slog.String("event_id", eventID), slog.String("status", string(req.Status)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  planner.RSVPStatusMessage(req.Status),
		})
	}
}
