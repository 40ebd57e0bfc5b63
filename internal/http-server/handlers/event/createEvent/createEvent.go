package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	models.EventData
	CoHosts []string `json:"coHosts,omitempty" validate:"omitempty,dive,len=64,hexadecimal"`
}

type EventResponse struct {
	response.Response
	EventID string `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, data models.EventData, coHosts []string) (string, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("title", req.Title))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if msg, ok := CheckDates(req.EventData); !ok {
			log.Error("invalid dates", slog.String("start", req.StartDate), slog.String("end", req.EndDate))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(msg))

			return
		}

		eventID, err := event.CreateEvent(r.Context(), req.EventData, req.CoHosts)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))

			if errors.Is(err, planner.ErrUnauthenticated) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user not logged in"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.String("id", eventID))

		responseOK(w, r, eventID)
	}
}

// CheckDates makes sure startDate parses and endDate, when set, parses and
// does not precede it.
func CheckDates(data models.EventData) (string, bool) {
	start, ok := models.ParseTime(data.StartDate)
	if !ok {
		return "field StartDate is not a valid date", false
	}

	if data.EndDate == "" {
		return "", true
	}

	end, ok := models.ParseTime(data.EndDate)
	if !ok {
		return "field EndDate is not a valid date", false
	}
	if end.Before(start) {
		return "field EndDate must not be before StartDate", false
	}

	return "", true
}

func responseOK(w http.ResponseWriter, r *http.Request, eventID string) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventID:  eventID,
	})
}
