package switchRelay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/relay"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	URL string `json:"url" validate:"required,url"`
}

type Response struct {
	response.Response
	Current string `json:"current"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RelaySwitcher
type RelaySwitcher interface {
	Switch(ctx context.Context, url string) error
}

// New serves PUT /relay. Only configured presets are accepted; cached reads
// are dropped by the switch hook.
func New(log *slog.Logger, switcher RelaySwitcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.relay.switchRelay.New"

		log := log.With(slog.String("op", op))

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

		if err := switcher.Switch(r.Context(), req.URL); err != nil {
			log.Error("failed to switch relay", slog.String("url", req.URL), sl.Err(err))

			switch {
			case errors.Is(err, relay.ErrUnknownRelay):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("relay is not one of the configured presets"))
			default:
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to connect to relay"))
			}
			return
		}

		log.Info("relay switched", slog.String("url", req.URL))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Current:  req.URL,
		})
	}
}
