package listRelays

import (
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/relay"

	"github.com/go-chi/render"
)

type RelaysResponse struct {
	response.Response
	Current   string         `json:"current"`
	Connected bool           `json:"connected"`
	Presets   []relay.Preset `json:"presets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RelayInfo
type RelayInfo interface {
	URL() string
	Connected() bool
	Presets() []relay.Preset
}

func New(log *slog.Logger, info RelayInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.relay.listRelays.New"

		log := log.With(slog.String("op", op))

		presets := info.Presets()
		if presets == nil {
			presets = []relay.Preset{}
		}

		current := info.URL()

		log.Debug("relay info requested", slog.String("url", current))

		render.JSON(w, r, RelaysResponse{
			Response:  response.OK(),
			Current:   current,
			Connected: info.Connected(),
			Presets:   presets,
		})
	}
}
