// Package eventViews serves the read-only views built on top of the upcoming
// and past listings: the two lists themselves, the tag cloud and the map.
package eventViews

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

type TagsResponse struct {
	response.Response
	Tags []string `json:"tags"`
}

type MapResponse struct {
	response.Response
	planner.MapView
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ViewLister
type ViewLister interface {
	UpcomingEvents(ctx context.Context, v planner.ViewOptions) ([]models.Event, error)
	PastEvents(ctx context.Context, v planner.ViewOptions) ([]models.Event, error)
}

type listFunc func(ctx context.Context, v planner.ViewOptions) ([]models.Event, error)

// NewUpcoming serves GET /events/upcoming?limit=&author=&tag=&q=.
func NewUpcoming(log *slog.Logger, lister ViewLister) http.HandlerFunc {
	return newList(log, "handlers.event.eventViews.NewUpcoming", lister.UpcomingEvents)
}

// NewPast serves GET /events/past with the same parameters as NewUpcoming.
func NewPast(log *slog.Logger, lister ViewLister) http.HandlerFunc {
	return newList(log, "handlers.event.eventViews.NewPast", lister.PastEvents)
}

func newList(log *slog.Logger, op string, list listFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With(slog.String("op", op))

		q := r.URL.Query()

		v := planner.ViewOptions{
			Authors: q["author"],
			Tags:    q["tag"],
		}

		if raw := q.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				log.Error("invalid limit", slog.String("limit", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid limit parameter"))
				return
			}
			v.Limit = limit
		}

		events, err := list(r.Context(), v)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		events = planner.SearchEvents(events, q.Get("q"), nil)

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}

// NewTags serves GET /events/tags: every category used by upcoming or past
// events, sorted.
func NewTags(log *slog.Logger, lister ViewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventViews.NewTags"

		log := log.With(slog.String("op", op))

		upcoming, err := lister.UpcomingEvents(r.Context(), planner.ViewOptions{})
		if err != nil {
			log.Error("failed to get upcoming events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tags"))
			return
		}

		past, err := lister.PastEvents(r.Context(), planner.ViewOptions{})
		if err != nil {
			log.Error("failed to get past events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tags"))
			return
		}

		render.JSON(w, r, TagsResponse{
			Response: response.OK(),
			Tags:     planner.AllTags(upcoming, past),
		})
	}
}

// NewMap serves GET /events/map?q=&tag=: upcoming events that carry
// coordinates and the point to center on.
func NewMap(log *slog.Logger, lister ViewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventViews.NewMap"

		log := log.With(slog.String("op", op))

		events, err := lister.UpcomingEvents(r.Context(), planner.ViewOptions{})
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		q := r.URL.Query()
		view := planner.BuildMapView(planner.SearchEvents(events, q.Get("q"), q["tag"]))

		log.Info("map view built", slog.Int("count", len(view.Events)))

		render.JSON(w, r, MapResponse{
			Response: response.OK(),
			MapView:  view,
		})
	}
}
