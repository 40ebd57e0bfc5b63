package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"eventPlanner/internal/codec"
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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ctx context.Context, opts planner.ListOptions) ([]models.Event, error)
}

// New serves GET /events?limit=&since=&until=&author=&tag=. since and until
// are unix seconds; author and tag repeat.
func New(log *slog.Logger, lister EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(slog.String("op", op))

		opts, err := ParseListOptions(r)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		events, err := lister.ListEvents(r.Context(), opts)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func ParseListOptions(r *http.Request) (planner.ListOptions, error) {
	q := r.URL.Query()

	var opts planner.ListOptions

	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		return opts, err
	}
	opts.Limit = int(limit)

	if opts.Since, err = intParam(q.Get("since"), "since"); err != nil {
		return opts, err
	}
	if opts.Until, err = intParam(q.Get("until"), "until"); err != nil {
		return opts, err
	}

	opts.Authors = q["author"]
	if tags := q["tag"]; len(tags) > 0 {
		opts.Tags = map[string][]string{codec.TagCategory: tags}
	}

	return opts, nil
}

func intParam(raw, name string) (int64, error) {
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, &paramError{name: name}
	}

	return v, nil
}

type paramError struct {
	name string
}

func (e *paramError) Error() string {
	return "invalid " + e.name + " parameter"
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
