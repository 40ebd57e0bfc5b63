package getReminders

import (
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/notifier"

	"github.com/go-chi/render"
)

type RemindersResponse struct {
	response.Response
	Polling   bool            `json:"polling"`
	Reminders []RemindersItem `json:"reminders"`
}

type RemindersItem struct {
	notifier.Reminder
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReminderFeed
type ReminderFeed interface {
	Recent() []notifier.Reminder
	Polling() bool
}

// New serves GET /reminders: the reminders fired so far, newest first.
func New(log *slog.Logger, feed ReminderFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reminder.getReminders.New"

		log := log.With(slog.String("op", op))

		recent := feed.Recent()

		items := make([]RemindersItem, 0, len(recent))
		for _, rem := range recent {
			items = append(items, RemindersItem{
				Reminder: rem,
				Headline: rem.Headline(),
				Body:     rem.Body(),
			})
		}

		log.Debug("reminders listed", slog.Int("count", len(items)))

		render.JSON(w, r, RemindersResponse{
			Response:  response.OK(),
			Polling:   feed.Polling(),
			Reminders: items,
		})
	}
}
