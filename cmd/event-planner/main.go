package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventPlanner/internal/cache"
	"eventPlanner/internal/config"
	"eventPlanner/internal/http-server/handlers/event/createEvent"
	"eventPlanner/internal/http-server/handlers/event/eventViews"
	"eventPlanner/internal/http-server/handlers/event/getEvent"
	"eventPlanner/internal/http-server/handlers/event/listEvents"
	"eventPlanner/internal/http-server/handlers/event/updateEvent"
	"eventPlanner/internal/http-server/handlers/relay/listRelays"
	"eventPlanner/internal/http-server/handlers/relay/switchRelay"
	"eventPlanner/internal/http-server/handlers/reminder/getReminders"
	"eventPlanner/internal/http-server/handlers/rsvp/getRSVPs"
	"eventPlanner/internal/http-server/handlers/rsvp/getUserRSVP"
	"eventPlanner/internal/http-server/handlers/rsvp/submitRSVP"
	"eventPlanner/internal/http-server/handlers/update/createUpdate"
	"eventPlanner/internal/http-server/handlers/update/getUpdates"
	"eventPlanner/internal/http-server/handlers/user/getMe"
	"eventPlanner/internal/http-server/middleware/mwlogger"
	"eventPlanner/internal/http-server/middleware/ratelimit"
	"eventPlanner/internal/lib/logger/handlers/slogpretty"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/mail"
	"eventPlanner/internal/notifier"
	"eventPlanner/internal/planner"
	"eventPlanner/internal/relay"
	"eventPlanner/internal/storage/file"
	"eventPlanner/internal/storage/postgres"
	"eventPlanner/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nbd-wtf/go-nostr"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// relayConn is what the rest of the app needs from either relay.
type relayConn interface {
	Query(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error)
	Publish(ctx context.Context, draft nostr.Event) error
	CurrentUser() (string, bool)
	Connected() bool
	URL() string
	Presets() []relay.Preset
	Switch(ctx context.Context, url string) error
	Close() error
}

// memoryConn gives the in-process relay a no-op Close.
type memoryConn struct {
	*relay.Memory
}

func (memoryConn) Close() error { return nil }

type reminderView struct {
	*notifier.Feed
	*notifier.Poller
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event planner", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readCache := cache.New()

	conn, err := setupRelay(ctx, log, cfg, readCache)
	if err != nil {
		log.Error("failed to init relay", sl.Err(err))
		os.Exit(1)
	}

	if pk, ok := conn.CurrentUser(); ok {
		log.Info("signing as", slog.String("pubkey", pk))
	} else {
		log.Warn("no signing key configured, running read-only")
	}

	svc := planner.New(log, conn, readCache, cfg.Query.DefaultLimit)

	feed := notifier.NewFeed(cfg.Notifications.FeedSize)
	sinks := []notifier.Sink{notifier.NewLogSink(log), feed}

	if cfg.SMTP.Enabled {
		sinks = append(sinks, mail.NewSMTP(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, cfg.SMTP.To))
		log.Info("email reminders enabled", slog.String("to", cfg.SMTP.To))
	}

	backend, closeStore, err := setupMarkStore(cfg)
	if err != nil {
		log.Error("failed to init notification store", sl.Err(err))
		os.Exit(1)
	}

	state := notifier.NewState(backend)
	if err := state.Load(ctx); err != nil {
		log.Error("failed to load notification marks", sl.Err(err))
	}

	poller := notifier.New(log, svc, conn, state, notifier.Options{
		Schedule:  cfg.Notifications.Schedule,
		LeadHours: cfg.Notifications.LeadHours,
		Tolerance: cfg.Notifications.Tolerance,
		Cooldown:  cfg.Notifications.Cooldown,
	}, sinks...)

	if cfg.Notifications.Enabled {
		go poller.Watch(ctx, cfg.Notifications.WatchInterval)
	}

	limiter := ratelimit.NewLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/events", listEvents.New(log, svc))
	router.Get("/events/upcoming", eventViews.NewUpcoming(log, svc))
	router.Get("/events/past", eventViews.NewPast(log, svc))
	router.Get("/events/tags", eventViews.NewTags(log, svc))
	router.Get("/events/map", eventViews.NewMap(log, svc))
	router.Get("/events/{id}", getEvent.New(log, svc))
	router.Get("/events/{id}/updates", getUpdates.New(log, svc))
	router.Get("/events/{id}/rsvps", getRSVPs.New(log, svc))
	router.Get("/events/{id}/rsvp", getUserRSVP.New(log, svc))
	router.Get("/reminders", getReminders.New(log, reminderView{Feed: feed, Poller: poller}))
	router.Get("/relays", listRelays.New(log, conn))
	router.Get("/me", getMe.New(log, svc))

	router.Group(func(r chi.Router) {
		r.Use(ratelimit.New(log, limiter))

		r.Post("/events", createEvent.New(log, svc))
		r.Put("/events/{id}", updateEvent.New(log, svc))
		r.Post("/events/{id}/updates", createUpdate.New(log, svc))
		r.Post("/events/{id}/rsvp", submitRSVP.New(log, svc))
		r.Put("/relay", switchRelay.New(log, conn))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := limiter.Cleanup(10 * time.Minute); n > 0 {
					log.Debug("dropped idle rate limiters", slog.Int("count", n))
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()
	poller.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err := closeStore(); err != nil {
		log.Error("failed to close notification store", sl.Err(err))
	}

	if err := conn.Close(); err != nil {
		log.Error("failed to close relay connection", sl.Err(err))
	}

	log.Info("relay connection closed")
}

func setupSigner(cfg *config.Config) (*relay.Signer, error) {
	if cfg.Signer.SecretKey != "" {
		return relay.NewSigner(cfg.Signer.SecretKey)
	}

	// Offline mode gets a throwaway identity so writes work.
	if cfg.Relay.URL == "" {
		return relay.GenerateSigner()
	}

	return nil, nil
}

func setupRelay(ctx context.Context, log *slog.Logger, cfg *config.Config, readCache *cache.Cache) (relayConn, error) {
	signer, err := setupSigner(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Relay.URL == "" {
		log.Info("no relay configured, using in-memory relay")
		return memoryConn{relay.NewMemory(signer)}, nil
	}

	presets := make([]relay.Preset, 0, len(cfg.Relay.Presets))
	for _, p := range cfg.Relay.Presets {
		presets = append(presets, relay.Preset{Name: p.Name, URL: p.URL})
	}

	client, err := relay.Connect(ctx, log, cfg.Relay.URL, presets, signer, cfg.Relay.ConnectTimeout)
	if err != nil {
		return nil, err
	}

	client.OnSwitch(func(url string) {
		readCache.Purge()
		log.Info("read cache purged after relay switch", slog.String("url", url))
	})

	return client, nil
}

func setupMarkStore(cfg *config.Config) (notifier.Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Notifications.Store.Driver {
	case "sqlite":
		s, err := sqlite.InitDB(cfg.Notifications.Store.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case "postgres":
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return file.New(cfg.Notifications.Store.Path), noop, nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
