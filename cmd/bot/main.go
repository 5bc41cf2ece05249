package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/diegoclair/slack-reminder-bot/internal/config"
	"github.com/diegoclair/slack-reminder-bot/internal/database"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/service"
	"github.com/diegoclair/slack-reminder-bot/internal/handlers"
	"github.com/diegoclair/slack-reminder-bot/internal/logger"
	"github.com/diegoclair/slack-reminder-bot/migrator/sqlite"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mainLog := logger.Component(log, "main")

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	mainLog.Info().Str("path", cfg.DatabasePath).Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(database.NewInstance(db), slackClient, service.Options{
		Location:            cfg.Location(),
		AdminUserIDs:        cfg.AdminUserIDs,
		MaxRemindersPerUser: cfg.Limits.MaxRemindersPerUser,
		MaxMessageLength:    cfg.Limits.MaxMessageLength,
		AckTimeout:          cfg.Acknowledgement.Timeout,
		AckEmoji:            cfg.Acknowledgement.Emoji,
		AckRetention:        cfg.Acknowledgement.Retention,
		AutoKickEnabled:     cfg.Features.AutoKickEnabled,
		TickInterval:        cfg.Scheduling.TickInterval,
		CleanupSchedule:     cfg.Scheduling.CleanupSchedule,
		SlackRateLimit:      cfg.Limits.SlackRateLimit,
	}, log)

	handler := handlers.New(services.Reminder, services.Acknowledgement, cfg.SlackSigningSecret, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/slack/events", handler.HandleEvents)
	mux.HandleFunc("/health", handler.HandleHealth)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// bind before the catch-up tick so Slack's 3s deadline holds during a backlog
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	serverErr := make(chan error, 1)
	go func() {
		mainLog.Info().Str("port", cfg.Port).Str("timezone", cfg.Timezone).Msg("server starting")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	if err := services.Scheduler.Start(); err != nil {
		server.Close()
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer services.Scheduler.Stop()

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		mainLog.Warn().Err(err).Msg("failed to notify systemd")
	}

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		mainLog.Info().Msg("shutting down")
	}

	daemon.SdNotify(false, daemon.SdNotifyStopping)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		mainLog.Error().Err(err).Msg("failed to shut down server")
	}

	return nil
}
