package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/diegoclair/slack-standup-bot/internal/chatlog"
	"github.com/diegoclair/slack-standup-bot/internal/config"
	"github.com/diegoclair/slack-standup-bot/internal/database"
	"github.com/diegoclair/slack-standup-bot/internal/domain/service"
	"github.com/diegoclair/slack-standup-bot/internal/handlers"
	"github.com/diegoclair/slack-standup-bot/internal/logger"
	"github.com/diegoclair/slack-standup-bot/internal/scheduler"
	"github.com/diegoclair/slack-standup-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}
	zlog.Info("migrations completed")

	dm := database.NewInstance(db)
	slackClient := slack.New(cfg.SlackBotToken)

	services := service.New(dm, slackClient, cfg.Timezones, cfg.LocalNotificationHour, zlog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(services.Notifier, zlog)
	go sched.Run(ctx)

	slashHandler := handlers.New(services.Standup, cfg.SlackSigningSecret, zlog)
	eventsHandler := handlers.NewEvents(chatlog.New(cfg.LogDir), cfg.SlackSigningSecret, zlog)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", slashHandler.HandleSlashCommand)
	mux.HandleFunc("/slack/events", eventsHandler.HandleEvent)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: mux}
	go func() {
		<-ctx.Done()
		zlog.Info("shutdown signal received")
		srv.Close()
	}()

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
