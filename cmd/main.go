package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/api/handler"
	"github.com/FlatBushZombies/quickhands/internal/api/router"
	"github.com/FlatBushZombies/quickhands/internal/channels/telegram"
	"github.com/FlatBushZombies/quickhands/internal/config"
	"github.com/FlatBushZombies/quickhands/internal/logger"
	"github.com/FlatBushZombies/quickhands/internal/metrics"
	"github.com/FlatBushZombies/quickhands/internal/realtime"
	"github.com/FlatBushZombies/quickhands/internal/repositories"
	"github.com/FlatBushZombies/quickhands/internal/services"
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

// newTelegramNotifier returns a nil interface when the channel is disabled,
// so the dispatcher's nil check stays meaningful.
func newTelegramNotifier(cfg *config.Config) services.TelegramNotifier {
	if cfg.Telegram.Token == "" {
		return nil
	}

	notifier, err := telegram.NewNotifier(cfg.Telegram.Token)
	if err != nil {
		log.Errorf("can't create telegram notifier, channel disabled: %v", err)
		return nil
	}
	return notifier
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	jobs := repositories.NewJobsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	notifications := repositories.NewNotificationsRepository(dbContext.DB)
	users := repositories.NewUsersRepository(dbContext.DB)

	bus := EventBus.New()
	hub := realtime.NewHub()

	matcher := services.NewSkillMatcher(repositories.NewCachedUsers(users))

	_, err = services.NewDispatcher(bus, matcher, notifications, hub, users, newTelegramNotifier(cfg))
	if err != nil {
		log.Fatalf("can't create dispatcher: %v", err)
	}

	cleaner, err := services.NewJobsCleaner(jobs)
	if err != nil {
		log.Fatalf("can't create jobs cleaner: %v", err)
	}
	defer cleaner.Stop()

	deps := &handler.Dependencies{
		Jobs:          services.NewJobService(bus, jobs),
		Applications:  services.NewApplicationService(bus, jobs, applications),
		Notifications: services.NewNotificationService(notifications),
		Users:         services.NewUserService(users),
		Hub:           hub,
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.SetupRouter(deps, cfg.Server),
	}

	go func() {
		log.Infof("listening on %v", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutInSec) * time.Second
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
