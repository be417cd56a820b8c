package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/upgradeats/upgradeats/config"
	"github.com/upgradeats/upgradeats/internal/adminapi"
	"github.com/upgradeats/upgradeats/internal/app"
	"github.com/upgradeats/upgradeats/internal/portal"
	"github.com/upgradeats/upgradeats/internal/webserver"
	"github.com/upgradeats/upgradeats/internal/whatsapp"
)

func main() {
	cfile := flag.String("c", "upgradeats.yml", "config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.LoadConfig(*cfile)
	cfg.InitDirs()

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Stop()

	// Warm the console cache before serving; a failure is non-fatal, the
	// first admin request triggers another refresh.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := application.Console().Store().Refresh(warmCtx); err != nil {
		zap.L().Warn("initial cache load failed", zap.Error(err))
	}
	warmCancel()

	srv := webserver.Init(cfg, application.Gateway())
	adminapi.Init(application.Console(), application.Gateway())
	portal.Init(application.Gateway(), whatsapp.NewHandoff(cfg.Web.WhatsappPhone))

	go func() {
		if err := srv.Listen(); err != nil {
			zap.L().Fatal("web server stopped", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	zap.L().Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Echo().Shutdown(ctx)
}
