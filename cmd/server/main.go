package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"sensorika-scraper/internal/api"
	"sensorika-scraper/internal/config"
	"sensorika-scraper/internal/fetch"
	"sensorika-scraper/internal/scrape"
	"sensorika-scraper/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	gin.SetMode(gin.ReleaseMode)

	client := fetch.NewClient(cfg.FetchTimeout, cfg.UserAgent, 5*1024*1024) // 5MB cap
	svc := scrape.NewService(client, cfg.BaseURL)
	h := &api.Handler{Service: svc, Log: log}
	router := api.NewRouter(h, "web/templates/*.html")

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Str("base_url", cfg.BaseURL).Msg("server listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info().Msg("bye")
}
