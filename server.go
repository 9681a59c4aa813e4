package mtatracker

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/LS122800/MTA-Tracker/config"
	"github.com/LS122800/MTA-Tracker/feed"
	"github.com/LS122800/MTA-Tracker/stations"
)

// Server exposes the tracker over HTTP. Each request triggers one fetch,
// decode and project pass; snapshots are never shared across requests.
type Server struct {
	httpServer *http.Server
	cfg        config.AppConfig
	directory  *stations.Directory
	client     *feed.Client
}

// NewServer wires the HTTP API over a built station directory.
func NewServer(cfg config.AppConfig, directory *stations.Directory) *Server {
	s := &Server{
		cfg:       cfg,
		directory: directory,
		client:    feed.NewClient(cfg.Feed.APIKey, time.Duration(cfg.Feed.TimeoutMS)*time.Millisecond),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/positions.json", s.handlePositions)
	mux.HandleFunc("/api/arrivals.json", s.handleArrivals)
	mux.HandleFunc("/api/alerts.json", s.handleAlerts)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start runs the listener in the background.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", s.httpServer.Addr).Msg("server listening")
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	} else {
		log.Info().Msg("server shut down successfully")
	}
}
