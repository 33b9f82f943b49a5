package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/squatwatch/squatwatch/pkg/domain"
	"github.com/squatwatch/squatwatch/pkg/monitor"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	engine  Engine
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Engine is the monitoring facade the handlers drive
type Engine interface {
	Status() monitor.Status
	Export() monitor.Snapshot

	Domains() []string
	AddDomain(dom string) error
	RemoveDomain(dom string) error

	Threats(level domain.ThreatLevel, source domain.Source, status domain.ThreatStatus) []domain.Threat
	DismissThreat(id string)

	CertFeed() []domain.FeedRecord
	LookupFeed() []domain.FeedRecord
	ClearCertFeed()
	ClearLookupFeed()
	PauseCertStream(paused bool)

	TriggerLookupNow() error
	Usage() domain.UsageCounter
	ResetUsage()

	Settings() domain.Settings
	UpdateSettings(s domain.Settings) error

	TestAlert(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, engine Engine, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		engine:  engine,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("squatwatch", "squatwatch", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /domains", s.listDomainsHandler)
		r.HandleFunc("POST /domains", s.addDomainHandler)
		r.HandleFunc("DELETE /domains/{domain}", s.removeDomainHandler)

		r.HandleFunc("GET /threats", s.listThreatsHandler)
		r.HandleFunc("POST /threats/{id}/dismiss", s.dismissThreatHandler)

		r.HandleFunc("GET /feeds/certstream", s.certFeedHandler)
		r.HandleFunc("DELETE /feeds/certstream", s.clearCertFeedHandler)
		r.HandleFunc("POST /feeds/certstream/pause", s.pauseCertStreamHandler)
		r.HandleFunc("POST /feeds/certstream/resume", s.resumeCertStreamHandler)
		r.HandleFunc("GET /feeds/lookup", s.lookupFeedHandler)
		r.HandleFunc("DELETE /feeds/lookup", s.clearLookupFeedHandler)

		r.HandleFunc("POST /lookup/check", s.triggerLookupHandler)
		r.HandleFunc("GET /usage", s.usageHandler)
		r.HandleFunc("POST /usage/reset", s.resetUsageHandler)

		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PUT /settings", s.updateSettingsHandler)

		r.HandleFunc("GET /export", s.exportHandler)
		r.HandleFunc("POST /alerts/test", s.testAlertHandler)
		r.HandleFunc("DELETE /data", s.clearDataHandler)
	})

	s.router.Handle("GET /metrics", promhttp.Handler())
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
