package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/mhalvorsen/lsm-workbench/internal/backend"
	"github.com/mhalvorsen/lsm-workbench/internal/config"
	"github.com/mhalvorsen/lsm-workbench/internal/run"
	"github.com/mhalvorsen/lsm-workbench/internal/task"
)

// Server serves the workbench API.
type Server struct {
	cfg      *config.WorkbenchConfig
	registry *backend.Registry
	tracker  *task.Tracker
	logger   *slog.Logger

	httpServer *http.Server

	ctxMu  sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Server.
func New(cfg *config.WorkbenchConfig, registry *backend.Registry, tracker *task.Tracker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		registry: registry,
		tracker:  tracker,
		logger:   logger,
	}
	// Experiments can be launched before Start in tests that exercise
	// Routes directly; give them a live context from construction.
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

// Start begins serving in the background.
func (s *Server) Start(ctx context.Context) error {
	s.ctxMu.Lock()
	s.cancel()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.ctxMu.Unlock()

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler: s.Routes(),
	}

	go func() {
		s.logger.Info("http server started", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", "error", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the server and waits for in-flight
// experiment goroutines.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping http server")

	s.ctxMu.Lock()
	s.cancel()
	s.ctxMu.Unlock()

	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = s.httpServer.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("http server stopped")
	case <-ctx.Done():
		s.logger.Warn("server stop timed out with experiments in flight")
	}

	return shutdownErr
}

// Routes builds the request mux. Exposed for handler tests.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /run-experiment", s.handleRunExperiment)
	mux.HandleFunc("GET /task-status/{id}", s.handleTaskStatus)
	mux.HandleFunc("GET /ws/task-status/{id}", s.handleTaskStream)
	mux.HandleFunc("GET /backends", s.handleBackends)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// baseContext returns the context experiment goroutines run under.
// Start replaces it, so concurrent readers must go through here.
func (s *Server) baseContext() context.Context {
	s.ctxMu.Lock()
	defer s.ctxMu.Unlock()
	return s.ctx
}

// launch runs one experiment case in the background, reporting through
// the tracker.
func (s *Server) launch(id string, c run.Case) {
	ctx := s.baseContext()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.tracker.SetRunning(id)
		runner := run.New(s.registry, s.logger, run.WithProgress(func(p run.Progress) {
			s.tracker.SetProgress(id, p.String())
		}))

		results, err := runner.RunCase(ctx, c)
		if err != nil {
			s.logger.Error("experiment failed", "task_id", id, "error", err)
			s.tracker.Fail(id, err)
			return
		}
		s.tracker.Complete(id, results)
	}()
}
