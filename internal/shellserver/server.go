// SPDX-License-Identifier: MPL-2.0

// Package shellserver serves an interactive shell over SSH using the Wish
// library. Each accepted session gets its own shell instance bound to the
// session's input and output streams.
package shellserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
)

const (
	// StateCreated indicates the server has been created but not started.
	StateCreated ServerState = iota
	// StateStarting indicates the server is in the process of starting.
	StateStarting
	// StateRunning indicates the server is running and accepting connections.
	StateRunning
	// StateStopping indicates the server is shutting down.
	StateStopping
	// StateStopped indicates the server has stopped (terminal state).
	StateStopped
	// StateFailed indicates the server failed to start or encountered a fatal error (terminal state).
	StateFailed
)

// All type declarations consolidated in a single block.
type (
	// ServerState represents the lifecycle state of the server.
	ServerState int32

	// SessionFunc runs the interactive shell for one SSH session. It is
	// called with the session as both input and output; returning an error
	// closes the session with a message.
	SessionFunc func(sess ssh.Session) error

	// Config holds immutable configuration for the shell server.
	Config struct {
		// Host is the address to bind to (default: 127.0.0.1)
		Host string
		// Port is the port to listen on (0 = auto-select)
		Port int
		// HostKeyPath is where the host key lives; the key is generated on
		// first use. Empty means an ephemeral in-memory key.
		HostKeyPath string
		// ShutdownTimeout is the timeout for graceful shutdown (default: 10s)
		ShutdownTimeout time.Duration
		// StartupTimeout is the max time to wait for server to be ready (default: 5s)
		StartupTimeout time.Duration
	}

	// Server serves shell sessions over SSH.
	// A Server instance is single-use: once stopped or failed, create a new instance.
	Server struct {
		cfg     Config
		session SessionFunc

		// State management (atomic for lock-free reads)
		state atomic.Int32

		// Initialized during Start() - protected by srvMu for writes
		srvMu    sync.Mutex
		srv      *ssh.Server
		listener net.Listener
		addr     string // Actual bound address (including resolved port)

		wg        sync.WaitGroup
		startedCh chan struct{} // Closed when server is ready to accept connections
		errCh     chan error    // Receives fatal errors from the serve goroutine
		lastErr   error

		logger *log.Logger
	}
)

// String returns a human-readable representation of the server state.
func (s ServerState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            0,
		ShutdownTimeout: 10 * time.Second,
		StartupTimeout:  5 * time.Second,
	}
}

// New creates a new shell server. The server is not started; call Start()
// to begin accepting connections.
func New(cfg Config, session SessionFunc) *Server {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.StartupTimeout == 0 {
		cfg.StartupTimeout = 5 * time.Second
	}

	s := &Server{
		cfg:     cfg,
		session: session,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "shell-server",
		}),
		startedCh: make(chan struct{}),
		errCh:     make(chan error, 1), // Buffered so the serve goroutine never blocks
	}
	s.state.Store(int32(StateCreated))

	return s
}

// SetLogger replaces the server logger. It must be called before Start.
func (s *Server) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// State returns the current lifecycle state.
func (s *Server) State() ServerState {
	return ServerState(s.state.Load())
}

// Addr returns the bound address, valid once Start has returned nil.
func (s *Server) Addr() string {
	s.srvMu.Lock()
	defer s.srvMu.Unlock()
	return s.addr
}

// Start starts the shell server and blocks until either:
//   - The server is ready to accept connections (returns nil)
//   - The server fails to start (returns error)
//   - The context is cancelled (returns context error)
//   - The startup timeout is exceeded (returns error)
func (s *Server) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		s.transitionToFailed(fmt.Errorf("context cancelled before start: %w", ctx.Err()))
		return s.lastErr
	default:
	}

	// Transition: Created -> Starting
	if !s.state.CompareAndSwap(int32(StateCreated), int32(StateStarting)) {
		return fmt.Errorf("cannot start server in state %s", s.State())
	}

	startupCtx, startupCancel := context.WithTimeout(ctx, s.cfg.StartupTimeout)
	defer startupCancel()

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var lc net.ListenConfig
	listener, err := lc.Listen(startupCtx, "tcp", addr)
	if err != nil {
		s.transitionToFailed(fmt.Errorf("failed to listen on %s: %w", addr, err))
		return s.lastErr
	}

	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			activeterm.Middleware(),
			s.shellMiddleware(),
			logging.MiddlewareWithLogger(s.logger),
		),
	}
	if s.cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(s.cfg.HostKeyPath))
	}

	srv, err := wish.NewServer(opts...)
	if err != nil {
		_ = listener.Close() // Best-effort cleanup on error
		s.transitionToFailed(fmt.Errorf("failed to create SSH server: %w", err))
		return s.lastErr
	}

	s.srvMu.Lock()
	s.srv = srv
	s.listener = listener
	s.addr = listener.Addr().String()
	s.srvMu.Unlock()

	s.wg.Add(1)
	go s.serve()

	select {
	case <-s.startedCh:
		s.logger.Info("shell server started", "address", s.addr)
		return nil
	case err := <-s.errCh:
		s.transitionToFailed(err)
		return err
	case <-startupCtx.Done():
		s.transitionToFailed(fmt.Errorf("server startup timed out: %w", startupCtx.Err()))
		_ = s.srv.Close()
		return s.lastErr
	}
}

// Stop gracefully shuts the server down, waiting for active sessions up to
// the shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateRunning), int32(StateStopping)) {
		return fmt.Errorf("cannot stop server in state %s", s.State())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()

	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		// Graceful shutdown failed, force close
		_ = srv.Close()
	}

	s.wg.Wait()
	s.state.Store(int32(StateStopped))
	s.logger.Info("shell server stopped")
	return nil
}

// serve runs the SSH accept loop until shutdown.
func (s *Server) serve() {
	defer s.wg.Done()

	s.state.Store(int32(StateRunning))
	close(s.startedCh)

	s.srvMu.Lock()
	srv, listener := s.srv, s.listener
	s.srvMu.Unlock()

	if err := srv.Serve(listener); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		s.errCh <- fmt.Errorf("server error: %w", err)
	}
}

// shellMiddleware runs the session function for each connection.
func (s *Server) shellMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			if err := s.session(sess); err != nil {
				s.logger.Error("shell session failed", "user", sess.User(), "error", err)
				fmt.Fprintf(sess.Stderr(), "session error: %v\n", err)
				_ = sess.Exit(1)
				return
			}
			next(sess)
		}
	}
}

// transitionToFailed records the fatal error and moves to the terminal state.
func (s *Server) transitionToFailed(err error) {
	s.lastErr = err
	s.state.Store(int32(StateFailed))
	s.logger.Error("shell server failed", "error", err)
}
