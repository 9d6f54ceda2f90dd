package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/mailfold/gmail-mcp/internal/artifacts"
	"github.com/mailfold/gmail-mcp/internal/config"
	"github.com/mailfold/gmail-mcp/internal/gmail"
	"github.com/mailfold/gmail-mcp/internal/instrumentation"
	"github.com/mailfold/gmail-mcp/internal/logging"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	client   *gmail.Client
	store    *artifacts.Store
	settings *config.Settings
	logger   logging.Logger
	metrics  *instrumentation.Metrics
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. Authentication happens
// here, once: a missing or unusable credential file aborts startup.
func NewServerContext(ctx context.Context, settings *config.Settings, logger logging.Logger, metrics *instrumentation.Metrics) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	client, err := gmail.NewClient(shutdownCtx, settings)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize Gmail client: %w", err)
	}

	store, err := artifacts.NewStore()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		client:   client,
		store:    store,
		settings: settings,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// GmailClient returns the authenticated Gmail client
func (sc *ServerContext) GmailClient() *gmail.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.client
}

// SetGmailClient replaces the Gmail client. Used by tests.
func (sc *ServerContext) SetGmailClient(client *gmail.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.client = client
}

// Store returns the artifact store
func (sc *ServerContext) Store() *artifacts.Store {
	return sc.store
}

// Settings returns the loaded configuration
func (sc *ServerContext) Settings() *config.Settings {
	return sc.settings
}

// Logger returns the server logger
func (sc *ServerContext) Logger() logging.Logger {
	return sc.logger
}

// Metrics returns the metrics recorder
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context, removing the artifact directory.
// Artifact paths handed out to clients are dangling after this returns.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	err := sc.store.Close()
	sc.cancel()
	return err
}
