// Package wire provides dependency injection for the kanban application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	cliadapter "github.com/example/kanban/internal/adapters/cli"
	"github.com/example/kanban/internal/adapters/httpapi"
	"github.com/example/kanban/internal/adapters/memory"
	sqliteadapter "github.com/example/kanban/internal/adapters/sqlite"
	"github.com/example/kanban/internal/app"
	"github.com/example/kanban/internal/client"
	"github.com/example/kanban/internal/config"
	"github.com/example/kanban/internal/db"
	"github.com/example/kanban/internal/ports/primary"
	"github.com/example/kanban/internal/ports/secondary"
	"github.com/example/kanban/internal/seed"
)

var (
	cfg          *config.Config
	issueService primary.IssueService
	issueCache   *client.Cache
	serverOnce   sync.Once
	clientOnce   sync.Once
	cfgOnce      sync.Once
)

// Config returns the singleton configuration, loaded from the current
// directory with defaults filling any gaps.
func Config() *config.Config {
	cfgOnce.Do(func() {
		cfg = config.LoadOrDefault(".")
	})
	return cfg
}

// IssueService returns the singleton IssueService instance.
func IssueService() primary.IssueService {
	serverOnce.Do(initServerServices)
	return issueService
}

// Server returns an HTTP server wired to the singleton service.
func Server() *httpapi.Server {
	return httpapi.NewServer(IssueService(), Logger())
}

// Logger returns a structured logger writing to stderr.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// initServerServices initializes the repository and service.
// This is called once via sync.Once.
func initServerServices() {
	c := Config()
	if err := c.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var repo secondary.IssueRepository
	switch c.Store {
	case config.StoreSQLite:
		database, err := db.Open(c.SQLiteDSN)
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		if err := db.SeedIssues(database, seed.Issues(), seed.NextID); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
		repo = sqliteadapter.NewIssueRepository(database)
	default:
		memRepo := memory.NewIssueRepository()
		memRepo.Seed(seed.Issues(), seed.NextID)
		repo = memRepo
	}

	issueService = app.NewIssueService(repo)
}

// Cache returns the singleton client-side cache bound to the configured
// server URL.
func Cache() *client.Cache {
	clientOnce.Do(func() {
		api := client.New(Config().ServerURL, nil)
		issueCache = client.NewCache(api)
	})
	return issueCache
}

// IssueAdapter returns a new IssueAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func IssueAdapter() *cliadapter.IssueAdapter {
	return IssueAdapterWithOutput(os.Stdout)
}

// IssueAdapterWithOutput returns a new IssueAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func IssueAdapterWithOutput(out io.Writer) *cliadapter.IssueAdapter {
	return cliadapter.NewIssueAdapter(Cache(), out)
}
