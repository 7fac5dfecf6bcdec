package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"codeberg.org/critique/client/internal/analyze"
	"codeberg.org/critique/client/internal/config"
	"codeberg.org/critique/client/internal/draft"
	"codeberg.org/critique/client/internal/logger"
	"codeberg.org/critique/client/internal/tui"
)

func main() {
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "critique is an interactive tool and needs a terminal")
		os.Exit(1)
	}

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	store := draft.NewStore(buildStorage(cfg))

	clientCfg := analyze.Config{
		Endpoint: cfg.ServiceURL,
		Timeout:  cfg.RequestTimeout,
	}

	app := tui.NewApp(clientCfg, cfg.AuthSecret, store)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running critique: %v\n", err)
		os.Exit(1)
	}
}

// picks the configured draft storage backend. A backend that cannot be
// opened degrades to in-memory storage: the session simply is not
// persisted, which is never a user-facing error.
func buildStorage(cfg *config.Config) draft.Storage {
	switch cfg.StateBackend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
			logger.Warn("state dir unavailable, drafts will not persist", "error", err)
			return draft.NewMemStorage()
		}

		storage, err := draft.NewSQLiteStorage(filepath.Join(cfg.StateDir, "state.db"))
		if err != nil {
			logger.Warn("state database unavailable, drafts will not persist", "error", err)
			return draft.NewMemStorage()
		}

		return storage

	default:
		return draft.NewFileStorage(cfg.StateDir)
	}
}
