package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("store: unknown backend")

// Open creates the backend named by cfg.
func Open(cfg Config) (Backend, error) {
	switch name := strings.ToLower(strings.TrimSpace(cfg.Backend())); name {
	case "", BackendDiskv:
		return NewDiskv(cfg.BasePath())
	case BackendSQLite:
		return NewSQLite(cfg.BasePath())
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w %q, expected %q, %q or %q",
			ErrUnknownBackend, cfg.Backend(), BackendDiskv, BackendSQLite, BackendMemory)
	}
}

// Load creates a Gateway backed by the configured storage. When cfg is nil
// the configuration is read with LoadConfig. If the backend cannot be opened
// and cfg allows it, Load falls back to memory-only storage.
func Load(cfg Config, logger *slog.Logger) (*Gateway, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := Open(cfg)
	if err != nil {
		if !cfg.FallbackMemory() || errors.Is(err, ErrUnknownBackend) {
			return nil, err
		}
		logger.Warn("storage unavailable, keeping entries in memory only", "backend", cfg.Backend(), "error", err)
		backend = NewMemory()
	}
	return NewGateway(backend, cfg.Key(), logger), nil
}
