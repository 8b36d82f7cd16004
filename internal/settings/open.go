package settings

import (
	"fmt"

	"github.com/graffic/citas-go/internal/config"
	"github.com/graffic/citas-go/internal/storage"
)

// Open returns the preference backend selected by cfg. db is only used by
// the "database" backend and may be nil otherwise.
func Open(cfg *config.PreferencesConfig, db *storage.DB) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "file", "":
		return NewFileStore(cfg.Path), nil
	case "database":
		if db == nil {
			return nil, fmt.Errorf("database preference backend needs a database connection")
		}
		return NewDBStore(db)
	default:
		return nil, fmt.Errorf("unknown preference backend %q", cfg.Backend)
	}
}
