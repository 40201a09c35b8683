package systems

import (
	"fmt"
	"log"

	cfg "github.com/automoto/gridmenu/config"
	"github.com/automoto/gridmenu/kvstore"
)

// OpenStore opens the key-value store selected by app.StoreBackend. The
// returned close function is never nil.
func OpenStore(app cfg.AppConfig) (kvstore.Store, func(), error) {
	noop := func() {}

	switch app.StoreBackend {
	case "gdata", "":
		s, err := kvstore.OpenGdata(app.AppName)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case "sqlite":
		s, err := kvstore.OpenSQLite(app.StorePath)
		if err != nil {
			return nil, noop, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Printf("Warning: Could not close store: %v", err)
			}
		}, nil
	case "memory":
		log.Printf("Warning: Using in-memory store, settings will not be kept")
		return kvstore.NewMemoryStore(), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown store backend %q", app.StoreBackend)
}
