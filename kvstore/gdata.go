package kvstore

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata"
)

// GdataStore keeps one gdata item per target in the per-user application
// data directory.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens (creating if needed) the data directory for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

func (s *GdataStore) Load(target string) (Record, error) {
	data, err := s.m.LoadItem(itemKey(target))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", target, err)
	}
	if data == nil {
		return nil, ErrNotFound
	}
	return decode(data)
}

func (s *GdataStore) Save(target string, rec Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	if err := s.m.SaveItem(itemKey(target), data); err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}
	return nil
}

// itemKey maps a target path such as "config/settings.json" to a flat gdata
// item key ("config_settings_json").
func itemKey(target string) string {
	var b strings.Builder
	for _, r := range target {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
