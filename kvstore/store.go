// Package kvstore persists flat string-keyed mappings of scalar values.
//
// A store is addressed by target (the "file" half of a menu item's data
// location). Every write replaces the full mapping of a target; there are no
// partial updates.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// ErrNotFound is returned by Load when the target has never been written.
var ErrNotFound = errors.New("kvstore: target not found")

// Record is the flat mapping stored under one target. Values are JSON
// scalars: string, bool or float64.
type Record map[string]any

// Store reads and writes whole records by target.
type Store interface {
	Load(target string) (Record, error)
	Save(target string, rec Record) error
}

// ReadOrEmpty loads target, treating a missing or unreadable target as an
// empty record. Unreadable targets are logged.
func ReadOrEmpty(s Store, target string) Record {
	rec, err := s.Load(target)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Warning: Could not read %s, starting from empty: %v", target, err)
		}
		return Record{}
	}
	if rec == nil {
		return Record{}
	}
	return rec
}

// Merge sets key on the current record of target and writes it back.
func Merge(s Store, target, key string, value any) error {
	rec := ReadOrEmpty(s, target)
	rec[key] = value
	return s.Save(target, rec)
}

func encode(rec Record) ([]byte, error) {
	if rec == nil {
		rec = Record{}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return data, nil
}

func decode(data []byte) (Record, error) {
	rec := Record{}
	if len(data) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
