// Package storage keeps the player's settings between runs in gdata items.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/peerfinder/compass"
	"github.com/quasilyte/gdata"
)

const (
	AppName = "peerfinder"

	CompassItem = "compass"
	DisplayItem = "display"
)

// ItemStore is the part of *gdata.Manager the settings need.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Display is the saved camera and window state.
type Display struct {
	Zoom       float64 `json:"zoom"`
	UIScale    float64 `json:"uiScale"`
	Fullscreen bool    `json:"fullscreen"`
}

// Store reads and writes settings items. A nil Store saves nothing and
// loads nothing, for platforms where gdata could not be opened.
type Store struct {
	items ItemStore
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// Open opens the gdata directory for this app.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return NewStore(m), nil
}

// LoadCompass returns the saved compass settings. Missing data gives the
// defaults; unreadable data gives the defaults and an error.
func (s *Store) LoadCompass() (compass.Settings, error) {
	if s == nil {
		return compass.DefaultSettings(), nil
	}
	data, err := s.items.LoadItem(CompassItem)
	if err != nil {
		return compass.DefaultSettings(), fmt.Errorf("load %s: %w", CompassItem, err)
	}
	return compass.DecodeSettings(data)
}

// LoadDisplay returns the saved display settings. ok is false when nothing
// usable was saved.
func (s *Store) LoadDisplay() (d Display, ok bool, err error) {
	if s == nil {
		return Display{}, false, nil
	}
	data, err := s.items.LoadItem(DisplayItem)
	if err != nil {
		return Display{}, false, fmt.Errorf("load %s: %w", DisplayItem, err)
	}
	if len(data) == 0 {
		return Display{}, false, nil
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return Display{}, false, fmt.Errorf("decode %s: %w", DisplayItem, err)
	}
	return d, true, nil
}

// Save writes both items. A failure on one does not stop the other; the
// returned error joins every failure.
func (s *Store) Save(c compass.Settings, d Display) error {
	if s == nil {
		return nil
	}
	return errors.Join(s.saveCompass(c), s.saveDisplay(d))
}

func (s *Store) saveCompass(c compass.Settings) error {
	data, err := compass.EncodeSettings(c)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(CompassItem, data); err != nil {
		return fmt.Errorf("save %s: %w", CompassItem, err)
	}
	return nil
}

func (s *Store) saveDisplay(d Display) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode %s: %w", DisplayItem, err)
	}
	if err := s.items.SaveItem(DisplayItem, data); err != nil {
		return fmt.Errorf("save %s: %w", DisplayItem, err)
	}
	return nil
}
