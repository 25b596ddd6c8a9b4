// Package prefs persists per-user view preferences between runs.
package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// AppName is the storage namespace used by gdata
const AppName = "mazerunner"

const (
	prefsObject   = "prefs"
	prefsProperty = "view"
)

// Preferences are the settings remembered across runs
type Preferences struct {
	ViewportIndex int    `yaml:"viewportIndex"`
	Language      string `yaml:"language,omitempty"`
}

// Store loads and saves Preferences. A nil manager runs in memory only.
type Store struct {
	manager *gdata.Manager
	prefs   Preferences
	log     *logrus.Entry
}

// Open opens the default gdata store. On failure it returns an in-memory store
// together with the error, so callers may carry on without persistence.
func Open(defaults Preferences, log *logrus.Logger) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewStore(nil, defaults, log), fmt.Errorf("opening preference storage: %w", err)
	}
	return NewStore(manager, defaults, log), nil
}

// NewStore wraps manager and loads any saved preferences over defaults
func NewStore(manager *gdata.Manager, defaults Preferences, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Store{
		manager: manager,
		prefs:   defaults,
		log:     log.WithField("component", "prefs"),
	}
	if err := s.load(); err != nil {
		s.log.WithError(err).Warn("ignoring saved preferences")
		s.prefs = defaults
	}
	return s
}

func (s *Store) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}
	loaded := s.prefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decoding preferences: %w", err)
	}
	s.prefs = loaded
	s.log.WithFields(logrus.Fields{
		"viewport_index": loaded.ViewportIndex,
		"language":       loaded.Language,
	}).Debug("preferences loaded")
	return nil
}

// Save writes the current preferences. It is a no-op without a manager.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// Get returns a copy of the current preferences
func (s *Store) Get() Preferences {
	return s.prefs
}

// SetViewportIndex records the zoom level. Call Save to persist it.
func (s *Store) SetViewportIndex(i int) {
	s.prefs.ViewportIndex = i
}

// SetLanguage records the interface language. Call Save to persist it.
func (s *Store) SetLanguage(lang string) {
	s.prefs.Language = lang
}

// ResolveLanguage picks the language for this run. An explicit choice is
// remembered and wins; otherwise a saved language beats fallback. It reports
// whether the preferences changed and need saving.
func (s *Store) ResolveLanguage(explicit, fallback string) (lang string, changed bool) {
	if explicit != "" {
		changed = s.prefs.Language != explicit
		s.SetLanguage(explicit)
		return explicit, changed
	}
	if s.prefs.Language != "" {
		return s.prefs.Language, false
	}
	return fallback, false
}

// Persistent reports whether the store is backed by disk
func (s *Store) Persistent() bool {
	return s.manager != nil
}
