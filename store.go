package studiolingo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SubscriptionState is everything the engine persists between runs: the
// ordered subscription, custom language definitions, and the trial anchor.
type SubscriptionState struct {
	Subscription   []string        `yaml:"subscription"`
	Custom         []LanguageEntry `yaml:"custom,omitempty"`
	TrialStartedAt time.Time       `yaml:"trial_started_at,omitempty"`
}

// DefaultSubscriptionState returns the state a fresh install begins with.
func DefaultSubscriptionState() *SubscriptionState {
	return &SubscriptionState{
		Subscription: append([]string(nil), DefaultSubscription...),
	}
}

// Store loads and saves subscription state.
type Store interface {
	Load() (*SubscriptionState, error)
	Save(state *SubscriptionState) error
}

// FileStore persists state as YAML at a fixed path. Saves are atomic via a
// temp file rename, so a crash mid-write never corrupts the state.
type FileStore struct {
	path string
}

// NewFileStore returns a store at path. The directory is created on first
// save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath returns the conventional state location under the
// user's config directory.
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "studiolingo", "subscription.yaml"), nil
}

// Load reads the persisted state. A missing file yields the default state,
// not an error. Callers apply the state to a catalog with ApplyTo, which
// also repairs ordering a hand-edited file may have broken.
func (s *FileStore) Load() (*SubscriptionState, error) {
	data, err := os.ReadFile(s.path) // #nosec G304 -- path is caller-chosen by design
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSubscriptionState(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	var state SubscriptionState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if len(state.Subscription) == 0 {
		state.Subscription = append([]string(nil), DefaultSubscription...)
	}
	return &state, nil
}

// Save writes the state atomically.
func (s *FileStore) Save(state *SubscriptionState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".subscription-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// ApplyTo registers the state's custom languages into cat and returns the
// normalized subscription.
func (st *SubscriptionState) ApplyTo(cat *Catalog) []string {
	for _, entry := range st.Custom {
		cat.Register(entry.Code, entry.DisplayName, entry.Flag)
	}
	return cat.Normalize(st.Subscription)
}

var _ Store = (*FileStore)(nil)
