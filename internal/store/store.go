// Package store persists the profile and scenario history in a local
// SQLite database as whole-object JSON blobs under fixed keys.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JackSaady/photo-pricing-compass/internal/model"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is the app's local persistence layer.
type Store struct {
	db *sql.DB
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "compass")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "compass")
}

// DefaultPath returns the full path to the database file.
func DefaultPath() string {
	return filepath.Join(DataDir(), "compass.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) getRecord(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *Store) putRecord(key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO records (key, value, updated_at)
		VALUES (?, ?, ?)`, key, string(value), now)
	return err
}

// LoadProfile reads the saved profile. Returns nil when none exists yet.
func (s *Store) LoadProfile() (*model.UserProfile, error) {
	data, err := s.getRecord(profileKey)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var p model.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &p, nil
}

// SaveProfile writes the profile wholesale.
func (s *Store) SaveProfile(p model.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := s.putRecord(profileKey, data); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// LoadScenarios reads the scenario history, oldest first.
func (s *Store) LoadScenarios() ([]model.ScenarioData, error) {
	data, err := s.getRecord(scenariosKey)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var scenarios []model.ScenarioData
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}
	return scenarios, nil
}

// SaveScenarios writes the full history array.
func (s *Store) SaveScenarios(scenarios []model.ScenarioData) error {
	data, err := json.Marshal(scenarios)
	if err != nil {
		return fmt.Errorf("encoding scenarios: %w", err)
	}
	if err := s.putRecord(scenariosKey, data); err != nil {
		return fmt.Errorf("writing scenarios: %w", err)
	}
	return nil
}

// AppendScenario adds one scenario to the end of the history.
func (s *Store) AppendScenario(sc model.ScenarioData) error {
	scenarios, err := s.LoadScenarios()
	if err != nil {
		return err
	}
	return s.SaveScenarios(append(scenarios, sc))
}

// SetStatus updates the status (and optional final price) of a saved
// scenario. The scenario is otherwise immutable.
func (s *Store) SetStatus(id string, status model.ScenarioStatus, finalPrice *float64) error {
	scenarios, err := s.LoadScenarios()
	if err != nil {
		return err
	}

	found := false
	for i := range scenarios {
		if scenarios[i].ID == id {
			scenarios[i].Status = status
			if finalPrice != nil {
				scenarios[i].FinalPrice = finalPrice
			}
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no scenario with id %s", id)
	}
	return s.SaveScenarios(scenarios)
}
