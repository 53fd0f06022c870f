package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/errbell/errbell/internal/config"
)

// detectorState is the persisted on/off flag. The detector core never reads
// or writes this itself; the CLI host loads it once at startup and rewrites
// it on toggle.
type detectorState struct {
	Type          string `json:"type"` // "detector_state"
	SchemaVersion int    `json:"schemaVersion"`
	Enabled       bool   `json:"enabled"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

func defaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".errbell")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

func statePathOrDefault(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return path, nil
	}
	return defaultStatePath()
}

func loadDetectorState(path string) (*detectorState, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("state path is required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var st detectorState
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func saveDetectorState(path string, st *detectorState) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("state path is required")
	}
	if st == nil {
		return errors.New("state is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644)
}

// resolveEnabled layers the persisted flag over the config default. A
// missing or unreadable state file falls back to the config value.
func resolveEnabled(cfg *config.Config, path string) bool {
	st, err := loadDetectorState(path)
	if err != nil || st == nil {
		return cfg.Enabled
	}
	return st.Enabled
}

func newDetectorState(enabled bool) *detectorState {
	return &detectorState{
		Type:          "detector_state",
		SchemaVersion: 1,
		Enabled:       enabled,
		UpdatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}
