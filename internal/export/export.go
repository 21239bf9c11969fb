// Package export moves learner progress in and out of the app as a
// portable JSON document.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/edonnat/chronos/internal/progress"
)

// Export renders the progress state as indented JSON suitable for
// backup or transfer to another machine.
func Export(state progress.State) ([]byte, error) {
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	return append(b, '\n'), nil
}

// Filename returns the date-stamped default export filename.
func Filename(now time.Time) string {
	return fmt.Sprintf("chronos-progress-%s.json", now.Format("2006-01-02"))
}

// ToFile writes the export document into dir under the date-stamped
// name and returns the full path.
func ToFile(state progress.State, dir string, now time.Time) (string, error) {
	b, err := Export(state)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// Import validates an export document and merges it over defaults, so
// documents written by older versions pick up newly added settings.
func Import(data []byte) (progress.State, error) {
	if err := validate(data); err != nil {
		return progress.State{}, err
	}
	state, err := progress.Merge(data)
	if err != nil {
		return progress.State{}, fmt.Errorf("merge progress: %w", err)
	}
	return state, nil
}

// FromFile reads and imports an export document from path.
func FromFile(path string) (progress.State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return progress.State{}, fmt.Errorf("read import: %w", err)
	}
	return Import(b)
}
