// Package dataset exposes the draw history bundled into the binary. The file
// is refreshed with the import command and its --export flag.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"eurojackpot/models"
)

//go:embed eurojackpot_data.json
var bundled []byte

var (
	draws   []models.RawDraw
	loadErr error
	once    sync.Once
)

// Load decodes the bundled draws. Callers receive their own copy.
func Load() ([]models.RawDraw, error) {
	once.Do(func() {
		draws, loadErr = Parse(bundled)
	})
	if loadErr != nil {
		return nil, loadErr
	}

	out := make([]models.RawDraw, len(draws))
	copy(out, draws)
	return out, nil
}

// Parse decodes draws in the bundled file format
func Parse(data []byte) ([]models.RawDraw, error) {
	var parsed []models.RawDraw
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode draw history: %w", err)
	}
	return parsed, nil
}
