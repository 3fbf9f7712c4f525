package tsconfig

import (
	"encoding/json"
	"fmt"

	"github.com/jakoblorz/go-tsalias/internal/models"
	"github.com/tidwall/jsonc"
)

// Load reads and parses a tsconfig.json/jsconfig.json. The format is
// JSONC (comments and trailing commas are legal), so the bytes are
// normalized to plain JSON before decoding.
func (s *Source) Load(path string) (*models.Config, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var config models.Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &config, nil
}
