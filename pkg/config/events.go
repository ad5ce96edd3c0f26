package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katikarohith/quick-teams/internal/domain"
)

// LoadEvents returns the community events catalog. The catalog is plain
// constant data injected at startup: either the built-in defaults or the
// contents of the JSON file named by EVENTS_FILE.
func LoadEvents(cfg *Config) ([]domain.Event, error) {
	if cfg.EventsFile == "" {
		return DefaultEvents(), nil
	}

	data, err := os.ReadFile(cfg.EventsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events file: %w", err)
	}

	return events, nil
}

func DefaultEvents() []domain.Event {
	return []domain.Event{
		{ID: "hack1", Title: "24h Hackathon", Date: "2025-09-10", Desc: "Campus hackathon"},
		{ID: "study1", Title: "DSA Study Group", Date: "2025-09-16", Desc: "Daily practice group"},
		{ID: "ml1", Title: "ML Club Meetup", Date: "2025-09-20", Desc: "Intro to ML"},
	}
}
