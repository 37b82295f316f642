package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// StoryDefinition describes a single story to import.
type StoryDefinition struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// EpicDefinition describes an epic and the stories grouped under it.
type EpicDefinition struct {
	Summary     string            `json:"summary"`
	Description string            `json:"description"`
	Stories     []StoryDefinition `json:"stories"`
}

// Document is the parsed stories file.
type Document struct {
	Epics []EpicDefinition `json:"epics"`
}

// LoadDocument reads and parses a stories file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoriesFileRead, err)
	}

	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoriesFileParse, err)
	}

	if err := document.validate(); err != nil {
		return nil, err
	}

	return &document, nil
}

// validate checks that every epic and story carries a summary, the key used
// for deduplication.
func (d *Document) validate() error {
	for i, epic := range d.Epics {
		if epic.Summary == "" {
			return fmt.Errorf("%w: epic at index %d", ErrMissingSummary, i)
		}
		for j, story := range epic.Stories {
			if story.Summary == "" {
				return fmt.Errorf("%w: story at index %d of epic %q", ErrMissingSummary, j, epic.Summary)
			}
		}
	}
	return nil
}
