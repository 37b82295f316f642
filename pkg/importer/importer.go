// Package importer orchestrates creation of epics and stories on the tracker.
package importer

import (
	"fmt"
	"strings"

	"github.com/lerenn/jira-importer/pkg/config"
	"github.com/lerenn/jira-importer/pkg/logger"
	"github.com/lerenn/jira-importer/pkg/tracker"
)

// Importer imports epics and stories from a stories document.
type Importer struct {
	tracker tracker.Tracker
	jira    config.JiraConfig
	logger  logger.Logger
}

// NewImporterParams contains parameters for creating a new Importer.
type NewImporterParams struct {
	Tracker tracker.Tracker
	Jira    config.JiraConfig
	Logger  logger.Logger
}

// NewImporter creates a new Importer.
func NewImporter(params NewImporterParams) *Importer {
	loggerInstance := params.Logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNoopLogger()
	}

	return &Importer{
		tracker: params.Tracker,
		jira:    params.Jira,
		logger:  loggerInstance,
	}
}

// Result aggregates the outcome of an import run.
type Result struct {
	EpicsCreated   int
	EpicsFound     int
	EpicsFailed    int
	StoriesCreated int
	StoriesFound   int
	StoriesFailed  int
}

// Import loads the stories document and creates every missing epic and story
// on the tracker. Per-entity creation failures are logged and skipped; only a
// failure to load the document itself is returned as an error.
func (i *Importer) Import(storiesPath string) (*Result, error) {
	document, err := LoadDocument(storiesPath)
	if err != nil {
		return nil, err
	}

	return i.ImportDocument(document), nil
}

// ImportDocument walks the document in order, finding or creating each epic
// and then each of its stories. A failed epic aborts its own stories, never
// the run.
func (i *Importer) ImportDocument(document *Document) *Result {
	result := &Result{}

	for _, epic := range document.Epics {
		epicKey, err := i.findOrCreateEpic(epic, result)
		if err != nil {
			i.logger.Errorf("Error creating epic %q: %v", epic.Summary, err)
			result.EpicsFailed++
			continue
		}

		for _, story := range epic.Stories {
			i.importStory(story, epicKey, result)
		}
	}

	i.logger.Logf("Import finished: epics %d created, %d found, %d failed; stories %d created, %d found, %d failed",
		result.EpicsCreated, result.EpicsFound, result.EpicsFailed,
		result.StoriesCreated, result.StoriesFound, result.StoriesFailed)

	return result
}

// findOrCreateEpic returns the key of an existing epic matching the summary,
// creating a new epic when none is found.
func (i *Importer) findOrCreateEpic(epic EpicDefinition, result *Result) (string, error) {
	existing, err := i.tracker.Search(i.buildSummaryQuery(i.jira.EpicTypeID, epic.Summary))
	if err != nil {
		return "", fmt.Errorf("failed to search for existing epic: %w", err)
	}

	if len(existing) > 0 {
		i.logger.Logf("Found existing epic: %s", existing[0].Key)
		result.EpicsFound++
		return existing[0].Key, nil
	}

	created, err := i.tracker.CreateIssue(tracker.CreateIssueParams{
		ProjectKey:  i.jira.ProjectKey,
		Summary:     epic.Summary,
		Description: epic.Description,
		IssueTypeID: i.jira.EpicTypeID,
	})
	if err != nil {
		return "", err
	}

	i.logger.Logf("Created epic: %s", created.Key)
	result.EpicsCreated++
	return created.Key, nil
}

// importStory finds or creates a single story, linking new stories to epicKey.
// Failures are logged and never abort sibling stories.
func (i *Importer) importStory(story StoryDefinition, epicKey string, result *Result) {
	existing, err := i.tracker.Search(i.buildSummaryQuery(i.jira.StoryTypeID, story.Summary))
	if err != nil {
		i.logger.Errorf("Error creating story %q: %v", story.Summary, err)
		result.StoriesFailed++
		return
	}

	if len(existing) > 0 {
		i.logger.Logf("Story already exists: %s", existing[0].Key)
		result.StoriesFound++
		return
	}

	created, err := i.tracker.CreateIssue(tracker.CreateIssueParams{
		ProjectKey:  i.jira.ProjectKey,
		Summary:     story.Summary,
		Description: story.Description,
		IssueTypeID: i.jira.StoryTypeID,
		EpicKey:     epicKey,
	})
	if err != nil {
		i.logger.Errorf("Error creating story %q: %v", story.Summary, err)
		result.StoriesFailed++
		return
	}

	i.logger.Logf("Created story: %s", created.Key)
	result.StoriesCreated++
}

// buildSummaryQuery builds the JQL dedup query for a summary. The ~ operator
// is a contains match, so a summary that is a substring of another will match
// both; an exact match here would change which issues count as duplicates on
// trackers populated by earlier runs.
func (i *Importer) buildSummaryQuery(issueTypeID, summary string) string {
	return fmt.Sprintf("project = %s AND issuetype = %s AND summary ~ \"%s\"",
		i.jira.ProjectKey, issueTypeID, escapeJQLString(summary))
}

// escapeJQLString escapes backslashes and quotes so a summary can be embedded
// in a quoted JQL string.
func escapeJQLString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
