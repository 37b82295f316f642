// Package metadata prints tracker metadata to help authoring the configuration.
package metadata

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lerenn/jira-importer/pkg/logger"
	"github.com/lerenn/jira-importer/pkg/tracker"
)

// Reporter prints the tracker's projects, issue types and fields.
type Reporter struct {
	tracker    tracker.Tracker
	projectKey string
	logger     logger.Logger
	out        io.Writer
}

// NewReporterParams contains parameters for creating a new Reporter.
type NewReporterParams struct {
	Tracker    tracker.Tracker
	ProjectKey string
	Logger     logger.Logger
	Out        io.Writer
}

// NewReporter creates a new Reporter. Out defaults to stdout.
func NewReporter(params NewReporterParams) *Reporter {
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	loggerInstance := params.Logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNoopLogger()
	}

	return &Reporter{
		tracker:    params.Tracker,
		projectKey: params.ProjectKey,
		logger:     loggerInstance,
		out:        out,
	}
}

// Report prints all projects and, when the configured project key is known to
// the tracker, the issue types and fields. Any fetch failure is logged and
// returned; the remote response body travels inside the wrapped error.
func (r *Reporter) Report() error {
	projects, err := r.tracker.ListProjects()
	if err != nil {
		r.logger.Errorf("Error fetching metadata: %v", err)
		return err
	}

	r.printSection("Available Projects")
	w := r.newTabWriter()
	fmt.Fprintln(w, "Project Key\tName\tID")
	for _, project := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\n", project.Key, project.Name, project.ID)
	}
	_ = w.Flush()

	// Issue types and fields are only meaningful relative to a project the
	// tracker actually knows about.
	if r.projectKey == "" || !containsProject(projects, r.projectKey) {
		return nil
	}

	issueTypes, err := r.tracker.ListIssueTypes()
	if err != nil {
		r.logger.Errorf("Error fetching metadata: %v", err)
		return err
	}

	r.printSection(fmt.Sprintf("Issue Types for Project %s", r.projectKey))
	w = r.newTabWriter()
	fmt.Fprintln(w, "ID\tName\tSubtask")
	for _, issueType := range issueTypes {
		fmt.Fprintf(w, "%s\t%s\t%t\n", issueType.ID, issueType.Name, issueType.Subtask)
	}
	_ = w.Flush()

	fields, err := r.tracker.ListFields()
	if err != nil {
		r.logger.Errorf("Error fetching metadata: %v", err)
		return err
	}

	r.printSection("Available Fields")
	w = r.newTabWriter()
	fmt.Fprintln(w, "ID\tName\tType")
	for _, field := range fields {
		fmt.Fprintf(w, "%s\t%s\t%s\n", field.ID, field.Name, field.Type)
	}
	_ = w.Flush()

	return nil
}

// printSection prints a section header.
func (r *Reporter) printSection(title string) {
	fmt.Fprintf(r.out, "\n=== %s ===\n", title)
}

// newTabWriter returns a tab writer aligning section columns.
func (r *Reporter) newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(r.out, 0, 8, 2, ' ', 0)
}

// containsProject reports whether the project key appears in projects.
func containsProject(projects []tracker.Project, key string) bool {
	for _, project := range projects {
		if project.Key == key {
			return true
		}
	}
	return false
}
