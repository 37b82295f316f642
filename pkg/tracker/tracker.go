// Package tracker provides a narrow client for the Jira REST API.
package tracker

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tracker.go -destination=mocks/tracker.gen.go -package=mocks

// Issue represents a remote issue, reduced to the fields this tool reads.
type Issue struct {
	ID      string
	Key     string
	Summary string
}

// Project represents a remote project.
type Project struct {
	ID   string
	Key  string
	Name string
}

// IssueType represents a remote issue type.
type IssueType struct {
	ID      string
	Name    string
	Subtask bool
}

// Field represents a remote field. Type is the field's schema type, or "N/A"
// when the field carries no schema.
type Field struct {
	ID   string
	Name string
	Type string
}

// CreateIssueParams contains parameters for creating an issue.
type CreateIssueParams struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueTypeID string
	// EpicKey, when non-empty, links the new issue to an epic through the
	// epic link custom field.
	EpicKey string
}

// Tracker interface defines the operations this tool needs from the remote tracker.
type Tracker interface {
	// Search executes a JQL query and returns the first page of matching issues.
	Search(jql string) ([]Issue, error)

	// CreateIssue creates an issue and returns it with the server-assigned key.
	CreateIssue(params CreateIssueParams) (Issue, error)

	// ListProjects returns all projects visible to the authenticated user.
	ListProjects() ([]Project, error)

	// ListIssueTypes returns all issue types known to the tracker.
	ListIssueTypes() ([]IssueType, error)

	// ListFields returns all fields with their schema types.
	ListFields() ([]Field, error)
}
