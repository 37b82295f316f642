package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	// EpicLinkField is the custom field carrying the epic link on story issues.
	EpicLinkField = "customfield_10014"

	// apiBase is the Jira REST API v2 prefix.
	apiBase = "/rest/api/2"
)

// Client implements Tracker against the Jira REST API v2 using basic
// authentication with a username and API token.
type Client struct {
	baseURL    string
	username   string
	token      string
	httpClient *http.Client
}

// NewClient creates a client bound to the tracker's base URL. The https
// scheme is prefixed when absent. No connectivity check is performed;
// failures surface on the first call.
func NewClient(rawURL, username, token string) *Client {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	return &Client{
		baseURL:    strings.TrimSuffix(rawURL, "/"),
		username:   username,
		token:      token,
		httpClient: &http.Client{},
	}
}

// BaseURL returns the resolved base URL the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// issueModel is the wire representation of an issue in search responses.
type issueModel struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

// searchResponse is the wire representation of a search result page.
type searchResponse struct {
	Issues []issueModel `json:"issues"`
}

// createIssueResponse is the wire representation of a created issue.
type createIssueResponse struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// projectModel is the wire representation of a project.
type projectModel struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// issueTypeModel is the wire representation of an issue type.
type issueTypeModel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subtask bool   `json:"subtask"`
}

// fieldModel is the wire representation of a field.
type fieldModel struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Schema *struct {
		Type string `json:"type"`
	} `json:"schema"`
}

// Search executes a JQL query and returns the first page of matching issues.
// Pagination is intentionally not handled: callers only need existence.
func (c *Client) Search(jql string) ([]Issue, error) {
	query := url.Values{}
	query.Set("jql", jql)

	var response searchResponse
	if err := c.get("/search", query, &response); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	issues := make([]Issue, 0, len(response.Issues))
	for _, model := range response.Issues {
		issues = append(issues, Issue{
			ID:      model.ID,
			Key:     model.Key,
			Summary: model.Fields.Summary,
		})
	}

	return issues, nil
}

// CreateIssue creates an issue and returns it with the server-assigned key.
// The epic link custom field is set only when params.EpicKey is supplied.
func (c *Client) CreateIssue(params CreateIssueParams) (Issue, error) {
	fields := map[string]interface{}{
		"project":     map[string]string{"key": params.ProjectKey},
		"summary":     params.Summary,
		"description": params.Description,
		"issuetype":   map[string]string{"id": params.IssueTypeID},
	}
	if params.EpicKey != "" {
		fields[EpicLinkField] = params.EpicKey
	}

	var response createIssueResponse
	if err := c.post("/issue", map[string]interface{}{"fields": fields}, &response); err != nil {
		return Issue{}, fmt.Errorf("issue creation failed: %w", err)
	}

	return Issue{
		ID:      response.ID,
		Key:     response.Key,
		Summary: params.Summary,
	}, nil
}

// ListProjects returns all projects visible to the authenticated user.
func (c *Client) ListProjects() ([]Project, error) {
	var models []projectModel
	if err := c.get("/project", nil, &models); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]Project, 0, len(models))
	for _, model := range models {
		projects = append(projects, Project(model))
	}

	return projects, nil
}

// ListIssueTypes returns all issue types known to the tracker.
func (c *Client) ListIssueTypes() ([]IssueType, error) {
	var models []issueTypeModel
	if err := c.get("/issuetype", nil, &models); err != nil {
		return nil, fmt.Errorf("failed to list issue types: %w", err)
	}

	issueTypes := make([]IssueType, 0, len(models))
	for _, model := range models {
		issueTypes = append(issueTypes, IssueType(model))
	}

	return issueTypes, nil
}

// ListFields returns all fields with their schema types.
func (c *Client) ListFields() ([]Field, error) {
	var models []fieldModel
	if err := c.get("/field", nil, &models); err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}

	fields := make([]Field, 0, len(models))
	for _, model := range models {
		fieldType := "N/A"
		if model.Schema != nil && model.Schema.Type != "" {
			fieldType = model.Schema.Type
		}
		fields = append(fields, Field{
			ID:   model.ID,
			Name: model.Name,
			Type: fieldType,
		})
	}

	return fields, nil
}

// get performs an authenticated GET request and decodes the response into out.
func (c *Client) get(path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + apiBase + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	request, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return c.do(request, out)
}

// post performs an authenticated POST request with a JSON body and decodes
// the response into out.
func (c *Client) post(path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	request, err := http.NewRequest(http.MethodPost, c.baseURL+apiBase+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	return c.do(request, out)
}

// do executes the request and handles authentication and error responses.
// The remote response body is carried in the error so callers can log it.
func (c *Client) do(request *http.Request, out interface{}) error {
	request.SetBasicAuth(c.username, c.token)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", request.URL.Path, err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if response.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: check username and api_token", ErrUnauthorized)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s returned %d: %s",
			ErrRequestFailed, request.Method, request.URL.Path, response.StatusCode,
			strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return nil
}
