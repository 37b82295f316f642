//go:build unit

package metadata

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lerenn/jira-importer/pkg/tracker"
	"github.com/lerenn/jira-importer/pkg/tracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testProjects = []tracker.Project{
	{ID: "10000", Key: "PROJ", Name: "Project One"},
	{ID: "10001", Key: "OTHER", Name: "Project Two"},
}

func TestReporter_Report_FullDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)
	mockTracker.EXPECT().ListProjects().Return(testProjects, nil)
	mockTracker.EXPECT().ListIssueTypes().Return([]tracker.IssueType{
		{ID: "10000", Name: "Epic", Subtask: false},
		{ID: "10003", Name: "Sub-task", Subtask: true},
	}, nil)
	mockTracker.EXPECT().ListFields().Return([]tracker.Field{
		{ID: "summary", Name: "Summary", Type: "string"},
		{ID: "issuekey", Name: "Key", Type: "N/A"},
	}, nil)

	var out bytes.Buffer
	reporter := NewReporter(NewReporterParams{
		Tracker:    mockTracker,
		ProjectKey: "PROJ",
		Out:        &out,
	})

	require.NoError(t, reporter.Report())

	output := out.String()
	assert.Contains(t, output, "=== Available Projects ===")
	assert.Contains(t, output, "Project One")
	assert.Contains(t, output, "=== Issue Types for Project PROJ ===")
	assert.Contains(t, output, "Sub-task")
	assert.Contains(t, output, "true")
	assert.Contains(t, output, "=== Available Fields ===")
	assert.Contains(t, output, "N/A")
}

func TestReporter_Report_NoProjectKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Only the project list may be fetched: no issue type or field calls.
	mockTracker := mocks.NewMockTracker(ctrl)
	mockTracker.EXPECT().ListProjects().Return(testProjects, nil)

	var out bytes.Buffer
	reporter := NewReporter(NewReporterParams{
		Tracker: mockTracker,
		Out:     &out,
	})

	require.NoError(t, reporter.Report())

	output := out.String()
	assert.Contains(t, output, "=== Available Projects ===")
	assert.NotContains(t, output, "Issue Types")
	assert.NotContains(t, output, "Available Fields")
}

func TestReporter_Report_UnknownProjectKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)
	mockTracker.EXPECT().ListProjects().Return(testProjects, nil)

	var out bytes.Buffer
	reporter := NewReporter(NewReporterParams{
		Tracker:    mockTracker,
		ProjectKey: "NOPE",
		Out:        &out,
	})

	require.NoError(t, reporter.Report())
	assert.NotContains(t, out.String(), "Issue Types")
}

func TestReporter_Report_ListProjectsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)
	mockTracker.EXPECT().ListProjects().Return(nil, errors.New("boom"))

	var out bytes.Buffer
	reporter := NewReporter(NewReporterParams{
		Tracker: mockTracker,
		Out:     &out,
	})

	assert.Error(t, reporter.Report())
}

func TestReporter_Report_ListFieldsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)
	mockTracker.EXPECT().ListProjects().Return(testProjects, nil)
	mockTracker.EXPECT().ListIssueTypes().Return([]tracker.IssueType{}, nil)
	mockTracker.EXPECT().ListFields().Return(nil, errors.New("boom"))

	var out bytes.Buffer
	reporter := NewReporter(NewReporterParams{
		Tracker:    mockTracker,
		ProjectKey: "PROJ",
		Out:        &out,
	})

	assert.Error(t, reporter.Report())
}
