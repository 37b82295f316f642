// Package main provides the command-line interface for the Jira importer.
package main

import (
	"errors"
	"log"

	"github.com/lerenn/jira-importer/pkg/config"
	"github.com/lerenn/jira-importer/pkg/importer"
	"github.com/lerenn/jira-importer/pkg/logger"
	"github.com/lerenn/jira-importer/pkg/metadata"
	"github.com/lerenn/jira-importer/pkg/tracker"
	"github.com/spf13/cobra"
)

var metadataOnly bool

var errStoriesFileRequired = errors.New("stories file argument is required unless --metadata is set")

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jira-importer <config.yaml> [stories.json]",
		Short: "Import epics and stories into Jira",
		Long: `Import epics and stories described in a JSON document into Jira,
deduplicating by summary and linking stories to their epic.

Examples:
  jira-importer config.yaml stories.json
  jira-importer config.yaml --metadata`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().BoolVar(&metadataOnly, "metadata", false, "Print tracker metadata instead of importing")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}

	loggerInstance, err := logger.NewFileLogger(logger.DefaultLogFile)
	if err != nil {
		return err
	}

	client := tracker.NewClient(cfg.Jira.URL, cfg.Jira.Username, cfg.Jira.APIToken)
	loggerInstance.Logf("Connecting to Jira at: %s", client.BaseURL())

	if metadataOnly {
		reporter := metadata.NewReporter(metadata.NewReporterParams{
			Tracker:    client,
			ProjectKey: cfg.Jira.ProjectKey,
			Logger:     loggerInstance,
		})
		return reporter.Report()
	}

	if len(args) < 2 {
		_ = cmd.Usage()
		return errStoriesFileRequired
	}

	storyImporter := importer.NewImporter(importer.NewImporterParams{
		Tracker: client,
		Jira:    cfg.Jira,
		Logger:  loggerInstance,
	})

	// Per-epic and per-story failures are logged inside the importer and do
	// not change the exit code; only a broken stories document does.
	_, err = storyImporter.Import(args[1])
	return err
}

// loadConfig loads the configuration, relaxing the project and type id
// requirements in metadata mode.
func loadConfig(configPath string) (*config.Config, error) {
	manager := config.NewManager()

	if metadataOnly {
		return manager.LoadConfigForMetadata(configPath)
	}
	return manager.LoadConfig(configPath)
}

func main() {
	if err := createRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
