package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/config"
	"github.com/mrlokans/storyplanner/internal/entrypoint"
	"github.com/mrlokans/storyplanner/internal/importers"
	"github.com/mrlokans/storyplanner/internal/logging"
	"github.com/mrlokans/storyplanner/internal/services"
)

// TokenEnvVar is read when -token is not given, so the token stays out of
// shell history.
const TokenEnvVar = "NOTION_TOKEN"

// DefaultCLIUser owns projects imported from the command line when -user is omitted.
const DefaultCLIUser = "local"

// referenceList collects repeated -ref flags. Comma separated values are split.
type referenceList []string

func (r *referenceList) String() string { return strings.Join(*r, ",") }

func (r *referenceList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*r = append(*r, part)
		}
	}
	return nil
}

// NotionImportCommand imports Notion databases into a new project.
type NotionImportCommand struct {
	References   referenceList
	Token        string
	ProjectName  string
	UserID       string
	DatabasePath string
	JSON         bool
	Force        bool
	Verbose      bool

	out    io.Writer
	getenv func(string) string
}

func NewNotionImportCommand() *NotionImportCommand {
	return &NotionImportCommand{out: os.Stdout, getenv: os.Getenv}
}

func (cmd *NotionImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("notion-import", flag.ContinueOnError)

	fs.Var(&cmd.References, "ref", "Notion database id or share URL (repeatable, required)")
	fs.StringVar(&cmd.Token, "token", "", "Notion integration token (default: $"+TokenEnvVar+")")
	fs.StringVar(&cmd.ProjectName, "name", importers.DefaultProjectName, "Name of the project to create")
	fs.StringVar(&cmd.UserID, "user", DefaultCLIUser, "User that owns the imported project")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.JSON, "json", false, "Print the import report as JSON")
	fs.BoolVar(&cmd.Force, "force", false, "Skip the subscription check")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s notion-import -ref <id|url> [-ref ...] [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import Notion databases into a new story planner project.\n\n")
		fmt.Fprintf(os.Stderr, "Each database is classified by its name and columns as characters,\n")
		fmt.Fprintf(os.Stderr, "plot threads, chapters, locations or world building.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s=secret_xxx %s notion-import -ref https://www.notion.so/acme/Cast-0123456789abcdef0123456789abcdef\n\n", TokenEnvVar, os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s notion-import -ref <id1>,<id2> -name \"Book One\" -json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(cmd.References) == 0 {
		return fmt.Errorf("required flag -ref not provided")
	}
	if cmd.Token == "" {
		cmd.Token = strings.TrimSpace(cmd.getenv(TokenEnvVar))
	}
	if cmd.Token == "" {
		return fmt.Errorf("no token: pass -token or set %s", TokenEnvVar)
	}

	return nil
}

func (cmd *NotionImportCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	cfg := config.NewConfig()
	cfg.Database.Path = absDBPath

	level := "warn"
	if cmd.Verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(config.Logging{Level: level, Development: true})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	var gate services.EligibilityChecker
	if cmd.Force {
		gate = allowAll{}
	}

	app, err := entrypoint.NewApp(cfg, logger, gate)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting import",
		zap.Strings("references", cmd.References),
		zap.String("database", absDBPath))

	report, err := app.Imports.Run(ctx, services.ImportRequest{
		References:  cmd.References,
		Token:       cmd.Token,
		ProjectName: cmd.ProjectName,
		UserID:      cmd.UserID,
	})
	if errors.Is(err, services.ErrNotEligible) {
		return fmt.Errorf("%w (use -force to import anyway)", err)
	}
	if err != nil {
		return err
	}

	if err := cmd.print(report); err != nil {
		return err
	}
	if !report.Success {
		return errors.New("nothing was imported")
	}
	return nil
}

func (cmd *NotionImportCommand) print(report importers.Report) error {
	if cmd.JSON {
		enc := json.NewEncoder(cmd.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	w := cmd.out
	fmt.Fprintln(w, "Notion Import")
	fmt.Fprintln(w, "=============")
	if report.ProjectID != "" {
		fmt.Fprintf(w, "Project: %s\n", report.ProjectID)
	}

	fmt.Fprintln(w, "\n=== Imported ===")
	fmt.Fprintf(w, "Characters:     %d\n", report.Imported.Characters)
	fmt.Fprintf(w, "Plot threads:   %d\n", report.Imported.PlotThreads)
	fmt.Fprintf(w, "Chapters:       %d\n", report.Imported.Chapters)
	fmt.Fprintf(w, "Locations:      %d\n", report.Imported.Locations)
	fmt.Fprintf(w, "World elements: %d\n", report.Imported.WorldElements)
	fmt.Fprintf(w, "Outline nodes:  %d\n", report.Imported.OutlineNodes)

	dist := report.PlanningPageDistribution
	sections := []struct {
		title string
		notes []string
	}{
		{"Characters page", dist.CharactersPage},
		{"Plot page", dist.PlotPage},
		{"World building page", dist.WorldBuildingPage},
		{"Outline page", dist.OutlinePage},
	}
	for _, s := range sections {
		if len(s.notes) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", s.title)
		for _, n := range s.notes {
			fmt.Fprintf(w, "  - %s\n", n)
		}
	}

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "\n%d errors occurred:\n", len(report.Errors))
		for _, e := range report.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", e)
		}
	}
	return nil
}

type allowAll struct{}

func (allowAll) CanImport(context.Context, string) bool { return true }
