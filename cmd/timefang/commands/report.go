// Package commands implements CLI command handlers for timefang.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/Sumatoshi-tech/timefang/pkg/config"
	"github.com/Sumatoshi-tech/timefang/pkg/gitlib"
	"github.com/Sumatoshi-tech/timefang/pkg/observability"
	"github.com/Sumatoshi-tech/timefang/pkg/worklog"
)

// reportExecutor runs the report pipeline. Injected so command wiring can be
// tested without a real repository.
type reportExecutor func(path string, cfg *config.Config, writer, progressWriter io.Writer) error

// ReportCommand holds configuration and dependencies for the report command.
type ReportCommand struct {
	path        string
	format      string
	limit       int
	firstParent bool
	since       string
	silent      bool
	noColor     bool
	configPath  string

	exec reportExecutor
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	return newReportCommandWithDeps(runReport)
}

func newReportCommandWithDeps(exec reportExecutor) *cobra.Command {
	rc := &ReportCommand{exec: exec}

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Aggregate logged time per day and ticket",
		Long: "Walk the commit history reachable from HEAD, extract time-tracking " +
			"commands from commit messages and print logged time per day and ticket.",
		Args: cobra.MaximumNArgs(1),
		RunE: rc.run,
	}

	cmd.Flags().StringVarP(&rc.path, "path", "p", ".", "Directory to discover the repository from")
	cmd.Flags().StringVar(&rc.format, "format", worklog.FormatText, "Output format: text, json, yaml, table, plot")
	cmd.Flags().IntVar(&rc.limit, "limit", 0, "Limit number of commits to scan (0 = no limit)")
	cmd.Flags().BoolVar(&rc.firstParent, "first-parent", false, "Follow only first parent of merge commits")
	cmd.Flags().StringVar(&rc.since, "since", "", "Only scan commits after this time (e.g. '24h', '2024-01-01', RFC3339)")
	cmd.Flags().BoolVar(&rc.silent, "silent", false, "Disable progress output")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored table output")
	cmd.Flags().StringVar(&rc.configPath, "config", "", "Config file path (default: ./timefang.yaml)")

	return cmd
}

func (rc *ReportCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := rc.resolveConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Report.NoColor {
		color.NoColor = true
	}

	return rc.exec(rc.resolvePath(args), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func (rc *ReportCommand) resolvePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return rc.path
}

// resolveConfig layers changed flags over file and environment configuration.
func (rc *ReportCommand) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(rc.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("format") {
		cfg.Report.Format = rc.format
	}

	if cmd.Flags().Changed("limit") {
		cfg.Report.Limit = rc.limit
	}

	if cmd.Flags().Changed("first-parent") {
		cfg.Report.FirstParent = rc.firstParent
	}

	if cmd.Flags().Changed("since") {
		cfg.Report.Since = rc.since
	}

	if cmd.Flags().Changed("silent") {
		cfg.Report.Silent = rc.silent
	}

	if rc.isQuiet(cmd) {
		cfg.Report.Silent = true
	}

	if cmd.Flags().Changed("no-color") {
		cfg.Report.NoColor = rc.noColor
	}

	normalized, err := worklog.ValidateFormat(cfg.Report.Format)
	if err != nil {
		return nil, err
	}

	cfg.Report.Format = normalized

	return cfg, nil
}

func (rc *ReportCommand) isQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return false
	}

	return quiet
}

// runReport is the production executor: discover the repository, fold its
// history through the worklog analyzer and serialize the report.
func runReport(path string, cfg *config.Config, writer, progressWriter io.Writer) error {
	logger := observability.NewLogger(progressWriter, cfg.Logging.Level)
	if cfg.Report.Silent {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, span := otel.Tracer("timefang").Start(context.Background(), "timefang.report")
	defer span.End()

	startedAt := time.Now()

	repository, err := gitlib.DiscoverRepository(path)
	if errors.Is(err, gitlib.ErrRepositoryNotFound) {
		logger.InfoContext(ctx, "no repository found, producing empty report", "path", path)

		empty := worklog.BuildReport(worklog.NewAggregate(), worklog.ReportStats{})

		return empty.Serialize(cfg.Report.Format, writer)
	}

	if err != nil {
		return err
	}
	defer repository.Free()

	commits, err := gitlib.LoadCommits(repository, gitlib.CommitLoadOptions{
		Limit:       cfg.Report.Limit,
		FirstParent: cfg.Report.FirstParent,
		Since:       cfg.Report.Since,
	})
	if err != nil {
		return fmt.Errorf("load commits: %w", err)
	}

	logger.DebugContext(ctx, "commits loaded", "count", len(commits), "path", repository.Path())

	analyzer := worklog.NewAnalyzer()

	for index, commit := range commits {
		consumeErr := analyzer.Consume(&worklog.Context{Commit: commit, Index: index})
		if consumeErr != nil {
			return fmt.Errorf("consume commit %s: %w", commit.Hash(), consumeErr)
		}
	}

	report, err := analyzer.Finalize()
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "history folded",
		"commits", len(commits),
		"matched", report.CommitsMatched,
		"total_minutes", report.TotalMinutes,
		"elapsed", time.Since(startedAt).Round(time.Millisecond).String(),
	)

	return report.Serialize(cfg.Report.Format, writer)
}
