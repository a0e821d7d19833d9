package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dallionking/esports-stream/internal/console"
	"github.com/Dallionking/esports-stream/internal/health"
	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

var (
	healthCheck    string
	healthCategory string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run configuration, file, terminal and feed checks",
	Long: `Run diagnostic health checks before starting the dashboard.

Checks are grouped into categories:
  config    - config.json, validation, language
  files     - log directory, drop history
  terminal  - TTY detection, terminal size
  feed      - stats feed presence and freshness

Use --category to run only a specific group, or --check to run a single
named check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, paths, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Println(styles.Title.Render("Health Check"))
		fmt.Println()

		checker := health.NewChecker(cfg, paths, console.New(os.Stdout))
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		var report *health.Report
		switch {
		case healthCheck != "":
			report = checker.RunCheck(ctx, healthCheck)
		case healthCategory != "":
			fmt.Println(styles.Label.Render("CATEGORY") + "  " + styles.Value.Render(healthCategory))
			report = checker.RunCategory(ctx, healthCategory)
		default:
			report = checker.RunAll(ctx)
		}

		if report.Total == 0 {
			return fmt.Errorf("no checks matched")
		}

		fmt.Println(health.FormatReport(report))
		if !report.Healthy {
			return fmt.Errorf("%d check(s) failed", report.Failed)
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().StringVar(&healthCheck, "check", "", "run a specific named check")
	healthCmd.Flags().StringVar(&healthCategory, "category", "", "run checks in a category: config, files, terminal, or feed")
	rootCmd.AddCommand(healthCmd)
}
