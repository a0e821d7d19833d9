package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Dallionking/esports-stream/internal/config"
	"github.com/Dallionking/esports-stream/internal/dashboard"
	"github.com/Dallionking/esports-stream/internal/feed"
	"github.com/Dallionking/esports-stream/internal/i18n"
	"github.com/Dallionking/esports-stream/internal/stats"
	"github.com/Dallionking/esports-stream/internal/tui/styles"
	"github.com/Dallionking/esports-stream/internal/tui/viewer"
)

var (
	statusOnce bool
	statusJSON bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Follow a running agent's dashboard or print a snapshot",
	Long: `Open a read-only view of the dashboard of an agent running elsewhere.

The view follows the feed file the agent publishes. It never touches the
agent's terminal.

Flags:
  --once   print a short status snapshot and exit (no TUI)
  --json   output the raw stats snapshot as JSON (implies --once)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if statusJSON {
			statusOnce = true
		}

		cfg, paths, err := validConfig()
		if err != nil {
			return err
		}

		if statusOnce {
			return printStatusSnapshot(cfg, paths)
		}

		loc, err := i18n.New(cfg.Language)
		if err != nil {
			return err
		}

		// The viewer owns the screen, so logs stay out of it.
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.ErrorLevel)

		store := stats.NewStore()
		w, err := feed.NewWatcher(paths.Feed, store, cfg.Feed.Debounce, log)
		if err != nil {
			return err
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go w.Run(ctx)

		m := viewer.NewModel(
			dashboard.NewComposer(settingsFrom(cfg), loc),
			store,
			w.Updates(),
			w.Load,
			cfg.Dashboard.Interval,
		)
		return viewer.Run(ctx, m)
	},
}

// printStatusSnapshot outputs a single-shot status report.
func printStatusSnapshot(cfg *config.Config, paths *config.Paths) error {
	snap, err := stats.ReadFile(paths.Feed)
	missing := errors.Is(err, fs.ErrNotExist)
	if err != nil && !missing {
		return err
	}

	if statusJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	fmt.Println(styles.Title.Render("Status Snapshot"))
	fmt.Println()

	feedLabel := styles.StatusBadge("ok") + " " + styles.Dim(paths.Feed)
	if missing {
		feedLabel = styles.StatusBadge("warn") + " " + styles.Dim("no feed published yet")
	}
	fmt.Println(styles.Label.Render("FEED") + "      " + feedLabel)
	fmt.Println(styles.Label.Render("ACCOUNT") + "   " + styles.Value.Render(cfg.NickName))
	fmt.Println(styles.Label.Render("STATUS") + "    " + styles.Value.Render(orDash(snap.Status)))
	fmt.Println(styles.Label.Render("DROPS") + "     " + styles.Value.Render(dashboard.FormatDrops(snap.InitDrops, snap.CurrentDrops)))
	fmt.Println(styles.Label.Render("HOURS") + "     " + styles.Value.Render(dashboard.FormatWatchHours(snap.InitWatchHours, snap.CurrentWatchHours)))
	fmt.Println(styles.Label.Render("NEXT") + "      " + styles.Value.Render(orDash(snap.NextCheckTime)))
	fmt.Println()
	fmt.Println(styles.Divider(50))
	fmt.Println()

	if len(snap.Streams) == 0 {
		fmt.Println(styles.Dim("  No live streams"))
		return nil
	}
	for _, s := range snap.Streams {
		fmt.Printf("  %s  %-8s %s\n", streamBadge(s.State), styles.Bold(s.Region), styles.Dim(s.Title))
	}
	if len(snap.SessionDrops) > 0 {
		fmt.Println()
		fmt.Println(styles.Label.Render("SESSION DROPS"))
		fmt.Println("  " + strings.Join(snap.SessionDrops, "\n  "))
	}
	fmt.Println()

	return nil
}

func streamBadge(s stats.StreamState) string {
	switch s {
	case stats.StreamWatching:
		return styles.StatusBadge("ok")
	case stats.StreamNoDrops, stats.StreamStuck:
		return styles.StatusBadge("warn")
	default:
		return styles.StatusBadge("error")
	}
}

func orDash(s string) string {
	if s == "" {
		return dashboard.Placeholder
	}
	return s
}

func init() {
	statusCmd.Flags().BoolVar(&statusOnce, "once", false, "print a single snapshot and exit")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output status as JSON (implies --once)")
	rootCmd.AddCommand(statusCmd)
}
