package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Dallionking/esports-stream/internal/config"
	"github.com/Dallionking/esports-stream/internal/console"
	"github.com/Dallionking/esports-stream/internal/dashboard"
	"github.com/Dallionking/esports-stream/internal/feed"
	"github.com/Dallionking/esports-stream/internal/i18n"
	"github.com/Dallionking/esports-stream/internal/logging"
	"github.com/Dallionking/esports-stream/internal/stats"
)

var (
	runDemo bool
	runOnce bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the live dashboard",
	Long: `Start the full-screen dashboard and keep it refreshed until interrupted.

Stats come from the feed file published by the watcher workers. With
--demo a simulated worker drives the dashboard instead and publishes the
feed itself, so 'esports-stream status' can follow along.

Flags:
  --demo   drive the dashboard with a simulated worker
  --once   paint a single frame from the current feed and exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, paths, err := validConfig()
		if err != nil {
			return err
		}
		if err := config.EnsureDirectories(paths); err != nil {
			return err
		}

		loc, err := i18n.New(cfg.Language)
		if err != nil {
			return err
		}
		con := console.New(os.Stdout)

		if runOnce {
			return printFrame(con, cfg, paths, loc)
		}

		var logConsole io.Writer
		if cfg.Log.Console {
			logConsole = con
		}
		run, err := logging.Setup(logging.Options{
			Dir:     paths.Logs,
			Level:   logLevel(cfg),
			Console: logConsole,
		})
		if err != nil {
			return err
		}
		defer run.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		run.WithFields(logrus.Fields{
			"version": cfg.Version,
			"demo":    runDemo,
			"log":     run.Path,
		}).Info("starting")

		return runDashboard(ctx, cfg, paths, loc, con, run.Entry)
	},
}

// runDashboard runs the renderer next to its data source until ctx ends.
// A renderer fault stops the screen from updating but not the workers.
func runDashboard(ctx context.Context, cfg *config.Config, paths *config.Paths, loc *i18n.Translator, con *console.Console, log *logrus.Entry) error {
	store := stats.NewStore()
	renderer := dashboard.NewRenderer(store, con, settingsFrom(cfg), loc, dashboard.Options{
		Interval:   cfg.Dashboard.Interval,
		BriefLines: cfg.Dashboard.BriefLogLines,
		LiveLines:  cfg.Dashboard.LiveLogLines,
		Logger:     log,
	})

	g, gctx := errgroup.WithContext(ctx)

	if runDemo {
		demo := feed.NewDemo(store, con, loc, cfg.Demo.Interval, log)
		g.Go(func() error { return demo.Run(gctx) })
		g.Go(func() error {
			return feed.Publish(gctx, store, paths.Feed, cfg.Dashboard.Interval, log)
		})
	} else {
		w, err := feed.NewWatcher(paths.Feed, store, cfg.Feed.Debounce, log)
		if err != nil {
			return err
		}
		defer w.Close()
		g.Go(func() error { return w.Run(gctx) })
	}

	g.Go(func() error {
		if err := renderer.Run(gctx); err != nil {
			log.WithError(err).Warn("dashboard stopped; workers keep running until interrupted")
			<-gctx.Done()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	log.WithField("cycles", renderer.Cycles()).Info("stopped")
	return nil
}

// printFrame paints one frame from the feed file, if any.
func printFrame(con *console.Console, cfg *config.Config, paths *config.Paths, loc *i18n.Translator) error {
	snap, err := stats.ReadFile(paths.Feed)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	w, h := con.Size()
	frame, err := dashboard.NewComposer(settingsFrom(cfg), loc).Frame(snap, 0, w, h)
	if err != nil {
		return err
	}
	con.Println(frame)
	return nil
}

func settingsFrom(cfg *config.Config) dashboard.Settings {
	return dashboard.Settings{
		NickName:    cfg.NickName,
		Version:     cfg.Version,
		SafeMode:    cfg.SafeMode(),
		MaxStream:   cfg.MaxStream,
		Proxy:       cfg.Proxy,
		Webhook:     cfg.Webhook,
		SleepPeriod: cfg.SleepPeriod,
	}
}

func init() {
	runCmd.Flags().BoolVar(&runDemo, "demo", false, "drive the dashboard with a simulated worker")
	runCmd.Flags().BoolVar(&runOnce, "once", false, "paint a single frame and exit")
	rootCmd.AddCommand(runCmd)
}
