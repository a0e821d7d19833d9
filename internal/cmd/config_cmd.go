package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dallionking/esports-stream/internal/config"
	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `View the effective esports-stream configuration.

Values come from config.json, overridden by ESPORTS_* environment
variables (dots become underscores, e.g. ESPORTS_DASHBOARD_INTERVAL).

Subcommands:
  validate   Check the configuration and report every problem`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, paths, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Println(styles.Title.Render("Configuration"))
		fmt.Println()

		fmt.Println(styles.Label.Render("ACCOUNT") + "   " + styles.Value.Render(cfg.NickName))
		fmt.Println(styles.Label.Render("VERSION") + "   " + styles.Value.Render(cfg.Version))
		fmt.Println(styles.Label.Render("MODE") + "      " + styles.Value.Render(cfg.Mode))
		fmt.Println(styles.Label.Render("STREAMS") + "   " + styles.Value.Render(fmt.Sprintf("%d", cfg.MaxStream)))
		fmt.Println(styles.Label.Render("LANGUAGE") + "  " + styles.Value.Render(cfg.Language))
		fmt.Println(styles.Label.Render("PROXY") + "     " + onOff(cfg.Proxy))
		fmt.Println(styles.Label.Render("WEBHOOK") + "   " + onOff(cfg.Webhook))
		fmt.Println(styles.Label.Render("SLEEP") + "     " + styles.Value.Render(orDash(cfg.SleepPeriod)))
		fmt.Println(styles.Label.Render("ROOT") + "      " + styles.Value.Render(paths.Root))
		fmt.Println()

		fmt.Println(styles.Divider(50))
		fmt.Println()

		fmt.Println(styles.Bold("Dashboard"))
		fmt.Printf("  interval=%s brief=%d live=%d forceColor=%t\n",
			cfg.Dashboard.Interval, cfg.Dashboard.BriefLogLines, cfg.Dashboard.LiveLogLines, cfg.Dashboard.ForceColor)
		fmt.Println()

		fmt.Println(styles.Bold("Files"))
		fmt.Println("  " + styles.Dim("feed ") + " " + paths.Feed + styles.Dim(fmt.Sprintf("  (debounce %s)", cfg.Feed.Debounce)))
		fmt.Println("  " + styles.Dim("logs ") + " " + paths.Logs + styles.Dim("  ("+cfg.Log.Level+")"))
		fmt.Println("  " + styles.Dim("drops") + " " + paths.DropsHistory)

		return nil
	},
}

// --- config validate ---

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, paths, err := loadConfig()
		if err != nil {
			return err
		}

		errs := config.Validate(cfg)
		if len(errs) == 0 {
			fmt.Println(styles.StatusBadge("ok") + " " + styles.Dim(paths.Config))
			return nil
		}

		fmt.Println(styles.StatusBadge("error") + " " + styles.Dim(paths.Config))
		for _, e := range errs {
			fmt.Println("  " + styles.Red("x") + " " + e.Error())
		}
		return fmt.Errorf("%d config problem(s)", len(errs))
	},
}

func onOff(v string) string {
	if v == "" {
		return styles.Dim("off")
	}
	return styles.Green("on")
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
