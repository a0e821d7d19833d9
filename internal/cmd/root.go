package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/esports-stream/internal/config"
	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "esports-stream",
	Short: "Live terminal dashboard for the esports drops agent",
	Long: `esports-stream watches esports live streams for drops and shows
progress on a full-screen terminal dashboard.

Run 'esports-stream run' to start the dashboard, or 'esports-stream run
--demo' to see it driven by a simulated worker.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styles.Title.Render("esports-stream") + " " + styles.Dim("v"+Version))
		fmt.Println("Run 'esports-stream --help' for available commands")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.json in the project root)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		viper.AddConfigPath(".")
		if root, err := config.DetectProjectRoot(); err == nil {
			viper.AddConfigPath(root)
		}
	}
	viper.SetEnvPrefix("ESPORTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	styles.SetColorMode(false, noColor)
}

// loadConfig decodes the config viper has read and resolves its paths.
func loadConfig() (*config.Config, *config.Paths, error) {
	root, err := config.DetectProjectRoot()
	if err != nil {
		return nil, nil, fmt.Errorf("detecting project root: %w", err)
	}

	cfg, err := config.Load(viper.GetViper(), root)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	styles.SetColorMode(cfg.Dashboard.ForceColor, noColor)
	return cfg, config.NewPaths(root, cfg), nil
}

// validConfig is loadConfig plus validation.
func validConfig() (*config.Config, *config.Paths, error) {
	cfg, paths, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, nil, fmt.Errorf("invalid config: %s", errs[0].Error())
	}
	return cfg, paths, nil
}

// logLevel is the configured level, raised to debug by --verbose.
func logLevel(cfg *config.Config) string {
	if verbose {
		return "debug"
	}
	return cfg.Log.Level
}
