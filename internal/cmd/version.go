package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the build version, git commit, build date, Go runtime and the config file in use.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgUsed := viper.ConfigFileUsed()
		if cfgUsed == "" {
			cfgUsed = "none (defaults)"
		}

		rows := [][2]string{
			{"VERSION", Version},
			{"COMMIT", GitCommit},
			{"BUILT", BuildDate},
			{"GO", runtime.Version()},
			{"OS/ARCH", runtime.GOOS + "/" + runtime.GOARCH},
			{"CONFIG", cfgUsed},
		}

		fmt.Println(styles.Title.Render("esports-stream") + "  " + styles.Value.Render("v"+Version))
		fmt.Println()
		for _, r := range rows {
			fmt.Printf("%s  %s\n", styles.Label.Width(9).Render(r[0]), styles.Value.Render(r[1]))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
