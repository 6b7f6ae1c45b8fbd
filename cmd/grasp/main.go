// grasp: grab the user's current selection.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"go.klb.dev/grasp/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	// Optional .env next to the working directory; real env vars win.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "grasp",
		Short: "Grab the user's current selection",
		Long: `grasp retrieves whatever the user currently has selected (highlighted
text, a selected file, or image data) using the least invasive OS facility
available: the accessibility / UI-automation tree first, and a clipboard-safe
simulated copy only as a fallback. The clipboard is always restored to its
prior state.

Config file search order (first found wins):
  /etc/grasp/grasp.toml
  $HOME/.config/grasp/grasp.toml
  path supplied via --config

All flags can be set via GRASP_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newGetCmd(),
		newTextCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("grasp %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(formatStr, levelStr string) {
	logging.Setup(logging.ParseFormat(formatStr), logging.ParseLevel(levelStr))
}
