package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/grasp/internal/selector"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and GRASP_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → GRASP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("grasp")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/grasp/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/grasp", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("GRASP")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addCommonFlags adds the flags shared by the retrieval commands.
func addCommonFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "path to config file (overrides auto-discovery)")
	f.String("log-format", "auto", "log format: auto|text|json")
	f.String("log-level", "warn", "log level: debug|info|warn|error")
	f.Duration("copy-wait", 150*time.Millisecond, "budget for the target app's copy handler after a simulated copy")
	f.Duration("copy-poll", 25*time.Millisecond, "clipboard change-token poll interval inside the copy-wait budget")
}

// setupFromViper configures logging and returns the selector tuning.
func setupFromViper(v *viper.Viper) selector.Config {
	resolveLogging(v.GetString("log-format"), v.GetString("log-level"))
	return selector.Config{
		CopyWait: v.GetDuration("copy-wait"),
		CopyPoll: v.GetDuration("copy-poll"),
	}
}
