// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the seal-advisor CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/seal-advisor/internal/session"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the seal-advisor CLI.
var rootCmd = &cobra.Command{
	Use:   "seal-advisor",
	Short: "Mechanical seal recommendation and pump hydraulic analysis",
	Long: `seal-advisor recommends an API 682 mechanical seal configuration for a
pumping service and checks the suction side for cavitation.

Describe the service with a YAML profile (--profile) or with flags. The
recommend command runs the hydraulic analysis, classifies the seal, lists
mitigations and records the result in a local history. Past results are
managed with the history command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv(".env")
	},
}

// loadDotEnv exports the variables in path so SEAL_ADVISOR_* settings can
// live beside the working directory. Variables already set in the
// environment win. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	fmt.Fprintln(os.Stderr, "Loaded environment from", path)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./seal-advisor.yaml or ~/.config/seal-advisor/seal-advisor.yaml)")
	rootCmd.PersistentFlags().String("store-dir", "data", "base directory for the history database and exports")
	rootCmd.PersistentFlags().Int("history-limit", session.DefaultLimit, "number of entries kept in the history (0 = unbounded)")

	viper.SetDefault("store.dir", "data")
	viper.SetDefault("history.limit", session.DefaultLimit)
	_ = viper.BindPFlag("store.dir", rootCmd.PersistentFlags().Lookup("store-dir"))
	_ = viper.BindPFlag("history.limit", rootCmd.PersistentFlags().Lookup("history-limit"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("seal-advisor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "seal-advisor"))
		}
	}

	viper.SetEnvPrefix("SEAL_ADVISOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// advisorConfig returns the effective configuration after flags,
// environment and config file have been merged.
func advisorConfig() types.AdvisorConfig {
	limit := viper.GetInt("history.limit")
	if limit < 0 {
		limit = 0
	}
	return types.AdvisorConfig{
		Store:   types.StoreConfig{Dir: viper.GetString("store.dir")},
		History: types.HistoryConfig{Limit: limit},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
