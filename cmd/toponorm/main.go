// Package main is the entry point for the toponorm CLI. It wraps the
// simplicial and normalization packages into a small pipeline: read a
// graph, lift it to a clique complex, assemble the boundary operators,
// normalize them, and write the results to disk.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the toponorm CLI.
var rootCmd = &cobra.Command{
	Use:   "toponorm",
	Short: "Normalized boundary operators for 2-dimensional simplicial complexes",
	Long: `toponorm builds a clique complex from an undirected graph, assembles its
vertex-edge and edge-triangle boundary operators, and applies degree-based
diagonal normalization to both (and their transposes).

The normalize subcommand runs the full pipeline and writes the four
normalized operators as CSV plus a YAML summary of the complex.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./toponorm.yaml or ~/.config/toponorm/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("toponorm")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "toponorm"))
		}
	}

	viper.SetEnvPrefix("TOPONORM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
