package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rdmlab/instancectl/pkg/logger"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:     "instancectl",
	Short:   "Provision and validate a local application instance",
	Long:    "Instancectl checks external tooling requirements and installs dependencies, configuration symlinks and assets for a local application instance.",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "instancectl.yaml", "path to the project config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
