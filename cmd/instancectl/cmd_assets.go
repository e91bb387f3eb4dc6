package main

import (
	"github.com/spf13/cobra"
)

var assetsDebug bool

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Rebuild the instance's statics and assets",
	Args:  cobra.NoArgs,
	RunE:  runAssets,
}

func init() {
	assetsCmd.Flags().BoolVar(&assetsDebug, "debug-build", false, "build assets in debug mode")
	rootCmd.AddCommand(assetsCmd)
}

func runAssets(cmd *cobra.Command, args []string) error {
	commands, err := loadProject()
	if err != nil {
		return err
	}

	return runSteps(commands.AssetsSteps(assetsDebug))
}
