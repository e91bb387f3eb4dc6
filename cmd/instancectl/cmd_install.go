package main

import (
	"github.com/spf13/cobra"
)

var (
	installPre bool
	installDev bool
	assetDebug bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install dependencies, symlink configuration and build assets",
	Args:  cobra.NoArgs,
	RunE:  runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installPre, "pre", false, "allow pre-release dependencies when locking")
	installCmd.Flags().BoolVar(&installDev, "dev", false, "include development dependencies")
	installCmd.Flags().BoolVar(&assetDebug, "debug-build", false, "build assets in debug mode")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	commands, err := loadProject()
	if err != nil {
		return err
	}

	return runSteps(commands.InstallSteps(installPre, installDev, assetDebug))
}
