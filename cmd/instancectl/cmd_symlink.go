package main

import (
	"github.com/spf13/cobra"
)

var symlinkCmd = &cobra.Command{
	Use:   "symlink",
	Short: "Symlink project configuration into the instance",
	Args:  cobra.NoArgs,
	RunE:  runSymlink,
}

func init() {
	rootCmd.AddCommand(symlinkCmd)
}

func runSymlink(cmd *cobra.Command, args []string) error {
	commands, err := loadProject()
	if err != nil {
		return err
	}

	return runSteps(commands.SymlinkSteps())
}
