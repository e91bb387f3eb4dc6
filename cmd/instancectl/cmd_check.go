package main

import (
	"github.com/spf13/cobra"

	"github.com/rdmlab/instancectl/pkg/compose"
	"github.com/rdmlab/instancectl/pkg/config"
	"github.com/rdmlab/instancectl/pkg/process"
	"github.com/rdmlab/instancectl/pkg/requirements"
)

var checkDev bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the required external tools are installed",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkDev, "dev", false, "also check development tooling (node, npm, ImageMagick, git)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	platformMajor, err := cfg.PlatformMajor()
	if err != nil {
		return err
	}

	runner := process.OSRunner{}
	checks := &requirements.Checks{
		Runner:  runner,
		Compose: compose.Detect(runner),
	}

	return runSteps(checks.CheckSteps(platformMajor, checkDev))
}
