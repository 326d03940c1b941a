package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"onlyflans/internal/seed"
)

var (
	seedFlans    bool
	seedCreators bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample flans and creator profiles",
	Long: `Load the sample catalog. Rows that already exist (matched by name) are skipped,
so the command can be run repeatedly.

Examples:
  onlyflans seed                 # flans and creators
  onlyflans seed --creators=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedFlans, "flans", true, "Seed sample flans")
	seedCmd.Flags().BoolVar(&seedCreators, "creators", true, "Seed sample creator profiles")
}

func runSeed(cmd *cobra.Command) error {
	application, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp(application)

	services := application.Services()
	seeder := seed.New(services.Users, services.Flans, services.Creators, log)
	out := cmd.OutOrStdout()

	if seedCreators {
		result, err := seeder.Creators(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "creators: %d added, %d already present\n", result.Created, result.Skipped)
	}
	if seedFlans {
		result, err := seeder.Flans(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "flans: %d added, %d already present\n", result.Created, result.Skipped)
	}
	application.Services().Analytics.Invalidate()
	return nil
}
