package main

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/notefulapp/noteful-server/internal/di/providers"
	"github.com/notefulapp/noteful-server/internal/seed"
)

var (
	seedFile  string
	seedReset bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load folders, tags and notes from a YAML fixture file",
	Long: `Load fixtures into the database. Without --file the bundled demo data is used.
Fixture ids are fixed, so seeding twice fails unless --reset wipes the database first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			fx  *seed.Fixtures
			err error
		)
		if seedFile != "" {
			fx, err = seed.LoadFile(seedFile)
		} else {
			fx, err = seed.Default()
		}
		if err != nil {
			return err
		}

		st, err := do.Invoke[*providers.StoreHandle](injector)
		if err != nil {
			return err
		}

		res, err := seed.Apply(cmd.Context(), st, fx, seedReset)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d folders, %d tags, %d notes\n", res.Folders, res.Tags, res.Notes)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML fixture file")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Delete all existing data before seeding")
	rootCmd.AddCommand(seedCmd)
}
