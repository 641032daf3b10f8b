package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/notefulapp/noteful-server/internal/di/providers"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Count records and report dangling note references",
	Long: `Count every collection and list notes that still point at a deleted folder or tag.
Dangling references are left behind when a cascade's dependent step fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := do.Invoke[*providers.StoreHandle](injector)
		if err != nil {
			return err
		}

		rep, err := st.Inspect(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if inspectJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}

		fmt.Fprintf(out, "Notes:   %d\nFolders: %d\nTags:    %d\nUsers:   %d\n", rep.Notes, rep.Folders, rep.Tags, rep.Users)
		for _, ref := range rep.DanglingFolders {
			fmt.Fprintf(out, "note %s: missing folder %s\n", ref.NoteID, ref.TargetID)
		}
		for _, ref := range rep.DanglingTags {
			fmt.Fprintf(out, "note %s: missing tag %s\n", ref.NoteID, ref.TargetID)
		}
		return nil
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Write a full database backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := do.Invoke[*providers.StoreHandle](injector)
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}

		version, err := st.Backup(cmd.Context(), f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s (version %d)\n", args[0], version)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the database contents with a backup",
	Long: `Replace the database contents with a backup written by "noteful backup".

The file is checked in full before anything is touched. If it is truncated or
not a backup, restore fails and the existing data is left as it was.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		st, err := do.Invoke[*providers.StoreHandle](injector)
		if err != nil {
			return err
		}

		if err := st.Restore(cmd.Context(), f); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Restored from %s\n", args[0])
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(inspectCmd, backupCmd, restoreCmd)
}
