package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/notefulapp/noteful-server/internal/domain"
	"github.com/notefulapp/noteful-server/internal/service"
)

var (
	listSearch string
	listFolder string
	listTag    string
	listJSON   bool
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Inspect notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, most recently updated first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		notes, err := do.MustInvoke[*service.NoteService](injector).ListNotes(cmd.Context(), service.ListNotesRequest{
			SearchTerm: listSearch,
			FolderID:   listFolder,
			TagID:      listTag,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listJSON {
			views := make([]noteJSON, 0, len(notes))
			for _, n := range notes {
				views = append(views, toNoteJSON(n))
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		}

		if len(notes) == 0 {
			fmt.Fprintln(out, "No notes found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tFOLDER\tTAGS\tUPDATED")
		for _, n := range notes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				n.ID, n.Title, dash(n.FolderID), dash(strings.Join(n.Tags, ",")), n.UpdatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

// noteJSON matches the note shape served by the HTTP API.
type noteJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FolderID  string    `json:"folderId,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toNoteJSON(n *domain.Note) noteJSON {
	tags := make([]string, len(n.Tags))
	copy(tags, n.Tags)
	return noteJSON{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		FolderID:  n.FolderID,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	notesListCmd.Flags().StringVar(&listSearch, "search", "", "Case-insensitive substring of title or content")
	notesListCmd.Flags().StringVar(&listFolder, "folder", "", "Only notes in this folder id")
	notesListCmd.Flags().StringVar(&listTag, "tag", "", "Only notes carrying this tag id")
	notesListCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	notesCmd.AddCommand(notesListCmd)
	rootCmd.AddCommand(notesCmd)
}
