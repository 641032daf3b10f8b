package store

import (
	"cmp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/notefulapp/noteful-server/internal/domain"
)

// NoteFilter selects notes for a listing. Every non-empty field adds a
// clause and clauses combine with AND; the zero value matches every note.
type NoteFilter struct {
	// SearchTerm matches notes whose title or content contains it as a
	// literal, case-insensitive substring.
	SearchTerm string
	// FolderID matches notes filed in exactly this folder.
	FolderID string
	// TagID matches notes carrying this tag.
	TagID string
}

// IsEmpty reports whether the filter has no clauses.
func (f NoteFilter) IsEmpty() bool {
	return f.SearchTerm == "" && f.FolderID == "" && f.TagID == ""
}

// Match returns the predicate for f. The returned func is not safe for
// concurrent use.
func (f NoteFilter) Match() func(*domain.Note) bool {
	var clauses []func(*domain.Note) bool

	if f.SearchTerm != "" {
		fold := cases.Fold()
		term := fold.String(f.SearchTerm)
		clauses = append(clauses, func(n *domain.Note) bool {
			return strings.Contains(fold.String(n.Title), term) ||
				strings.Contains(fold.String(n.Content), term)
		})
	}

	if f.FolderID != "" {
		clauses = append(clauses, func(n *domain.Note) bool {
			return n.FolderID == f.FolderID
		})
	}

	if f.TagID != "" {
		clauses = append(clauses, func(n *domain.Note) bool {
			return n.HasTag(f.TagID)
		})
	}

	return func(n *domain.Note) bool {
		for _, c := range clauses {
			if !c(n) {
				return false
			}
		}
		return true
	}
}

// CompareNotes orders notes by most recently updated first, then by id.
func CompareNotes(a, b *domain.Note) int {
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
