package service

import (
	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
	"github.com/notefulapp/noteful-server/internal/id"
)

// checkNoteReferences validates the foreign keys a note write would store.
// folderID may be empty (no folder). Every tag must be well formed; one bad
// entry rejects the whole set. Existence is not checked.
func checkNoteReferences(folderID string, tags []string) error {
	if folderID != "" && !id.IsValid(folderID) {
		return invalidReference("folderId", folderID)
	}
	for _, t := range tags {
		if !id.IsValid(t) {
			return invalidReference("tags", t)
		}
	}
	return nil
}

func invalidReference(field, value string) *domainerrors.Error {
	if len(value) > 64 {
		value = value[:64] + "..."
	}
	return domainerrors.Validationf("Invalid `%s` value %q", field, value).
		WithDetails(map[string]string{field: value})
}
