package domain

import "slices"

// DetachFolder clears the note's folder if it is folderID.
// It reports whether the note changed and touches it when it did.
func DetachFolder(n *Note, folderID string) bool {
	if folderID == "" || n.FolderID != folderID {
		return false
	}
	n.FolderID = ""
	n.Touch()
	return true
}

// PullTag removes every occurrence of tagID from the note's tags.
// It reports whether the note changed and touches it when it did.
func PullTag(n *Note, tagID string) bool {
	if !n.HasTag(tagID) {
		return false
	}
	n.Tags = slices.DeleteFunc(n.Tags, func(t string) bool { return t == tagID })
	n.Touch()
	return true
}
