package domain

import "slices"

// Note is a titled piece of text, optionally filed in a folder and labelled with tags.
// FolderID and Tags are plain references; the folder or tags they point at
// may no longer exist.
type Note struct {
	Record
	Title    string   `json:"title"`
	Content  string   `json:"content,omitempty"`
	FolderID string   `json:"folder_id,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// HasTag reports whether the note carries tagID.
func (n *Note) HasTag(tagID string) bool {
	return slices.Contains(n.Tags, tagID)
}

// SetTags replaces the note's tags, keeping the first occurrence of each id.
func (n *Note) SetTags(ids []string) {
	n.Tags = UniqueIDs(ids)
}

// UniqueIDs returns ids with duplicates removed, preserving first-seen order.
// The result is never nil.
func UniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
