package api

import (
	"time"

	"github.com/notefulapp/noteful-server/internal/domain"
)

// NoteResponse contains note data in API responses.
type NoteResponse struct {
	ID        string    `json:"id" doc:"Note ID"`
	Title     string    `json:"title" doc:"Note title"`
	Content   string    `json:"content" doc:"Note body"`
	FolderID  string    `json:"folderId,omitempty" doc:"Folder the note is filed in"`
	Tags      []string  `json:"tags" doc:"Tag IDs"`
	CreatedAt time.Time `json:"createdAt" doc:"Creation time"`
	UpdatedAt time.Time `json:"updatedAt" doc:"Last update time"`
}

// FolderResponse contains folder data in API responses.
type FolderResponse struct {
	ID        string    `json:"id" doc:"Folder ID"`
	Name      string    `json:"name" doc:"Folder name"`
	CreatedAt time.Time `json:"createdAt" doc:"Creation time"`
	UpdatedAt time.Time `json:"updatedAt" doc:"Last update time"`
}

// TagResponse contains tag data in API responses.
type TagResponse struct {
	ID        string    `json:"id" doc:"Tag ID"`
	Name      string    `json:"name" doc:"Tag name"`
	CreatedAt time.Time `json:"createdAt" doc:"Creation time"`
	UpdatedAt time.Time `json:"updatedAt" doc:"Last update time"`
}

// UserResponse contains user data in API responses. Password material is
// never included.
type UserResponse struct {
	ID        string    `json:"id" doc:"User ID"`
	Fullname  string    `json:"fullname" doc:"Display name"`
	Username  string    `json:"username" doc:"Login name"`
	CreatedAt time.Time `json:"createdAt" doc:"Creation time"`
	UpdatedAt time.Time `json:"updatedAt" doc:"Last update time"`
}

func toNoteResponse(n *domain.Note) NoteResponse {
	tags := make([]string, len(n.Tags))
	copy(tags, n.Tags)
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		FolderID:  n.FolderID,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []*domain.Note) []NoteResponse {
	out := make([]NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out
}

func toFolderResponse(f *domain.Folder) FolderResponse {
	return FolderResponse{ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt}
}

func toFolderResponses(folders []*domain.Folder) []FolderResponse {
	out := make([]FolderResponse, len(folders))
	for i, f := range folders {
		out[i] = toFolderResponse(f)
	}
	return out
}

func toTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func toTagResponses(tags []*domain.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = toTagResponse(t)
	}
	return out
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Fullname:  u.Fullname,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
