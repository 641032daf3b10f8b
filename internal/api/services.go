package api

import "github.com/notefulapp/noteful-server/internal/service"

// Services groups the business logic services used by the API server.
type Services struct {
	Note   *service.NoteService
	Folder *service.FolderService
	Tag    *service.TagService
	User   *service.UserService
}
