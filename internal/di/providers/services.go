package providers

import (
	"github.com/samber/do/v2"

	"github.com/notefulapp/noteful-server/internal/auth"
	"github.com/notefulapp/noteful-server/internal/logger"
	"github.com/notefulapp/noteful-server/internal/service"
)

// ProvideHasher provides the argon2id password hasher.
func ProvideHasher(do.Injector) (*auth.Hasher, error) {
	return auth.NewHasher(auth.DefaultParams), nil
}

// ProvideCascade provides the coordinator shared by folder and tag deletes.
func ProvideCascade(i do.Injector) (*service.Cascade, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCascade(log.WithComponent("cascade").Logger), nil
}

// ProvideNoteService provides the note service.
func ProvideNoteService(i do.Injector) (*service.NoteService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewNoteService(storeHandle.Store, log.Logger), nil
}

// ProvideFolderService provides the folder service.
func ProvideFolderService(i do.Injector) (*service.FolderService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	cascade := do.MustInvoke[*service.Cascade](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFolderService(storeHandle.Store, cascade, log.Logger), nil
}

// ProvideTagService provides the tag service.
func ProvideTagService(i do.Injector) (*service.TagService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	cascade := do.MustInvoke[*service.Cascade](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTagService(storeHandle.Store, cascade, log.Logger), nil
}

// ProvideUserService provides the user service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	hasher := do.MustInvoke[*auth.Hasher](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(storeHandle.Store, hasher, log.Logger), nil
}
