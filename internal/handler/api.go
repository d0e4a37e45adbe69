package handler

import (
	"github.com/inkwell/internal/service"
	"github.com/inkwell/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	components *service.ComponentService
	posts      *service.PostService
	settings   *service.SettingService
	menus      *service.MenuService
	users      *service.UserService
	visitors   *service.VisitorService
	blobs      storage.Store
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, blobs storage.Store) *API {
	return &API{
		db:         gdb,
		components: service.NewComponentService(gdb, blobs),
		posts:      service.NewPostService(gdb, blobs),
		settings:   service.NewSettingService(gdb, blobs),
		menus:      service.NewMenuService(gdb),
		users:      service.NewUserService(gdb),
		visitors:   service.NewVisitorService(gdb),
		blobs:      blobs,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
