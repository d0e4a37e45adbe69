package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/handler"
)

// Setup configures the gin engine with the public site, the admin JSON
// API and static blob serving. There is no authentication layer: the
// original system ships without one, and fronting /admin is left to the
// deployment.
func Setup(api *handler.API, cfg config.AppConfig) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inkwell_session", store))

	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public site
	r.GET("/", api.ShowHome)
	r.GET("/bai-viet/:slug", api.ShowPost)

	admin := r.Group("/admin")
	{
		adminAPI := admin.Group("/api")
		{
			adminAPI.GET("/component-types", api.GetComponentTypes)
			adminAPI.GET("/components", api.GetComponents)
			adminAPI.GET("/components/:id", api.GetComponent)
			adminAPI.POST("/components", api.CreateComponent)
			adminAPI.PUT("/components/:id", api.UpdateComponent)
			adminAPI.DELETE("/components/:id", api.DeleteComponent)
			adminAPI.POST("/components/:id/move", api.MoveComponent)
			adminAPI.GET("/components/form", api.GetComponentForm)
			adminAPI.POST("/components/config/ops", api.ApplyConfigOp)

			adminAPI.GET("/posts", api.GetPosts)
			adminAPI.GET("/posts/:id", api.GetPost)
			adminAPI.POST("/posts", api.CreatePost)
			adminAPI.PUT("/posts/:id", api.UpdatePost)
			adminAPI.DELETE("/posts/:id", api.DeletePost)

			adminAPI.GET("/menus", api.GetMenus)
			adminAPI.POST("/menus", api.CreateMenu)
			adminAPI.PUT("/menus/:id", api.UpdateMenu)
			adminAPI.DELETE("/menus/:id", api.DeleteMenu)
			adminAPI.POST("/menus/:id/move", api.MoveMenu)

			adminAPI.GET("/settings", api.GetSettings)
			adminAPI.PUT("/settings", api.UpdateSettings)

			adminAPI.GET("/users", api.GetUsers)
			adminAPI.GET("/users/:id", api.GetUser)
			adminAPI.POST("/users", api.CreateUser)
			adminAPI.PUT("/users/:id", api.UpdateUser)
			adminAPI.DELETE("/users/:id", api.DeleteUser)

			adminAPI.POST("/upload", api.UploadImage)
			adminAPI.DELETE("/blobs/:id", api.DeleteBlob)

			adminAPI.GET("/stats", api.GetStats)
			adminAPI.GET("/prefs", api.GetPrefs)
			adminAPI.PUT("/prefs", api.UpdatePrefs)
		}
	}

	return r
}
